package dropship

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	countryCode  = validation.Match(regexp.MustCompile(`^[A-Z]{2}$`)).Error("must be an ISO 3166 alpha-2 code")
	currencyCode = validation.Match(regexp.MustCompile(`^[A-Z]{3}$`)).Error("must be an ISO 4217 code")
	httpURL      = validation.Match(regexp.MustCompile(`^https?://\S+$`)).Error("must be an http(s) URL")
)

// ProductRequest looks up a product for a destination.
type ProductRequest struct {
	ProductID      int64  `json:"product_id"`
	ShipToCountry  string `json:"ship_to_country,omitempty"`
	TargetCurrency string `json:"target_currency,omitempty"`
	TargetLanguage string `json:"target_language,omitempty"`
}

// Validate implements validation.Validatable.
func (r ProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.ShipToCountry, countryCode),
		validation.Field(&r.TargetCurrency, currencyCode),
	)
}

// ShippingRequest asks which logistics services can deliver a product.
// It is sent JSON encoded.
type ShippingRequest struct {
	ProductID            int64  `json:"product_id"`
	ProductNum           int    `json:"product_num"`
	CountryCode          string `json:"country_code"`
	SendGoodsCountryCode string `json:"send_goods_country_code"`
	SkuID                string `json:"sku_id,omitempty"`
	ProvinceCode         string `json:"province_code,omitempty"`
	CityCode             string `json:"city_code,omitempty"`
	Price                string `json:"price,omitempty"`
	PriceCurrency        string `json:"price_currency,omitempty"`
}

// Validate implements validation.Validatable.
func (r ShippingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required),
		validation.Field(&r.ProductNum, validation.Required, validation.Min(1)),
		validation.Field(&r.CountryCode, validation.Required, countryCode),
		validation.Field(&r.SendGoodsCountryCode, validation.Required),
	)
}

// FreightRequest is the legacy freight query. It is sent JSON encoded.
type FreightRequest struct {
	ProductID            int64  `json:"product_id"`
	ProductNum           int    `json:"product_num"`
	SkuID                string `json:"sku_id"`
	CountryCode          string `json:"country_code"`
	ProvinceCode         string `json:"province_code,omitempty"`
	CityCode             string `json:"city_code,omitempty"`
	SendGoodsCountryCode string `json:"send_goods_country_code,omitempty"`
	Price                string `json:"price,omitempty"`
	PriceCurrency        string `json:"price_currency,omitempty"`
}

// Validate implements validation.Validatable.
func (r FreightRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required),
		validation.Field(&r.ProductNum, validation.Required, validation.Min(1)),
		validation.Field(&r.SkuID, validation.Required),
		validation.Field(&r.CountryCode, validation.Required),
	)
}

// TrackingRequest queries a shipment.
type TrackingRequest struct {
	LogisticsNo string `json:"logistics_no"`
	// Origin is "ESCROW" for AliExpress orders.
	Origin      string `json:"origin"`
	OutRef      string `json:"out_ref"`
	ServiceName string `json:"service_name"`
	ToArea      string `json:"to_area"`
}

// Validate implements validation.Validatable.
func (r TrackingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LogisticsNo, validation.Required),
		validation.Field(&r.Origin, validation.Required),
		validation.Field(&r.OutRef, validation.Required),
		validation.Field(&r.ServiceName, validation.Required),
		validation.Field(&r.ToArea, validation.Required),
	)
}

// AddInfoRequest registers the dropshipper's store. It is sent JSON encoded.
type AddInfoRequest struct {
	ExtendInfo   map[string]any `json:"extend_info,omitempty"`
	StoreURL     string         `json:"store_url,omitempty"`
	AppSignature string         `json:"app_signature,omitempty"`
}

// Validate implements validation.Validatable.
func (r AddInfoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StoreURL, httpURL),
	)
}

// RecommendedRequest lists the products of a recommendation feed.
type RecommendedRequest struct {
	FeedName       string `json:"feed_name"`
	Country        string `json:"country,omitempty"`
	TargetCurrency string `json:"target_currency,omitempty"`
	TargetLanguage string `json:"target_language,omitempty"`
	PageSize       int    `json:"page_size,omitempty"`
	PageNo         int    `json:"page_no,omitempty"`
	Sort           string `json:"sort,omitempty"`
	CategoryID     string `json:"category_id,omitempty"`
}

// Validate implements validation.Validatable.
func (r RecommendedRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FeedName, validation.Required),
		validation.Field(&r.PageSize, validation.Min(1), validation.Max(50)),
		validation.Field(&r.PageNo, validation.Min(1)),
	)
}

// LogisticsAddress is the delivery address of an order.
type LogisticsAddress struct {
	Address                       string `json:"address"`
	Address2                      string `json:"address2,omitempty"`
	City                          string `json:"city,omitempty"`
	Province                      string `json:"province,omitempty"`
	Country                       string `json:"country,omitempty"`
	Zip                           string `json:"zip,omitempty"`
	ContactPerson                 string `json:"contact_person,omitempty"`
	FullName                      string `json:"full_name,omitempty"`
	MobileNo                      string `json:"mobile_no,omitempty"`
	PhoneCountry                  string `json:"phone_country,omitempty"`
	Locale                        string `json:"locale,omitempty"`
	CPF                           string `json:"cpf,omitempty"`
	PassportNo                    string `json:"passport_no,omitempty"`
	PassportNoDate                string `json:"passport_no_date,omitempty"`
	PassportOrganization          string `json:"passport_organization,omitempty"`
	TaxNumber                     string `json:"tax_number,omitempty"`
	ForeignerPassportNo           string `json:"foreigner_passport_no,omitempty"`
	IsForeigner                   string `json:"is_foreigner,omitempty"`
	VATNo                         string `json:"vat_no,omitempty"`
	TaxCompany                    string `json:"tax_company,omitempty"`
	LocationTreeAddressIDLocation string `json:"location_tree_address_idlocation,omitempty"`
}

// Validate implements validation.Validatable.
func (a LogisticsAddress) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, validation.Required),
		validation.Field(&a.Country, countryCode),
	)
}

// ProductItem is one product line of an order.
type ProductItem struct {
	ProductID            int64  `json:"product_id"`
	ProductCount         int    `json:"product_count"`
	SkuAttr              string `json:"sku_attr,omitempty"`
	LogisticsServiceName string `json:"logistics_service_name,omitempty"`
	OrderMemo            string `json:"order_memo,omitempty"`
}

// Validate implements validation.Validatable.
func (i ProductItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ProductID, validation.Required),
		validation.Field(&i.ProductCount, validation.Required, validation.Min(1)),
	)
}

// Promotion selects a promotion code for an order.
type Promotion struct {
	PromotionCode        string `json:"promotion_code,omitempty"`
	PromotionChannelInfo string `json:"promotion_channel_info"`
}

// Payment controls how an order is paid.
type Payment struct {
	PayCurrency string `json:"pay_currency,omitempty"`
	// TryToPay is "true" or "false".
	TryToPay string `json:"try_to_pay,omitempty"`
}

// TradeExtra carries extra trade options.
type TradeExtra struct {
	// BusinessModel is "retail" or "wholesale".
	BusinessModel string `json:"business_model,omitempty"`
}

// PromoAndPayment is the optional extension block of an order.
type PromoAndPayment struct {
	Promotion       *Promotion  `json:"promotion,omitempty"`
	Payment         *Payment    `json:"payment,omitempty"`
	TradeExtraParam *TradeExtra `json:"trade_extra_param,omitempty"`
}

// CreateOrderRequest places an order.
type CreateOrderRequest struct {
	Address         LogisticsAddress `json:"logistics_address"`
	Items           []ProductItem    `json:"product_items"`
	PromoAndPayment *PromoAndPayment `json:"-"`
}

// Validate implements validation.Validatable.
func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Address),
		validation.Field(&r.Items, validation.Required),
	)
}

// OrderRequest looks up an order.
type OrderRequest struct {
	OrderID int64 `json:"order_id"`
}

// Validate implements validation.Validatable.
func (r OrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrderID, validation.Required),
	)
}

// CategoriesRequest asks for the category tree.
type CategoriesRequest struct {
	AppSignature string `json:"app_signature,omitempty"`
	CategoryID   string `json:"category_id,omitempty"`
	Language     string `json:"language,omitempty"`
}

// OrdersByIndexRequest pages through commission orders by query index.
type OrdersByIndexRequest struct {
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	Status            string `json:"status"`
	StartQueryIndexID string `json:"start_query_index_id,omitempty"`
	PageSize          int    `json:"page_size,omitempty"`
	PageNo            int    `json:"page_no,omitempty"`
}

// Validate implements validation.Validatable.
func (r OrdersByIndexRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StartTime, validation.Required),
		validation.Field(&r.EndTime, validation.Required),
		validation.Field(&r.Status, validation.Required),
	)
}

// SubmitOrderRequest reports an off-site sale of an AliExpress order.
type SubmitOrderRequest struct {
	AEProductID string `json:"ae_product_id"`
	AEOrderID   string `json:"ae_orderid"`
	// PayTime is GMT, formatted YYYYMMDD:HHMMSS.
	PayTime       string `json:"paytime"`
	ProductAmount string `json:"product_amount"`
	OrderAmount   string `json:"order_amount"`
	// AESkuInfo is a key-value list such as "200000182:193;200007763:201336100".
	AESkuInfo  string `json:"ae_sku_info"`
	ProductURL string `json:"product_url"`
}

// Validate implements validation.Validatable.
func (r SubmitOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AEProductID, validation.Required),
		validation.Field(&r.AEOrderID, validation.Required),
		validation.Field(&r.PayTime, validation.Required),
		validation.Field(&r.ProductAmount, validation.Required),
		validation.Field(&r.OrderAmount, validation.Required),
		validation.Field(&r.AESkuInfo, validation.Required),
		validation.Field(&r.ProductURL, validation.Required, httpURL),
	)
}
