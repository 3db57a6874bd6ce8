package dropship

import "strings"

// Status is the rsp_code/rsp_msg pair of dropshipping envelopes.
type Status struct {
	RspCode string `json:"rsp_code"`
	RspMsg  string `json:"rsp_msg"`
}

// ProductBaseInfo is the descriptive part of a product.
type ProductBaseInfo struct {
	ProductID           int64  `json:"product_id"`
	CategoryID          int64  `json:"category_id"`
	Subject             string `json:"subject"`
	CurrencyCode        string `json:"currency_code"`
	ProductStatusType   string `json:"product_status_type"`
	WSDisplay           string `json:"ws_display"`
	WSOfflineDate       string `json:"ws_offline_date"`
	GmtCreate           string `json:"gmt_create"`
	GmtModified         string `json:"gmt_modified"`
	OwnerMemberSeqLong  int64  `json:"owner_member_seq_long"`
	EvaluationCount     string `json:"evaluation_count"`
	AvgEvaluationRating string `json:"avg_evaluation_rating"`
	Detail              string `json:"detail"`
	MobileDetail        string `json:"mobile_detail"`
}

// SKUProperty is one axis value (color, size, ...) of a SKU.
type SKUProperty struct {
	SkuPropertyID               int64  `json:"sku_property_id"`
	SkuPropertyName             string `json:"sku_property_name"`
	SkuPropertyValue            string `json:"sku_property_value"`
	PropertyValueID             int64  `json:"property_value_id"`
	PropertyValueIDLong         int64  `json:"property_value_id_long"`
	PropertyValueDefinitionName string `json:"property_value_definition_name"`
	SkuImage                    string `json:"sku_image"`
}

// SKU is a purchasable variation of a product.
type SKU struct {
	ID                 string        `json:"id"`
	SkuCode            string        `json:"sku_code"`
	SkuAttr            string        `json:"sku_attr"`
	SkuStock           bool          `json:"sku_stock"`
	SkuPrice           string        `json:"sku_price"`
	OfferSalePrice     string        `json:"offer_sale_price"`
	OfferBulkSalePrice string        `json:"offer_bulk_sale_price"`
	SkuBulkOrder       int           `json:"sku_bulk_order"`
	IPMSkuStock        int64         `json:"ipm_sku_stock"`
	CurrencyCode       string        `json:"currency_code"`
	Barcode            string        `json:"barcode"`
	Properties         []SKUProperty `json:"aeop_s_k_u_propertys"`

	SkuAvailableStock    int64 `json:"sku_available_stock"`
	LegacyAvailableStock int64 `json:"s_k_u_available_stock"`
}

// AvailableStock returns the stock under whichever spelling the platform used.
func (s SKU) AvailableStock() int64 {
	if s.SkuAvailableStock != 0 {
		return s.SkuAvailableStock
	}
	return s.LegacyAvailableStock
}

// Attribute is a product specification entry.
type Attribute struct {
	AttrNameID     int64  `json:"attr_name_id"`
	AttrName       string `json:"attr_name"`
	AttrValueID    int64  `json:"attr_value_id"`
	AttrValue      string `json:"attr_value"`
	AttrValueUnit  string `json:"attr_value_unit"`
	AttrValueStart string `json:"attr_value_start"`
	AttrValueEnd   string `json:"attr_value_end"`
}

// Video is a product video.
type Video struct {
	AliMemberID int64  `json:"ali_member_id"`
	MediaID     int64  `json:"media_id"`
	MediaStatus string `json:"media_status"`
	MediaType   string `json:"media_type"`
	PosterURL   string `json:"poster_url"`
}

// Multimedia holds product media.
type Multimedia struct {
	Videos []Video `json:"ae_video_dtos"`
	// ImageURLs is a ';' separated list.
	ImageURLs string `json:"image_urls"`
}

// Images splits ImageURLs.
func (m Multimedia) Images() []string {
	if m.ImageURLs == "" {
		return nil
	}
	return strings.Split(m.ImageURLs, ";")
}

// PackageInfo holds shipping dimensions. Lengths are in cm, weight in kg.
type PackageInfo struct {
	PackageType   bool   `json:"package_type"`
	PackageLength int    `json:"package_length"`
	PackageHeight int    `json:"package_height"`
	PackageWidth  int    `json:"package_width"`
	GrossWeight   string `json:"gross_weight"`
	BaseUnit      int    `json:"base_unit"`
	ProductUnit   int    `json:"product_unit"`
}

// DeliveryInfo is the default delivery estimate for the requested country.
type DeliveryInfo struct {
	DeliveryTime  int    `json:"delivery_time"`
	ShipToCountry string `json:"ship_to_country"`
}

// StoreInfo describes the seller.
type StoreInfo struct {
	StoreID               int64  `json:"store_id"`
	StoreName             string `json:"store_name"`
	StoreURL              string `json:"store_url"`
	ItemAsDescribedRating string `json:"item_as_described_rating"`
	CommunicationRating   string `json:"communication_rating"`
	ShippingSpeedRating   string `json:"shipping_speed_rating"`
}

// IDConverter maps between the main and sub product ids.
type IDConverter struct {
	MainProductID int64  `json:"main_product_id"`
	SubProductID  string `json:"sub_product_id"`
}

// Product is a dropshipping product with its variations.
type Product struct {
	BaseInfo    ProductBaseInfo `json:"ae_item_base_info_dto"`
	SKUs        []SKU           `json:"ae_item_sku_info_dtos"`
	Properties  []Attribute     `json:"ae_item_properties"`
	Multimedia  Multimedia      `json:"ae_multimedia_info_dto"`
	Package     PackageInfo     `json:"package_info_dto"`
	Delivery    DeliveryInfo    `json:"logistics_info_dto"`
	Store       StoreInfo       `json:"ae_store_info"`
	IDConverter IDConverter     `json:"product_id_converter_result"`
}

// ProductResult is returned by ProductDetails.
type ProductResult struct {
	Status
	Result Product `json:"result"`
}

// Money is an amount in a currency.
type Money struct {
	Amount       string `json:"amount"`
	Cent         int64  `json:"cent"`
	CurrencyCode string `json:"currency_code"`
}

// ShippingOption is one logistics service able to deliver the product.
type ShippingOption struct {
	ServiceName           string `json:"service_name"`
	ShippingMethod        string `json:"shipping_method"`
	EstimatedDeliveryTime string `json:"estimated_delivery_time"`
	Freight               Money  `json:"freight"`
	TrackingAvailable     bool   `json:"tracking_available"`
	ErrorCode             int    `json:"error_code"`
}

// ShippingCalculation is the outcome of a freight calculation. On failure
// Success is false and ErrorDesc says why.
type ShippingCalculation struct {
	Success   bool             `json:"success"`
	ErrorDesc string           `json:"error_desc"`
	Options   []ShippingOption `json:"aeop_freight_calculate_result_for_buyer_d_t_o_list"`
}

// ShippingResult is returned by ShippingInfo.
type ShippingResult struct {
	Result ShippingCalculation `json:"result"`
}

// FreightCalculation is the outcome of the legacy freight operation.
type FreightCalculation struct {
	Success   bool             `json:"success"`
	ErrorDesc string           `json:"error_desc"`
	Options   []ShippingOption `json:"aeop_freight_calculate_result_for_buyer_dtolist"`
}

// FreightResult is returned by FreightInfo.
type FreightResult struct {
	RequestID string             `json:"request_id"`
	Result    FreightCalculation `json:"result"`
}

// TrackingEvent is one step of a shipment.
type TrackingEvent struct {
	EventDesc  string `json:"event_desc"`
	SignedName string `json:"signed_name"`
	Status     string `json:"status"`
	Address    string `json:"address"`
	EventDate  string `json:"event_date"`
}

// TrackingResult is returned by TrackingInfo.
type TrackingResult struct {
	ResultSuccess   bool            `json:"result_success"`
	ErrorDesc       string          `json:"error_desc"`
	OfficialWebsite string          `json:"official_website"`
	Details         []TrackingEvent `json:"details"`
}

// AddInfoResult is returned by AddDropshippingInfo.
type AddInfoResult struct {
	Result     bool   `json:"result"`
	ResultMsg  string `json:"result_msg"`
	ResultCode string `json:"result_code"`
}

// PlaceOrderOutcome is the result of an order placement. A business
// rejection has IsSuccess false and an ErrorCode such as
// "B_DROPSHIPPER_DELIVERY_ADDRESS_VALIDATE_FAIL".
type PlaceOrderOutcome struct {
	IsSuccess bool    `json:"is_success"`
	OrderList []int64 `json:"order_list"`
	ErrorCode string  `json:"error_code"`
	ErrorMsg  string  `json:"error_msg"`
}

// PlaceOrderResult is returned by CreateOrder.
type PlaceOrderResult struct {
	Result PlaceOrderOutcome `json:"result"`
}

// ChildOrder is one product line of an order.
type ChildOrder struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductCount int    `json:"product_count"`
	ProductPrice Money  `json:"product_price"`
}

// OrderLogistics is a shipment of an order.
type OrderLogistics struct {
	LogisticsNo      string `json:"logistics_no"`
	LogisticsService string `json:"logistics_service"`
}

// Order is a placed order.
type Order struct {
	GmtCreate       string           `json:"gmt_create"`
	OrderStatus     string           `json:"order_status"`
	LogisticsStatus string           `json:"logistics_status"`
	OrderAmount     Money            `json:"order_amount"`
	ChildOrders     []ChildOrder     `json:"child_order_list"`
	Logistics       []OrderLogistics `json:"logistics_info_list"`
	Store           StoreInfo        `json:"store_info"`
}

// OrderResult is returned by OrderDetails.
type OrderResult struct {
	Status
	Result Order `json:"result"`
}

// CommissionOrder is a dropshipper commission order.
type CommissionOrder struct {
	OrderID                              int64  `json:"order_id"`
	OrderNumber                          int64  `json:"order_number"`
	ParentOrderNumber                    int64  `json:"parent_order_number"`
	SubOrderID                           int64  `json:"sub_order_id"`
	PublisherID                          int64  `json:"publisher_id"`
	ItemID                               int64  `json:"item_id"`
	ItemTitle                            string `json:"item_title"`
	ItemDetailURL                        string `json:"item_detail_url"`
	ItemMainImageURL                     string `json:"item_main_image_url"`
	ItemCount                            int    `json:"item_count"`
	CategoryID                           int64  `json:"category_id"`
	ShipToCountry                        string `json:"ship_to_country"`
	CreatedTime                          string `json:"created_time"`
	PaidTime                             string `json:"paid_time"`
	FinishedTime                         string `json:"finished_time"`
	PaidAmount                           string `json:"paid_amount"`
	FinishedAmount                       string `json:"finished_amount"`
	CommissionRate                       string `json:"commission_rate"`
	IncentiveCommissionRate              string `json:"incentive_commission_rate"`
	EstimatedPaidCommission              string `json:"estimated_paid_commission"`
	EstimatedFinishedCommission          string `json:"estimated_finished_commission"`
	EstimatedIncentivePaidCommission     string `json:"estimated_incentive_paid_commission"`
	EstimatedIncentiveFinishedCommission string `json:"estimated_incentive_finished_commission"`
	PublisherSettledCurrency             string `json:"publisher_settled_currency"`
	EffectStatus                         string `json:"effect_status"`
	EffectDetailStatus                   string `json:"effect_detail_status"`
	IsNewBuyer                           string `json:"is_new_buyer"`
	IsHotProduct                         string `json:"is_hot_product"`
	IsAffiliateProduct                   string `json:"is_affiliate_product"`
}

// CommissionOrderPage is one page of OrdersByIndex.
type CommissionOrderPage struct {
	CurrentRecordCount int               `json:"current_record_count"`
	CurrentPageNo      int               `json:"current_page_no"`
	MinQueryIndexID    string            `json:"min_query_index_id"`
	MaxQueryIndexID    string            `json:"max_query_index_id"`
	Orders             []CommissionOrder `json:"orders"`
}

// CommissionOrdersResult is returned by OrdersByIndex.
type CommissionOrdersResult struct {
	Status
	Result CommissionOrderPage `json:"result"`
}

// SubmitResult is returned by SubmitOrderData.
type SubmitResult struct {
	Status
	Result bool `json:"result"`
}
