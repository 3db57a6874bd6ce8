package affiliate

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Sort orders accepted by the product listing operations.
const (
	SortSalePriceAsc   = "SALE_PRICE_ASC"
	SortSalePriceDesc  = "SALE_PRICE_DESC"
	SortLastVolumeAsc  = "LAST_VOLUME_ASC"
	SortLastVolumeDesc = "LAST_VOLUME_DESC"
	SortCommissionAsc  = "commissionAsc"
	SortCommissionDesc = "commissionDesc"
	SortPriceAsc       = "priceAsc"
	SortPriceDesc      = "priceDesc"
	SortVolumeAsc      = "volumeAsc"
	SortVolumeDesc     = "volumeDesc"
	SortDiscountAsc    = "discountAsc"
	SortDiscountDesc   = "discountDesc"
	SortRatingAsc      = "ratingAsc"
	SortRatingDesc     = "ratingDesc"
	SortPromoTimeAsc   = "promotionTimeAsc"
	SortPromoTimeDesc  = "promotionTimeDesc"
)

const (
	maxPageSize         = 50
	promotionLinkNormal = 0
	promotionLinkHot    = 2
)

var (
	productSorts = []any{SortSalePriceAsc, SortSalePriceDesc, SortLastVolumeAsc, SortLastVolumeDesc}
	promoSorts   = []any{
		SortCommissionAsc, SortCommissionDesc, SortPriceAsc, SortPriceDesc,
		SortVolumeAsc, SortVolumeDesc, SortDiscountAsc, SortDiscountDesc,
		SortRatingAsc, SortRatingDesc, SortPromoTimeAsc, SortPromoTimeDesc,
	}
)

// ProductParams are the presentation fields shared by product listings.
type ProductParams struct {
	AppSignature   string `json:"app_signature,omitempty"`
	Fields         string `json:"fields,omitempty"`
	TargetCurrency string `json:"target_currency,omitempty"`
	TargetLanguage string `json:"target_language,omitempty"`
	TrackingID     string `json:"tracking_id,omitempty"`
}

// ProductDetailsRequest looks up products by id.
type ProductDetailsRequest struct {
	ProductParams
	// ProductIDs is a comma separated list.
	ProductIDs string `json:"product_ids"`
	Country    string `json:"country,omitempty"`
}

// Validate implements validation.Validatable.
func (r ProductDetailsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductIDs, validation.Required),
	)
}

// ProductQueryRequest searches the affiliate catalogue. Prices are in cents.
type ProductQueryRequest struct {
	ProductParams
	CategoryIDs         string `json:"category_ids,omitempty"`
	Keywords            string `json:"keywords,omitempty"`
	MaxSalePrice        string `json:"max_sale_price,omitempty"`
	MinSalePrice        string `json:"min_sale_price,omitempty"`
	PageNo              int    `json:"page_no,omitempty"`
	PageSize            int    `json:"page_size,omitempty"`
	PlatformProductType string `json:"platform_product_type,omitempty"`
	Sort                string `json:"sort,omitempty"`
	DeliveryDays        string `json:"delivery_days,omitempty"`
	ShipToCountry       string `json:"ship_to_country,omitempty"`
}

// Validate implements validation.Validatable.
func (r ProductQueryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PageNo, validation.Min(1)),
		validation.Field(&r.PageSize, validation.Min(1), validation.Max(maxPageSize)),
		validation.Field(&r.Sort, validation.In(productSorts...)),
		validation.Field(&r.PlatformProductType, validation.In("ALL", "PLAZA", "TMALL")),
	)
}

// FeaturedPromoProductsRequest lists the products of a featured promotion.
type FeaturedPromoProductsRequest struct {
	ProductParams
	PromotionName      string `json:"promotion_name,omitempty"`
	CategoryID         string `json:"category_id,omitempty"`
	PageNo             int    `json:"page_no,omitempty"`
	PageSize           int    `json:"page_size,omitempty"`
	PromotionStartTime string `json:"promotion_start_time,omitempty"`
	PromotionEndTime   string `json:"promotion_end_time,omitempty"`
	Sort               string `json:"sort,omitempty"`
	Country            string `json:"country,omitempty"`
}

// Validate implements validation.Validatable.
func (r FeaturedPromoProductsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PageNo, validation.Min(1)),
		validation.Field(&r.PageSize, validation.Min(1), validation.Max(maxPageSize)),
		validation.Field(&r.Sort, validation.In(promoSorts...)),
	)
}

// HotProductsDownloadRequest downloads the hot products of a category.
type HotProductsDownloadRequest struct {
	ProductParams
	CategoryID string `json:"category_id"`
	LocaleSite string `json:"locale_site,omitempty"`
	PageNo     int    `json:"page_no,omitempty"`
	PageSize   int    `json:"page_size,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Validate implements validation.Validatable.
func (r HotProductsDownloadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CategoryID, validation.Required),
		validation.Field(&r.LocaleSite, validation.In("global", "it_site", "es_site", "ru_site")),
		validation.Field(&r.PageNo, validation.Min(1)),
	)
}

// SmartMatchRequest asks for products related to a device, keyword or product.
type SmartMatchRequest struct {
	ProductParams
	App       string `json:"app,omitempty"`
	Device    string `json:"device,omitempty"`
	DeviceID  string `json:"device_id"`
	Keywords  string `json:"keywords,omitempty"`
	PageNo    int    `json:"page_no,omitempty"`
	ProductID string `json:"product_id,omitempty"`
	Site      string `json:"site,omitempty"`
	User      string `json:"user,omitempty"`
	Country   string `json:"country,omitempty"`
}

// Validate implements validation.Validatable.
func (r SmartMatchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DeviceID, validation.Required),
		validation.Field(&r.PageNo, validation.Min(1)),
	)
}

// GenerateLinksRequest converts source URLs into tracked promotion links.
type GenerateLinksRequest struct {
	AppSignature string `json:"app_signature,omitempty"`
	// PromotionLinkType is 0 for a normal link, 2 for a hot product link.
	PromotionLinkType int `json:"promotion_link_type"`
	// SourceValues is a comma separated list of URLs or product ids.
	SourceValues string `json:"source_values"`
	TrackingID   string `json:"tracking_id"`
}

// Validate implements validation.Validatable.
func (r GenerateLinksRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PromotionLinkType, validation.In(promotionLinkNormal, promotionLinkHot)),
		validation.Field(&r.SourceValues, validation.Required),
		validation.Field(&r.TrackingID, validation.Required),
	)
}

// SignatureRequest carries only the optional app signature. It serves the
// category and featured promotion operations.
type SignatureRequest struct {
	AppSignature string `json:"app_signature,omitempty"`
}

// OrderInfoRequest looks up orders by id.
type OrderInfoRequest struct {
	AppSignature string `json:"app_signature,omitempty"`
	Fields       string `json:"fields,omitempty"`
	// OrderIDs is a comma separated list.
	OrderIDs string `json:"order_ids"`
}

// Validate implements validation.Validatable.
func (r OrderInfoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrderIDs, validation.Required),
	)
}

// OrderListRequest pages through orders in a time window. Times are PST,
// formatted "2006-01-02 15:04:05".
type OrderListRequest struct {
	AppSignature string `json:"app_signature,omitempty"`
	TimeType     string `json:"time_type,omitempty"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
	Fields       string `json:"fields,omitempty"`
	LocaleSite   string `json:"locale_site,omitempty"`
	PageNo       int    `json:"page_no,omitempty"`
	PageSize     int    `json:"page_size,omitempty"`
}

// Validate implements validation.Validatable.
func (r OrderListRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StartTime, validation.Required),
		validation.Field(&r.EndTime, validation.Required),
		validation.Field(&r.Status, validation.Required),
		validation.Field(&r.PageNo, validation.Min(1)),
		validation.Field(&r.PageSize, validation.Min(1), validation.Max(maxPageSize)),
	)
}

// OrderListByIndexRequest pages through orders by query index. Pass the
// previous page's MaxQueryIndexID as StartQueryIndexID to continue.
type OrderListByIndexRequest struct {
	AppSignature      string `json:"app_signature,omitempty"`
	TimeType          string `json:"time_type,omitempty"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	Status            string `json:"status"`
	Fields            string `json:"fields,omitempty"`
	PageSize          int    `json:"page_size,omitempty"`
	StartQueryIndexID string `json:"start_query_index_id,omitempty"`
}

// Validate implements validation.Validatable.
func (r OrderListByIndexRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StartTime, validation.Required),
		validation.Field(&r.EndTime, validation.Required),
		validation.Field(&r.Status, validation.Required),
		validation.Field(&r.PageSize, validation.Min(1), validation.Max(maxPageSize)),
	)
}
