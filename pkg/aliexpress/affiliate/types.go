package affiliate

// Meta is the resp_code/resp_msg pair every affiliate result carries.
// A resp_code other than 200 is a business outcome (for example 405,
// no results), not a transport failure.
type Meta struct {
	RespCode int    `json:"resp_code"`
	RespMsg  string `json:"resp_msg"`
}

func (m *Meta) setMeta(v Meta) { *m = v }

// OK reports whether the platform returned resp_code 200.
func (m Meta) OK() bool { return m.RespCode == 200 }

// PromoCodeInfo describes a coupon attached to a product.
type PromoCodeInfo struct {
	PromoCode              string `json:"promo_code"`
	CodeCampaignType       string `json:"code_campaigntype"`
	CodeValue              string `json:"code_value"`
	CodeAvailableTimeStart string `json:"code_availabletime_start"`
	CodeAvailableTimeEnd   string `json:"code_availabletime_end"`
	CodeMiniSpend          string `json:"code_mini_spend"`
	CodeQuantity           string `json:"code_quantity"`
	CodePromotionURL       string `json:"code_promotionurl"`
}

// Product is a product listing as returned by the product query,
// hot product and promotion operations.
type Product struct {
	ProductID                     int64          `json:"product_id"`
	ProductTitle                  string         `json:"product_title"`
	ProductDetailURL              string         `json:"product_detail_url"`
	ProductMainImageURL           string         `json:"product_main_image_url"`
	ProductSmallImageURLs         []string       `json:"product_small_image_urls"`
	ProductVideoURL               string         `json:"product_video_url"`
	PromotionLink                 string         `json:"promotion_link"`
	PromoCodeInfo                 *PromoCodeInfo `json:"promo_code_info"`
	AppSalePrice                  string         `json:"app_sale_price"`
	AppSalePriceCurrency          string         `json:"app_sale_price_currency"`
	OriginalPrice                 string         `json:"original_price"`
	OriginalPriceCurrency         string         `json:"original_price_currency"`
	SalePrice                     string         `json:"sale_price"`
	SalePriceCurrency             string         `json:"sale_price_currency"`
	TargetAppSalePrice            string         `json:"target_app_sale_price"`
	TargetAppSalePriceCurrency    string         `json:"target_app_sale_price_currency"`
	TargetOriginalPrice           string         `json:"target_original_price"`
	TargetOriginalPriceCurrency   string         `json:"target_original_price_currency"`
	TargetSalePrice               string         `json:"target_sale_price"`
	TargetSalePriceCurrency       string         `json:"target_sale_price_currency"`
	Discount                      string         `json:"discount"`
	CommissionRate                string         `json:"commission_rate"`
	HotProductCommissionRate      string         `json:"hot_product_commission_rate"`
	RelevantMarketCommissionRate  string         `json:"relevant_market_commission_rate"`
	EvaluateRate                  string         `json:"evaluate_rate"`
	LatestVolume                  int64          `json:"lastest_volume"`
	FirstLevelCategoryID          int64          `json:"first_level_category_id"`
	FirstLevelCategoryName        string         `json:"first_level_category_name"`
	SecondLevelCategoryID         int64          `json:"second_level_category_id"`
	SecondLevelCategoryName       string         `json:"second_level_category_name"`
	PlatformProductType           string         `json:"platform_product_type"`
	ShopID                        int64          `json:"shop_id"`
	ShopURL                       string         `json:"shop_url"`
	ShipToDays                    string         `json:"ship_to_days"`
}

// ProductsCursor is one page of a product listing.
type ProductsCursor struct {
	Products           []Product `json:"products"`
	CurrentRecordCount int       `json:"current_record_count"`
	CurrentPageNo      int       `json:"current_page_no"`
	TotalPageNo        int       `json:"total_page_no"`
	TotalRecordCount   int       `json:"total_record_count"`
	IsFinished         bool      `json:"is_finished"`
}

// ProductsResult is returned by every product listing operation.
type ProductsResult struct {
	Meta
	ProductsCursor
}

// PromotionLink is a tracked link for one source URL.
type PromotionLink struct {
	PromotionLink string `json:"promotion_link"`
	SourceValue   string `json:"source_value"`
}

// LinksResult is returned by GenerateLinks.
type LinksResult struct {
	Meta
	TotalResultCount int             `json:"total_result_count"`
	TrackingID       string          `json:"tracking_id"`
	PromotionLinks   []PromotionLink `json:"promotion_links"`
}

// Category is a node of the category tree.
type Category struct {
	CategoryID       int64  `json:"category_id"`
	CategoryName     string `json:"category_name"`
	ParentCategoryID int64  `json:"parent_category_id"`
}

// CategoriesResult is returned by the category operations.
type CategoriesResult struct {
	Meta
	Categories       []Category `json:"categories"`
	TotalResultCount int        `json:"total_result_count"`
}

// Promo is a featured promotion.
type Promo struct {
	PromoName  string `json:"promo_name"`
	PromoDesc  string `json:"promo_desc"`
	ProductNum int    `json:"product_num"`
}

// PromosResult is returned by the featured promotion operations.
type PromosResult struct {
	Meta
	CurrentRecordCount int     `json:"current_record_count"`
	Promos             []Promo `json:"promos"`
}

// Order is an affiliate commission order.
type Order struct {
	OrderID                              int64  `json:"order_id"`
	OrderNumber                          int64  `json:"order_number"`
	ParentOrderNumber                    int64  `json:"parent_order_number"`
	SubOrderID                           int64  `json:"sub_order_id"`
	OrderStatus                          string `json:"order_status"`
	OrderType                            string `json:"order_type"`
	ProductID                            int64  `json:"product_id"`
	ProductTitle                         string `json:"product_title"`
	ProductDetailURL                     string `json:"product_detail_url"`
	ProductMainImageURL                  string `json:"product_main_image_url"`
	ProductCount                         int    `json:"product_count"`
	CategoryID                           int64  `json:"category_id"`
	TrackingID                           string `json:"tracking_id"`
	CustomerParameters                   string `json:"customer_parameters"`
	ShipToCountry                        string `json:"ship_to_country"`
	CreatedTime                          string `json:"created_time"`
	PaidTime                             string `json:"paid_time"`
	FinishedTime                         string `json:"finished_time"`
	CompletedSettlementTime              string `json:"completed_settlement_time"`
	PaidAmount                           string `json:"paid_amount"`
	FinishedAmount                       string `json:"finished_amount"`
	SettledCurrency                      string `json:"settled_currency"`
	CommissionRate                       string `json:"commission_rate"`
	IncentiveCommissionRate              string `json:"incentive_commission_rate"`
	EstimatedPaidCommission              string `json:"estimated_paid_commission"`
	EstimatedFinishedCommission          string `json:"estimated_finished_commission"`
	EstimatedIncentivePaidCommission     string `json:"estimated_incentive_paid_commission"`
	EstimatedIncentiveFinishedCommission string `json:"estimated_incentive_finished_commission"`
	NewBuyerBonusCommission              string `json:"new_buyer_bonus_commission"`
	EffectDetailStatus                   string `json:"effect_detail_status"`
	IsNewBuyer                           string `json:"is_new_buyer"`
	IsHotProduct                         string `json:"is_hot_product"`
	IsAffiliateProduct                   string `json:"is_affiliate_product"`
}

// OrdersResult is returned by the order operations. The paging fields in
// use depend on the operation: page numbers for OrderList, query index ids
// for OrderListByIndex.
type OrdersResult struct {
	Meta
	Orders             []Order `json:"orders"`
	CurrentRecordCount int     `json:"current_record_count"`
	CurrentPageNo      int     `json:"current_page_no"`
	TotalPageNo        int     `json:"total_page_no"`
	TotalRecordCount   int     `json:"total_record_count"`
	MinQueryIndexID    string  `json:"min_query_index_id"`
	MaxQueryIndexID    string  `json:"max_query_index_id"`
}
