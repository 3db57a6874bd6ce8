// Package affiliate wraps the affiliate (portals) operations: product
// search, promotion links and commission orders.
package affiliate

import (
	"context"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress"
)

// Operation names.
const (
	MethodGenerateLinks         = "aliexpress.affiliate.link.generate"
	MethodCategories            = "aliexpress.affiliate.category.get"
	MethodFeaturedPromoInfo     = "aliexpress.affiliate.featuredpromo.get"
	MethodFeaturedPromoProducts = "aliexpress.affiliate.featuredpromo.products.get"
	MethodHotProductsDownload   = "aliexpress.affiliate.hotproduct.download"
	MethodHotProducts           = "aliexpress.affiliate.hotproduct.query"
	MethodOrderInfo             = "aliexpress.affiliate.order.get"
	MethodOrderList             = "aliexpress.affiliate.order.list"
	MethodOrderListByIndex      = "aliexpress.affiliate.order.listbyindex"
	MethodProductDetails        = "aliexpress.affiliate.productdetail.get"
	MethodQueryProducts         = "aliexpress.affiliate.product.query"
	MethodSmartMatchProducts    = "aliexpress.affiliate.product.smartmatch"
)

// Client exposes the affiliate operations.
type Client struct {
	exec aliexpress.Executor
}

// New creates an affiliate client on top of exec.
func New(exec aliexpress.Executor) *Client {
	return &Client{exec: exec}
}

// GenerateLinks converts source URLs into tracked promotion links.
func (c *Client) GenerateLinks(ctx context.Context, req GenerateLinksRequest) (*LinksResult, error) {
	return call[LinksResult](ctx, c.exec, MethodGenerateLinks, req, func(r map[string]any) {
		aliexpress.NormalizeField(r, "promotion_links", "promotion_link")
	})
}

// Categories returns the affiliate category tree.
func (c *Client) Categories(ctx context.Context, req SignatureRequest) (*CategoriesResult, error) {
	return call[CategoriesResult](ctx, c.exec, MethodCategories, req, NormalizeCategories)
}

// FeaturedPromoInfo lists the featured promotions.
func (c *Client) FeaturedPromoInfo(ctx context.Context, req SignatureRequest) (*PromosResult, error) {
	return call[PromosResult](ctx, c.exec, MethodFeaturedPromoInfo, req, NormalizePromos)
}

// FeaturedPromoProducts lists the products of a featured promotion.
func (c *Client) FeaturedPromoProducts(
	ctx context.Context,
	req FeaturedPromoProductsRequest,
) (*ProductsResult, error) {
	return products(ctx, c.exec, MethodFeaturedPromoProducts, req)
}

// HotProductsDownload downloads the hot products of a category.
func (c *Client) HotProductsDownload(
	ctx context.Context,
	req HotProductsDownloadRequest,
) (*ProductsResult, error) {
	return products(ctx, c.exec, MethodHotProductsDownload, req)
}

// HotProducts searches the hot product catalogue.
func (c *Client) HotProducts(ctx context.Context, req ProductQueryRequest) (*ProductsResult, error) {
	return products(ctx, c.exec, MethodHotProducts, req)
}

// OrderInfo looks up commission orders by id.
func (c *Client) OrderInfo(ctx context.Context, req OrderInfoRequest) (*OrdersResult, error) {
	return call[OrdersResult](ctx, c.exec, MethodOrderInfo, req, NormalizeOrders)
}

// OrderList pages through commission orders by page number.
func (c *Client) OrderList(ctx context.Context, req OrderListRequest) (*OrdersResult, error) {
	return call[OrdersResult](ctx, c.exec, MethodOrderList, req, NormalizeOrders)
}

// OrderListByIndex pages through commission orders by query index.
func (c *Client) OrderListByIndex(ctx context.Context, req OrderListByIndexRequest) (*OrdersResult, error) {
	return call[OrdersResult](ctx, c.exec, MethodOrderListByIndex, req, NormalizeOrders)
}

// ProductDetails looks up products by id.
func (c *Client) ProductDetails(ctx context.Context, req ProductDetailsRequest) (*ProductsResult, error) {
	return products(ctx, c.exec, MethodProductDetails, req)
}

// QueryProducts searches the affiliate catalogue.
func (c *Client) QueryProducts(ctx context.Context, req ProductQueryRequest) (*ProductsResult, error) {
	return products(ctx, c.exec, MethodQueryProducts, req)
}

// SmartMatchProducts recommends products for a device, keyword or product.
func (c *Client) SmartMatchProducts(ctx context.Context, req SmartMatchRequest) (*ProductsResult, error) {
	return products(ctx, c.exec, MethodSmartMatchProducts, req)
}

func products(ctx context.Context, exec aliexpress.Executor, method string, req any) (*ProductsResult, error) {
	return call[ProductsResult](ctx, exec, method, req, NormalizeProducts)
}

// NormalizeProducts unwraps a product cursor, see aliexpress.ParseAffiliateProducts.
func NormalizeProducts(r map[string]any) {
	aliexpress.ParseAffiliateProducts(r)
}

// NormalizeCategories unwraps the categories list of a category result.
func NormalizeCategories(r map[string]any) {
	aliexpress.NormalizeField(r, "categories", "category")
}

// NormalizeOrders unwraps the orders list of an order result.
func NormalizeOrders(r map[string]any) {
	aliexpress.NormalizeField(r, "orders", "order")
}

// NormalizePromos unwraps the promos list of a featured promotion result.
func NormalizePromos(r map[string]any) {
	aliexpress.NormalizeField(r, "promos", "promo")
}

type metaSetter interface {
	setMeta(Meta)
}

// call invokes method and decodes <method>_response.resp_result into T.
// normalize runs on the result object before decoding.
func call[T any](
	ctx context.Context,
	exec aliexpress.Executor,
	method string,
	req any,
	normalize func(map[string]any),
) (*T, error) {
	body, err := aliexpress.Invoke(ctx, exec, method, req)
	if err != nil {
		return nil, err
	}
	return DecodeRespResult[T](body, method, normalize)
}

// DecodeRespResult decodes the <method>_response.resp_result envelope
// into T. See DecodeResult.
func DecodeRespResult[T any](body aliexpress.Body, method string, normalize func(map[string]any)) (*T, error) {
	rr, err := body.Envelope(aliexpress.ResponseKey(method), "resp_result")
	if err != nil {
		return nil, err
	}
	return DecodeResult[T](rr, normalize)
}

// DecodeResult decodes a {resp_code, resp_msg, result} object: resp_code
// and resp_msg go to the embedded Meta, result to the rest of T. A missing
// result (for example resp_code 405, no data) decodes as the zero value.
// normalize runs on the result object before decoding.
func DecodeResult[T any](container map[string]any, normalize func(map[string]any)) (*T, error) {
	var meta Meta
	if err := aliexpress.Decode(container, &meta); err != nil {
		return nil, err
	}

	result, _ := container["result"].(map[string]any)
	if result == nil {
		result = map[string]any{}
	}
	if normalize != nil {
		normalize(result)
	}

	var out T
	if err := aliexpress.Decode(result, &out); err != nil {
		return nil, err
	}
	if s, ok := any(&out).(metaSetter); ok {
		s.setMeta(meta)
	}
	return &out, nil
}
