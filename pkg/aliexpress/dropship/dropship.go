// Package dropship wraps the dropshipping operations: product lookup,
// freight, order placement and order tracking.
package dropship

import (
	"context"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress"
	"github.com/donaldgifford/aliexpress/pkg/aliexpress/affiliate"
)

// Operation names.
const (
	MethodProductDetails      = "aliexpress.ds.product.get"
	MethodShippingInfo        = "aliexpress.logistics.buyer.freight.calculate"
	MethodFreightInfo         = "aliexpress.logistics.buyer.freight.get"
	MethodTrackingInfo        = "aliexpress.logistics.ds.trackinginfo.query"
	MethodAddDropshippingInfo = "aliexpress.ds.add.info"
	MethodRecommendedProducts = "aliexpress.ds.recommend.feed.get"
	MethodCreateOrder         = "aliexpress.ds.order.create"
	MethodOrderDetails        = "aliexpress.trade.ds.order.get"
	MethodFeaturedPromos      = "aliexpress.ds.feedname.get"
	MethodCategories          = "aliexpress.ds.category.get"
	MethodOrdersByIndex       = "aliexpress.ds.commissionorder.listbyindex"
	MethodSubmitOrderData     = "aliexpress.ds.member.orderdata.submit"
)

// Envelope keys that differ from the operation name.
const (
	placeOrderEnvelope   = "aliexpress_trade_buy_placeorder_response"
	orderDetailsEnvelope = "aliexpress_ds_trade_order_get_response"
)

// Client exposes the dropshipping operations.
type Client struct {
	exec aliexpress.Executor
}

// New creates a dropshipping client on top of exec.
func New(exec aliexpress.Executor) *Client {
	return &Client{exec: exec}
}

// ProductDetails returns a product with its variations, attributes and media.
func (c *Client) ProductDetails(ctx context.Context, req ProductRequest) (*ProductResult, error) {
	body, err := aliexpress.Invoke(ctx, c.exec, MethodProductDetails, req)
	if err != nil {
		return nil, err
	}
	return decode[ProductResult](body, []string{aliexpress.ResponseKey(MethodProductDetails)}, normalizeProduct)
}

// ShippingInfo lists the logistics services able to deliver a product.
func (c *Client) ShippingInfo(ctx context.Context, req ShippingRequest) (*ShippingResult, error) {
	body, err := c.executeJSON(ctx, MethodShippingInfo, "param_aeop_freight_calculate_for_buyer_d_t_o", req)
	if err != nil {
		return nil, err
	}
	return decode[ShippingResult](body, []string{aliexpress.ResponseKey(MethodShippingInfo)}, func(r map[string]any) {
		if aliexpress.Truthy(r["success"]) {
			aliexpress.NormalizeField(r,
				"aeop_freight_calculate_result_for_buyer_d_t_o_list",
				"aeop_freight_calculate_result_for_buyer_dto")
		}
	})
}

// FreightInfo is the legacy freight query.
//
// Deprecated: the platform has retired this operation; use ShippingInfo.
func (c *Client) FreightInfo(ctx context.Context, req FreightRequest) (*FreightResult, error) {
	body, err := c.executeJSON(ctx, MethodFreightInfo, "aeopFreightCalculateForBuyerDTO", req)
	if err != nil {
		return nil, err
	}
	return decode[FreightResult](body, []string{aliexpress.ResponseKey(MethodFreightInfo)}, func(r map[string]any) {
		if aliexpress.Truthy(r["success"]) {
			aliexpress.NormalizeField(r,
				"aeop_freight_calculate_result_for_buyer_dtolist",
				"aeop_freight_calculate_result_for_buyer_d_t_o")
		}
	})
}

// TrackingInfo returns the tracking events of a shipment.
//
// Deprecated: the platform has retired this operation.
func (c *Client) TrackingInfo(ctx context.Context, req TrackingRequest) (*TrackingResult, error) {
	body, err := aliexpress.Invoke(ctx, c.exec, MethodTrackingInfo, req)
	if err != nil {
		return nil, err
	}

	env, err := body.Envelope(aliexpress.ResponseKey(MethodTrackingInfo))
	if err != nil {
		return nil, err
	}
	if aliexpress.Truthy(env["result_success"]) {
		aliexpress.NormalizeField(env, "details", "details")
	}

	var out TrackingResult
	if err := aliexpress.Decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddDropshippingInfo registers the dropshipper's store.
//
// Deprecated: the platform has retired this operation.
func (c *Client) AddDropshippingInfo(ctx context.Context, req AddInfoRequest) (*AddInfoResult, error) {
	body, err := c.executeJSON(ctx, MethodAddDropshippingInfo, "param0", req)
	if err != nil {
		return nil, err
	}

	env, err := body.Envelope(aliexpress.ResponseKey(MethodAddDropshippingInfo))
	if err != nil {
		return nil, err
	}
	var out AddInfoResult
	if err := aliexpress.Decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecommendedProducts lists the products of a recommendation feed.
//
// Deprecated: the platform has retired this operation; use
// affiliate.Client.FeaturedPromoProducts.
func (c *Client) RecommendedProducts(
	ctx context.Context,
	req RecommendedRequest,
) (*affiliate.ProductsResult, error) {
	body, err := aliexpress.Invoke(ctx, c.exec, MethodRecommendedProducts, req)
	if err != nil {
		return nil, err
	}
	return affiliate.DecodeRespResult[affiliate.ProductsResult](body, MethodRecommendedProducts, affiliate.NormalizeProducts)
}

// CreateOrder places an order. A business rejection is reported through
// Result.IsSuccess and Result.ErrorCode, not as an error.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*PlaceOrderResult, error) {
	if err := aliexpress.ValidateRequest(req); err != nil {
		return nil, err
	}

	order, err := aliexpress.JSONParam(req)
	if err != nil {
		return nil, err
	}
	params := aliexpress.Params{"param_place_order_request4_open_api_d_t_o": order}
	if req.PromoAndPayment != nil {
		extend, err := aliexpress.JSONParam(req.PromoAndPayment)
		if err != nil {
			return nil, err
		}
		params["ds_extend_request"] = extend
	}

	body, err := c.exec.Execute(ctx, MethodCreateOrder, params)
	if err != nil {
		return nil, err
	}

	keys := []string{aliexpress.ResponseKey(MethodCreateOrder), placeOrderEnvelope}
	return decode[PlaceOrderResult](body, keys, func(r map[string]any) {
		if aliexpress.Truthy(r["is_success"]) {
			aliexpress.NormalizeField(r, "order_list", "number")
		}
	})
}

// OrderDetails returns a placed order with its product lines and shipments.
func (c *Client) OrderDetails(ctx context.Context, req OrderRequest) (*OrderResult, error) {
	body, err := aliexpress.Invoke(ctx, c.exec, MethodOrderDetails, req)
	if err != nil {
		return nil, err
	}

	keys := []string{orderDetailsEnvelope, aliexpress.ResponseKey(MethodOrderDetails)}
	return decode[OrderResult](body, keys, func(r map[string]any) {
		if aliexpress.Classify(r["child_order_list"]) != aliexpress.ShapeAbsent {
			aliexpress.NormalizeField(r, "child_order_list", "ae_child_order_info")
		}
		if aliexpress.Classify(r["logistics_info_list"]) != aliexpress.ShapeAbsent {
			aliexpress.NormalizeField(r, "logistics_info_list", "ae_order_logistics_info")
		}
	})
}

// FeaturedPromos lists the promotion feeds usable with RecommendedProducts.
func (c *Client) FeaturedPromos(ctx context.Context, req affiliate.SignatureRequest) (*affiliate.PromosResult, error) {
	body, err := aliexpress.Invoke(ctx, c.exec, MethodFeaturedPromos, req)
	if err != nil {
		return nil, err
	}

	env, err := body.Envelope(aliexpress.ResponseKey(MethodFeaturedPromos))
	if err != nil {
		return nil, err
	}
	return affiliate.DecodeResult[affiliate.PromosResult](env, affiliate.NormalizePromos)
}

// Categories returns the dropshipping category tree.
func (c *Client) Categories(ctx context.Context, req CategoriesRequest) (*affiliate.CategoriesResult, error) {
	body, err := aliexpress.Invoke(ctx, c.exec, MethodCategories, req)
	if err != nil {
		return nil, err
	}
	return affiliate.DecodeRespResult[affiliate.CategoriesResult](body, MethodCategories, affiliate.NormalizeCategories)
}

// OrdersByIndex pages through commission orders by query index.
//
// Deprecated: the platform has retired this operation.
func (c *Client) OrdersByIndex(ctx context.Context, req OrdersByIndexRequest) (*CommissionOrdersResult, error) {
	body, err := aliexpress.Invoke(ctx, c.exec, MethodOrdersByIndex, req)
	if err != nil {
		return nil, err
	}
	return decode[CommissionOrdersResult](body, []string{aliexpress.ResponseKey(MethodOrdersByIndex)}, affiliate.NormalizeOrders)
}

// SubmitOrderData reports an off-site sale of an AliExpress order.
//
// Deprecated: the platform has retired this operation.
func (c *Client) SubmitOrderData(ctx context.Context, req SubmitOrderRequest) (*SubmitResult, error) {
	body, err := aliexpress.Invoke(ctx, c.exec, MethodSubmitOrderData, req)
	if err != nil {
		return nil, err
	}

	env, err := body.Envelope(aliexpress.ResponseKey(MethodSubmitOrderData))
	if err != nil {
		return nil, err
	}
	var out SubmitResult
	if err := aliexpress.Decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// executeJSON validates req and sends it JSON encoded as the single
// parameter name.
func (c *Client) executeJSON(ctx context.Context, method, name string, req any) (aliexpress.Body, error) {
	if err := aliexpress.ValidateRequest(req); err != nil {
		return nil, err
	}
	encoded, err := aliexpress.JSONParam(req)
	if err != nil {
		return nil, err
	}
	return c.exec.Execute(ctx, method, aliexpress.Params{name: encoded})
}

// decode finds the first present envelope among keys, normalizes its
// result object and decodes the envelope into T.
func decode[T any](body aliexpress.Body, keys []string, normalize func(map[string]any)) (*T, error) {
	env, err := body.FirstEnvelope(keys...)
	if err != nil {
		return nil, err
	}

	result, ok := env["result"].(map[string]any)
	if !ok {
		return nil, aliexpress.NewDecodeError(`unexpected response shape: missing "result"`, nil)
	}
	if normalize != nil {
		normalize(result)
	}

	var out T
	if err := aliexpress.Decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// normalizeProduct flattens the singular-wrapper collections of a product
// and renames the SKU property list to its single stable spelling.
func normalizeProduct(r map[string]any) {
	aliexpress.NormalizeField(r, "ae_item_properties", "ae_item_property")
	aliexpress.NormalizeField(r, "ae_item_sku_info_dtos", "ae_item_sku_info_d_t_o")

	for _, s := range r["ae_item_sku_info_dtos"].([]any) {
		sku, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if props, ok := sku["ae_sku_property_dtos"]; ok && aliexpress.Classify(props) != aliexpress.ShapeAbsent {
			sku["aeop_s_k_u_propertys"] = props
			delete(sku, "ae_sku_property_dtos")
		}
		aliexpress.NormalizeField(sku, "aeop_s_k_u_propertys", "ae_sku_property_d_t_o")
	}

	if media, ok := r["ae_multimedia_info_dto"].(map[string]any); ok {
		if aliexpress.Classify(media["ae_video_dtos"]) != aliexpress.ShapeAbsent {
			aliexpress.NormalizeField(media, "ae_video_dtos", "ae_video_d_t_o")
		}
	}
}
