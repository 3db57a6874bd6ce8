package aliexpress

import (
	"encoding/json"
	"strings"
)

// Shape is the encoding a decoded value arrived in. The platform's legacy
// XML-to-JSON bridge collapses one-element lists into bare values, so any
// list-valued field can show up as either shape.
type Shape int

// Shapes of a decoded JSON value.
const (
	ShapeAbsent Shape = iota
	ShapeScalar
	ShapeList
)

// Classify reports the shape of a decoded JSON value. Falsy scalars
// (null, false, 0, "") count as absent.
func Classify(v any) Shape {
	switch x := v.(type) {
	case nil:
		return ShapeAbsent
	case []any:
		return ShapeList
	case bool:
		if !x {
			return ShapeAbsent
		}
	case string:
		if x == "" {
			return ShapeAbsent
		}
	case json.Number:
		if f, err := x.Float64(); err == nil && f == 0 {
			return ShapeAbsent
		}
	case float64:
		if x == 0 {
			return ShapeAbsent
		}
	}
	return ShapeScalar
}

// ExtractNestedArray unwraps a singular-wrapper collection
// ({singularKey: item} or {singularKey: [items]}) into a list. A container
// that is already a list is returned as is. The result is never nil.
func ExtractNestedArray(container any, singularKey string) []any {
	switch c := container.(type) {
	case []any:
		return c
	case map[string]any:
		return asList(c[singularKey])
	default:
		return []any{}
	}
}

func asList(v any) []any {
	switch Classify(v) {
	case ShapeList:
		return v.([]any)
	case ShapeScalar:
		return []any{v}
	default:
		return []any{}
	}
}

// ExtractNestedProperty returns container[key] when container is an object
// holding key, otherwise nil.
func ExtractNestedProperty(container any, key string) any {
	c, ok := container.(map[string]any)
	if !ok {
		return nil
	}
	v, ok := c[key]
	if !ok {
		return nil
	}
	return v
}

// NormalizeField replaces obj[field] with its unwrapped list form. It is a
// no-op when obj is nil.
func NormalizeField(obj map[string]any, field, singularKey string) {
	if obj == nil {
		return
	}
	obj[field] = ExtractNestedArray(obj[field], singularKey)
}

// ParseAffiliateProducts normalizes a paginated product cursor: products
// is unwrapped from {product: ...} and each product's
// product_small_image_urls from {string: ...}. Lists already flat are left
// as they are, so pages mixing both encodings decode. The cursor is
// modified in place and returned.
func ParseAffiliateProducts(cursor map[string]any) map[string]any {
	if cursor == nil {
		return nil
	}

	products := ExtractNestedArray(cursor["products"], "product")
	cursor["products"] = products

	for _, p := range products {
		product, ok := p.(map[string]any)
		if !ok {
			continue
		}
		if _, found := product["product_small_image_urls"]; found {
			NormalizeField(product, "product_small_image_urls", "string")
		}
	}
	return cursor
}

// Truthy reports whether a decoded flag is set. Success flags arrive as
// true, "true" or 1 depending on the endpoint.
func Truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return strings.EqualFold(x, "true") || x == "1"
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	case float64:
		return x != 0
	default:
		return false
	}
}
