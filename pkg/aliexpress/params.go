package aliexpress

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Params maps request field names to scalar values. A nil value (or nil
// pointer) marks the field absent: it is neither signed nor sent.
// Structured values must be encoded to a string first, see JSONParam.
type Params map[string]any

// clone returns a shallow copy with room for the injected fields.
func (p Params) clone(extra int) Params {
	out := make(Params, len(p)+extra)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// present returns the string form of every non-absent value. Values that
// fail Check are skipped.
func (p Params) present() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		if s, ok, err := render(v); ok && err == nil {
			out[k] = s
		}
	}
	return out
}

// Check reports the first parameter whose value is not a scalar. Maps,
// slices and structs must be encoded with JSONParam before they are sent.
func (p Params) Check() error {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if _, _, err := render(p[k]); err != nil {
			return fmt.Errorf("parameter %q: %w", k, err)
		}
	}
	return nil
}

// render returns the string form of a scalar the way the platform expects
// it in both the signing base string and the query string. ok is false for
// absent values.
func render(v any) (s string, ok bool, err error) {
	switch x := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return x, true, nil
	case bool:
		return strconv.FormatBool(x), true, nil
	case json.Number:
		return x.String(), true, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true, nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false, nil
		}
		if st, isStringer := v.(fmt.Stringer); isStringer {
			return st.String(), true, nil
		}
		return render(rv.Elem().Interface())
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true, nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true, nil
	}

	if st, isStringer := v.(fmt.Stringer); isStringer {
		return st.String(), true, nil
	}
	return "", false, fmt.Errorf("unsupported value of type %T (encode nested objects with JSONParam)", v)
}

// ParamsFrom converts a request struct into Params using its json tags.
// Fields tagged omitempty are left out when zero; embedded structs are
// flattened.
func ParamsFrom(v any) (Params, error) {
	out := map[string]any{}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Squash:  true,
		Result:  &out,
	})
	if err != nil {
		return nil, fmt.Errorf("creating params decoder: %w", err)
	}
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("converting request to params: %w", err)
	}

	return Params(out), nil
}

// JSONParam encodes a structured sub-object into the string form the
// platform expects for nested parameters.
func JSONParam(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", NewValidationError(fmt.Errorf("encoding nested parameter: %w", err))
	}
	return string(b), nil
}
