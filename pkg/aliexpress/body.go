package aliexpress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Body is a decoded response. Numbers are kept as json.Number so ids
// survive without float rounding.
type Body map[string]any

// DecodeBody parses a response payload. The payload must be a JSON object.
func DecodeBody(data []byte) (Body, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var body Body
	if err := dec.Decode(&body); err != nil {
		return nil, NewDecodeError("invalid JSON response", err)
	}
	if body == nil {
		return nil, NewDecodeError("invalid JSON response: empty body", nil)
	}
	return body, nil
}

// Envelope walks nested objects along keys and returns the innermost one.
// A missing or non-object step is a decode error naming the path.
func (b Body) Envelope(keys ...string) (map[string]any, error) {
	cur := map[string]any(b)
	for i, k := range keys {
		next, ok := cur[k].(map[string]any)
		if !ok {
			return nil, NewDecodeError(
				fmt.Sprintf("unexpected response shape: missing %q", strings.Join(keys[:i+1], ".")),
				nil,
			)
		}
		cur = next
	}
	return cur, nil
}

// FirstEnvelope returns the first top-level envelope present among keys.
// The platform has renamed some envelopes between API versions.
func (b Body) FirstEnvelope(keys ...string) (map[string]any, error) {
	for _, k := range keys {
		if env, ok := ExtractNestedProperty(map[string]any(b), k).(map[string]any); ok {
			return env, nil
		}
	}
	return nil, NewDecodeError(
		fmt.Sprintf("unexpected response shape: none of %q present", keys),
		nil,
	)
}

// ResponseKey returns the success envelope key of a legacy operation:
// dots become underscores and "_response" is appended.
func ResponseKey(method string) string {
	return strings.ReplaceAll(method, ".", "_") + "_response"
}

// Decode converts normalized response data into a typed result using json
// tags. Input is weakly typed: the platform sends the same field as "123"
// or 123 depending on the endpoint.
func Decode(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Squash:           true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return NewDecodeError("creating result decoder", err)
	}
	if err := dec.Decode(in); err != nil {
		return NewDecodeError(fmt.Sprintf("decoding %T", out), err)
	}
	return nil
}
