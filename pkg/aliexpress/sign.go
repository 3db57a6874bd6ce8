package aliexpress

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// isPathMethod reports whether the operation is a path-style (/rest) one.
func isPathMethod(method string) bool {
	return strings.Contains(method, "/")
}

// BaseString builds the signing base string for params:
//  1. a path-style method is removed and used verbatim as the prefix
//  2. absent values are dropped
//  3. the remaining keys are sorted byte-wise
//  4. key and value are appended for each, in order
func BaseString(params Params) string {
	values := params.present()

	var b strings.Builder
	if m, ok := params["method"].(string); ok && isPathMethod(m) {
		b.WriteString(m)
		delete(values, "method")
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(values[k])
	}

	return b.String()
}

// Sign returns the uppercase hex HMAC-SHA256 of the base string of
// params, keyed by secret. The sign key itself must not be in params.
func Sign(secret string, params Params) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(BaseString(params)))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

// Sign signs params with the client's application secret.
func (c *Client) Sign(params Params) string {
	return Sign(c.creds.AppSecret, params)
}
