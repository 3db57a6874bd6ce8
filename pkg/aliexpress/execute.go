package aliexpress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/donaldgifford/aliexpress/internal/metrics"
)

// Execute implements Executor. It injects the auth fields, signs, sends a
// bodyless POST and classifies the outcome. Caller params never override
// the injected fields.
func (c *Client) Execute(
	ctx context.Context,
	method string,
	params Params,
) (Body, error) {
	if err := validation.Validate(strings.TrimSpace(method), validation.Required); err != nil {
		return nil, NewValidationError(fmt.Errorf("method: %w", err))
	}
	if err := params.Check(); err != nil {
		return nil, NewValidationError(err)
	}

	return c.do(ctx, method, c.signed(method, params))
}

// Call executes an operation that has no typed wrapper. It rejects a nil
// params map so that a forgotten argument fails before the network.
func (c *Client) Call(
	ctx context.Context,
	method string,
	params Params,
) (Body, error) {
	if params == nil {
		return nil, NewValidationError(errors.New("params must be a valid map"))
	}
	return c.Execute(ctx, method, params)
}

// signed returns a copy of params with the auth fields and signature set.
func (c *Client) signed(method string, params Params) Params {
	p := params.clone(7)
	delete(p, "sign")

	p["method"] = method
	p["app_key"] = c.creds.AppKey
	if c.creds.Session != "" {
		p["session"] = c.creds.Session
	} else {
		delete(p, "session")
	}
	p["simplify"] = true
	p["sign_method"] = SignMethod
	p["timestamp"] = c.nowFunc().UnixMilli()

	p["sign"] = c.Sign(p)
	return p
}

func (c *Client) do(ctx context.Context, method string, params Params) (Body, error) {
	callID := uuid.New().String()
	start := time.Now()

	body, status, err := c.roundTrip(ctx, c.Assemble(params))

	elapsed := time.Since(start)
	metrics.APICallDuration.WithLabelValues(method).Observe(elapsed.Seconds())

	if err != nil {
		var aeErr *Error
		if errors.As(err, &aeErr) && aeErr.Kind == KindPlatform && aeErr.Response != nil {
			metrics.APIPlatformErrorsTotal.WithLabelValues(aeErr.Response.Code).Inc()
		}
		metrics.APICallsTotal.WithLabelValues(method, KindOf(err).String()).Inc()
		c.logger.WarnContext(ctx, "aliexpress call failed",
			"method", method,
			"call_id", callID,
			"status", status,
			"kind", KindOf(err).String(),
			"request_id", RequestIDOf(err),
			"err", err,
		)
		return nil, err
	}

	metrics.APICallsTotal.WithLabelValues(method, "ok").Inc()
	c.logger.DebugContext(ctx, "aliexpress call",
		"method", method,
		"call_id", callID,
		"status", status,
		"duration", elapsed,
	)
	return body, nil
}

// roundTrip performs the HTTP exchange and returns the decoded body and
// status code.
func (c *Client) roundTrip(ctx context.Context, u string) (Body, int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, http.NoBody)
	if err != nil {
		return nil, 0, NewValidationError(fmt.Errorf("creating HTTP request: %w", err))
	}

	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, 0, networkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, networkError(fmt.Errorf("reading response body: %w", err))
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	body, decodeErr := DecodeBody(data)
	if decodeErr != nil {
		if !ok {
			return nil, resp.StatusCode, httpError(resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return nil, resp.StatusCode, decodeErr
	}

	// The envelope wins over the status so the request id is never lost.
	if envelope, found := body["error_response"]; found {
		return nil, resp.StatusCode, platformError(envelope, resp.StatusCode)
	}

	if !ok {
		return nil, resp.StatusCode, httpError(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return body, resp.StatusCode, nil
}

// platformError converts an error_response envelope. An envelope that does
// not decode still yields a platform error, with the failure kept as Err.
func platformError(envelope any, status int) *Error {
	var (
		er     ErrorResponse
		detail error
	)
	if m, ok := envelope.(map[string]any); ok {
		if err := Decode(m, &er); err != nil {
			detail = fmt.Errorf("malformed error_response: %v", err)
		}
	} else {
		detail = fmt.Errorf("malformed error_response: got %T, want object", envelope)
	}

	perr := NewPlatformError(&er, status)
	perr.Err = detail
	return perr
}
