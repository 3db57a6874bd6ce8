package aliexpress_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/aliexpress/internal/metrics"
	"github.com/donaldgifford/aliexpress/pkg/aliexpress"
)

var fixedNow = time.UnixMilli(1700000000000)

func newServerClient(t *testing.T, handler http.HandlerFunc, opts ...aliexpress.Option) *aliexpress.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]aliexpress.Option{
		aliexpress.WithSyncURL(srv.URL + "/sync"),
		aliexpress.WithRestURL(srv.URL + "/rest"),
		aliexpress.WithNowFunc(func() time.Time { return fixedNow }),
	}, opts...)
	return newTestClient(t, opts...)
}

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		creds aliexpress.Credentials
	}{
		{name: "missing app key", creds: aliexpress.Credentials{AppSecret: "s"}},
		{name: "missing app secret", creds: aliexpress.Credentials{AppKey: "k"}},
		{name: "empty", creds: aliexpress.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := aliexpress.NewClient(tt.creds)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, aliexpress.ErrValidation)
		})
	}

	c, err := aliexpress.NewClient(aliexpress.Credentials{AppKey: "k", AppSecret: "s"})
	require.NoError(t, err)
	assert.Equal(t, "k", c.AppKey())
}

func TestClient_Execute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		handler    http.HandlerFunc
		wantErr    bool
		wantKind   aliexpress.Kind
		errContain string
		wantReqID  string
		wantStatus int
		check      func(t *testing.T, body aliexpress.Body)
	}{
		{
			name:   "successful legacy call",
			method: "aliexpress.ds.product.get",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/sync", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.Equal(t, "aliexpress.ds.product.get", r.URL.Query().Get("method"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"aliexpress_ds_product_get_response":{"result":{"product_id":1005001234567890}}}`))
			},
			check: func(t *testing.T, body aliexpress.Body) {
				t.Helper()
				env, err := body.Envelope("aliexpress_ds_product_get_response", "result")
				require.NoError(t, err)
				assert.Equal(t, json.Number("1005001234567890"), env["product_id"])
			},
		},
		{
			name:   "path style call goes to rest gateway",
			method: "/auth/token/create",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/rest/auth/token/create", r.URL.Path)
				assert.Empty(t, r.URL.Query().Get("method"))
				_, _ = w.Write([]byte(`{"access_token":"tok","code":"0"}`))
			},
			check: func(t *testing.T, body aliexpress.Body) {
				t.Helper()
				assert.Equal(t, "tok", body["access_token"])
			},
		},
		{
			name:   "500 server error",
			method: "aliexpress.ds.product.get",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("upstream exploded"))
			},
			wantErr:    true,
			wantKind:   aliexpress.KindHTTP,
			errContain: "500",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "non 2xx with JSON but no envelope",
			method: "aliexpress.ds.product.get",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`{"message":"gateway"}`))
			},
			wantErr:    true,
			wantKind:   aliexpress.KindHTTP,
			errContain: "HTTP error: 502 Bad Gateway",
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "malformed JSON",
			method: "aliexpress.ds.product.get",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not valid json"))
			},
			wantErr:    true,
			wantKind:   aliexpress.KindDecode,
			errContain: "invalid JSON response",
		},
		{
			name:   "JSON array instead of object",
			method: "aliexpress.ds.product.get",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[1,2]`))
			},
			wantErr:  true,
			wantKind: aliexpress.KindDecode,
		},
		{
			name:   "platform error on 200",
			method: "aliexpress.ds.product.get",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"error_response":{"type":"ISV","code":"IncompleteSignature","msg":"The request signature does not conform to platform standards","request_id":"2101d05f17000000000000000"}}`))
			},
			wantErr:    true,
			wantKind:   aliexpress.KindPlatform,
			errContain: "platform error (code IncompleteSignature): The request signature does not conform to platform standards",
			wantReqID:  "2101d05f17000000000000000",
			wantStatus: http.StatusOK,
		},
		{
			name:   "platform error on 400 keeps request id",
			method: "aliexpress.ds.product.get",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error_response":{"code":"MissingParameter","msg":"missing product_id","sub_msg":"product_id is required","request_id":"req-400"}}`))
			},
			wantErr:    true,
			wantKind:   aliexpress.KindPlatform,
			errContain: "(product_id is required)",
			wantReqID:  "req-400",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "platform error without details",
			method: "aliexpress.ds.product.get",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"error_response":{}}`))
			},
			wantErr:    true,
			wantKind:   aliexpress.KindPlatform,
			errContain: "bad request",
			wantStatus: http.StatusOK,
		},
		{
			name:       "blank method",
			method:     "  ",
			handler:    func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) },
			wantErr:    true,
			wantKind:   aliexpress.KindValidation,
			errContain: "method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newServerClient(t, tt.handler)
			body, err := c.Execute(context.Background(), tt.method, aliexpress.Params{"product_id": "1"})

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, body)
				assert.Equal(t, tt.wantKind, aliexpress.KindOf(err))
				if tt.errContain != "" {
					assert.Contains(t, err.Error(), tt.errContain)
				}
				assert.Equal(t, tt.wantReqID, aliexpress.RequestIDOf(err))

				var aeErr *aliexpress.Error
				require.ErrorAs(t, err, &aeErr)
				assert.Equal(t, tt.wantStatus, aeErr.StatusCode)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}

func TestClient_Execute_InjectedFields(t *testing.T) {
	t.Parallel()

	var got atomic.Value
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.URL.Query())
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.Execute(context.Background(), "aliexpress.ds.product.get", aliexpress.Params{
		"product_id":  "1005001234567890",
		"app_key":     "attacker",
		"sign":        "FORGED",
		"sign_method": "md5",
		"timestamp":   "1",
		"absent":      nil,
	})
	require.NoError(t, err)

	q := got.Load().(url.Values)
	assert.Equal(t, "12345678", q.Get("app_key"))
	assert.Equal(t, "test-session", q.Get("session"))
	assert.Equal(t, "true", q.Get("simplify"))
	assert.Equal(t, "sha256", q.Get("sign_method"))
	assert.Equal(t, "1700000000000", q.Get("timestamp"))
	assert.Equal(t, "1005001234567890", q.Get("product_id"))
	assert.Empty(t, q.Get("absent"))

	want := aliexpress.Sign(testSecret, aliexpress.Params{
		"method":      "aliexpress.ds.product.get",
		"app_key":     "12345678",
		"session":     "test-session",
		"simplify":    true,
		"sign_method": "sha256",
		"timestamp":   int64(1700000000000),
		"product_id":  "1005001234567890",
	})
	assert.Equal(t, want, q.Get("sign"))
}

func TestClient_Execute_OmitsEmptySession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["session"]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c, err := aliexpress.NewClient(
		aliexpress.Credentials{AppKey: "k", AppSecret: "s"},
		aliexpress.WithSyncURL(srv.URL),
	)
	require.NoError(t, err)

	_, err = c.Execute(context.Background(), "aliexpress.ds.product.get", aliexpress.Params{"session": "caller"})
	require.NoError(t, err)
}

func TestClient_Execute_DoesNotMutateParams(t *testing.T) {
	t.Parallel()

	c := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	params := aliexpress.Params{"product_id": "1"}
	_, err := c.Execute(context.Background(), "aliexpress.ds.product.get", params)
	require.NoError(t, err)
	assert.Equal(t, aliexpress.Params{"product_id": "1"}, params)
}

func TestClient_Execute_ContextCanceled(t *testing.T) {
	t.Parallel()

	c := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Execute(ctx, "aliexpress.ds.product.get", aliexpress.Params{})
	require.Error(t, err)
	assert.ErrorIs(t, err, aliexpress.ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "network error")
}

type failingDoer struct{}

func (failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestClient_Execute_NetworkError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, aliexpress.WithHTTPClient(failingDoer{}))

	_, err := c.Execute(context.Background(), "aliexpress.ds.product.get", aliexpress.Params{})
	require.Error(t, err)
	assert.Equal(t, aliexpress.KindNetwork, aliexpress.KindOf(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, aliexpress.RequestIDOf(err))
}

func TestClient_Call(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "aliexpress.logistics.ds.trackinginfo.query", r.URL.Query().Get("method"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	_, err := c.Call(context.Background(), "aliexpress.logistics.ds.trackinginfo.query", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, aliexpress.ErrValidation)
	assert.Contains(t, err.Error(), "params must be a valid map")
	assert.Zero(t, calls.Load())

	body, err := c.Call(context.Background(), "aliexpress.logistics.ds.trackinginfo.query", aliexpress.Params{})
	require.NoError(t, err)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Execute_Metrics(t *testing.T) {
	t.Parallel()

	const (
		okMethod   = "metrics.test.ok"
		failMethod = "metrics.test.platform"
	)

	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("method") == failMethod {
			_, _ = w.Write([]byte(`{"error_response":{"code":"MetricsTestCode","msg":"nope"}}`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})

	okBefore := testutil.ToFloat64(metrics.APICallsTotal.WithLabelValues(okMethod, "ok"))
	failBefore := testutil.ToFloat64(metrics.APICallsTotal.WithLabelValues(failMethod, "platform"))
	codeBefore := testutil.ToFloat64(metrics.APIPlatformErrorsTotal.WithLabelValues("MetricsTestCode"))

	_, err := c.Execute(context.Background(), okMethod, aliexpress.Params{})
	require.NoError(t, err)
	_, err = c.Execute(context.Background(), failMethod, aliexpress.Params{})
	require.Error(t, err)

	assert.InDelta(t, okBefore+1, testutil.ToFloat64(metrics.APICallsTotal.WithLabelValues(okMethod, "ok")), 0.001)
	assert.InDelta(t, failBefore+1, testutil.ToFloat64(metrics.APICallsTotal.WithLabelValues(failMethod, "platform")), 0.001)
	assert.InDelta(t, codeBefore+1, testutil.ToFloat64(metrics.APIPlatformErrorsTotal.WithLabelValues("MetricsTestCode")), 0.001)
}

func TestClient_Execute_MalformedErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		response   string
		errContain string
	}{
		{
			name:       "envelope is not an object",
			response:   `{"error_response":"boom"}`,
			errContain: "got string, want object",
		},
		{
			name:       "code does not decode",
			response:   `{"error_response":{"code":{"nested":1},"request_id":"r-2"}}`,
			errContain: "malformed error_response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.response))
			})

			_, err := c.Execute(context.Background(), "aliexpress.ds.product.get", aliexpress.Params{})
			require.Error(t, err)
			assert.ErrorIs(t, err, aliexpress.ErrPlatform)
			assert.NotErrorIs(t, err, aliexpress.ErrDecode)

			var aeErr *aliexpress.Error
			require.ErrorAs(t, err, &aeErr)
			require.Error(t, aeErr.Err)
			assert.Contains(t, aeErr.Err.Error(), tt.errContain)
		})
	}
}

func TestClient_Execute_WellFormedErrorResponseHasNoCause(t *testing.T) {
	t.Parallel()

	c := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error_response":{"code":"15","msg":"Remote service error","request_id":"r-3"}}`))
	})

	_, err := c.Execute(context.Background(), "aliexpress.ds.product.get", aliexpress.Params{})
	var aeErr *aliexpress.Error
	require.ErrorAs(t, err, &aeErr)
	assert.NoError(t, aeErr.Err)
	assert.Equal(t, "r-3", aeErr.RequestID)
}

func TestClient_Execute_RejectsNestedParams(t *testing.T) {
	t.Parallel()

	type address struct {
		Country string `json:"country"`
	}

	tests := []struct {
		name  string
		value any
	}{
		{name: "map", value: map[string]any{"country": "US"}},
		{name: "slice", value: []string{"a", "b"}},
		{name: "struct", value: address{Country: "US"}},
		{name: "struct pointer", value: &address{Country: "US"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			c := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				_, _ = w.Write([]byte(`{}`))
			})

			_, err := c.Execute(context.Background(), "aliexpress.ds.order.create", aliexpress.Params{
				"product_id": "1",
				"address":    tt.value,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, aliexpress.ErrValidation)
			assert.Contains(t, err.Error(), `parameter "address"`)
			assert.Contains(t, err.Error(), "JSONParam")
			assert.Zero(t, calls.Load())
		})
	}
}
