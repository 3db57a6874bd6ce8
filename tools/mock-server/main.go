// Package main implements a mock AliExpress gateway for local development.
// It verifies request signatures the way the platform does and answers
// each operation with a canned response from a JSON fixture file, so aectl
// and the client libraries can run without real credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress"
	"github.com/donaldgifford/aliexpress/pkg/logger"
)

// fixtures maps an operation name (dot-named or path-style) to the body
// returned for it.
type fixtures map[string]json.RawMessage

// gateway holds the credentials requests are checked against.
type gateway struct {
	appKey    string
	appSecret string
	fixtures  fixtures
	logger    *slog.Logger
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/fixtures.json", "path to operation fixtures")
	appKey := flag.String("app-key", "mock-app-key", "application key accepted by the gateway")
	appSecret := flag.String("app-secret", "mock-app-secret", "application secret used to verify signatures")
	logFormat := flag.String("log-format", logger.FormatPretty, "log format: text, json or pretty")
	flag.Parse()

	log := logger.New("debug", *logFormat)

	fx, err := loadFixtures(*fixtureFile)
	if err != nil {
		log.Error("failed to load fixtures", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	log.Info("loaded fixtures", "operations", len(fx))

	g := &gateway{appKey: *appKey, appSecret: *appSecret, fixtures: fx, logger: log}

	addr := fmt.Sprintf(":%d", *port)
	log.Info("starting mock AliExpress gateway", "addr", addr,
		"sync_url", "http://localhost"+addr+"/sync",
		"rest_url", "http://localhost"+addr+"/rest")

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(log, g.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixtures(path string) (fixtures, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	var fx fixtures
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}
	return fx, nil
}

func requestLogger(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func (g *gateway) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /sync", g.handle)
	mux.HandleFunc("POST /rest/", g.handle)
	return mux
}

// handle verifies and answers one call. Both gateways carry every
// parameter in the query string; path-style operations are named by the
// URL path below /rest.
func (g *gateway) handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	op := query.Get("method")
	if rest, ok := strings.CutPrefix(r.URL.Path, "/rest"); ok {
		op = rest
	}

	if code, msg := g.verify(op, query); code != "" {
		g.logger.Warn("rejected call", "operation", op, "code", code)
		writeError(w, code, msg)
		return
	}

	body, ok := g.fixtures[op]
	if !ok {
		g.logger.Warn("no fixture for operation", "operation", op)
		writeError(w, "InvalidApiPath", "The specified API path is invalid")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	w.Write(body)
	g.logger.Info("served fixture", "operation", op)
}

// verify returns a platform error code and message when the call would be
// rejected by the real gateway.
func (g *gateway) verify(op string, query url.Values) (string, string) {
	if op == "" {
		return "MissingMethod", "The request must contain method"
	}
	if query.Get("app_key") != g.appKey {
		return "InvalidAppKey", "The specified app key is invalid"
	}
	if query.Get("sign_method") != aliexpress.SignMethod {
		return "InvalidSignatureMethod", "The specified signature method is invalid"
	}
	if query.Get("timestamp") == "" {
		return "MissingTimestamp", "The request must contain timestamp"
	}

	got := query.Get("sign")
	if got == "" {
		return "MissingSignature", "The request must contain sign"
	}

	params := aliexpress.Params{"method": op}
	for k, v := range query {
		if k == "sign" || len(v) == 0 {
			continue
		}
		params[k] = v[0]
	}
	if want := aliexpress.Sign(g.appSecret, params); got != want {
		return "IncompleteSignature", "The request signature does not conform to platform standards"
	}
	return "", ""
}

func writeError(w http.ResponseWriter, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]any{
		"error_response": aliexpress.ErrorResponse{
			Type:      "ISV",
			Code:      code,
			Msg:       msg,
			RequestID: uuid.NewString(),
		},
	})
}
