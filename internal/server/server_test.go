package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mkessler/clockodo-bridge/internal/clockodo"
	"github.com/mkessler/clockodo-bridge/internal/resources"
	"github.com/mkessler/clockodo-bridge/internal/service"
	"github.com/mkessler/clockodo-bridge/internal/timeutil"
	"github.com/mkessler/clockodo-bridge/internal/tools"
)

func newTestServer(t *testing.T, gateway http.HandlerFunc) *Server {
	t.Helper()
	if gateway == nil {
		gateway = func(w http.ResponseWriter, r *http.Request) {
			t.Fatalf("unexpected Gateway call: %s %s", r.Method, r.URL.Path)
		}
	}
	upstream := httptest.NewServer(gateway)
	t.Cleanup(upstream.Close)

	client := clockodo.NewClient(clockodo.Config{
		APIUser: "bot@example.com",
		APIKey:  "secret",
		BaseURL: upstream.URL,
	}, zap.NewNop())

	registry := tools.NewRegistry(zap.NewNop())
	registry.Register("ping", "Responds with pong.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			return map[string]any{"reply": "pong"}, nil
		})
	registry.Register("no_clock", "Always reports no running clock.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			return nil, service.ErrNoRunningClock
		})
	registry.Register("bad_window", "Always rejects its datetime input.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			return nil, &timeutil.InvalidFormatError{Value: "bogus"}
		})
	registry.Register("who_am_i", "Always fails identity resolution.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			return nil, &service.NotFoundError{Email: "bot@example.com"}
		})
	registry.Register("upstream_down", "Always fails with a Gateway error.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			return nil, &clockodo.APIError{StatusCode: 500, Status: "500 Internal Server Error", Method: "GET", Endpoint: "v2/clock"}
		})
	registry.Register("boom", "Always fails with an unclassified error.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			return nil, errors.New("wires crossed")
		})

	provider := resources.NewProvider(client, zap.NewNop())
	return New(Config{Host: "127.0.0.1", Port: 0}, registry, provider, zap.NewNop())
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response {
	t.Helper()
	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doRequest(t, srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)
	assert.Contains(t, rec.Body.String(), `"clockodo-bridge"`)
}

func TestListTools(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doRequest(t, srv, http.MethodGet, "/tools", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestCallTool_Success(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doRequest(t, srv, http.MethodPost, "/tools/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Contains(t, rec.Body.String(), `"pong"`)
}

func TestCallTool_InvalidJSONBody(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doRequest(t, srv, http.MethodPost, "/tools/ping", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestCallTool_ErrorMapping(t *testing.T) {
	tests := []struct {
		tool       string
		wantStatus int
	}{
		{"unregistered", http.StatusNotFound},
		{"bad_window", http.StatusBadRequest},
		{"who_am_i", http.StatusNotFound},
		{"no_clock", http.StatusConflict},
		{"upstream_down", http.StatusBadGateway},
		{"boom", http.StatusInternalServerError},
	}

	srv := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			rec := doRequest(t, srv, http.MethodPost, "/tools/"+tt.tool, "")
			assert.Equal(t, tt.wantStatus, rec.Code)

			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestGetResource_AbsenceTypes(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doRequest(t, srv, http.MethodGet, "/resources/absence-types", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "clockodo://absence-types")
	assert.Contains(t, rec.Body.String(), `"vacation"`)
}

func TestGetResource_CurrentEntry(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/clock", r.URL.Path)
		w.Write([]byte(`{"running": null}`))
	})
	rec := doRequest(t, srv, http.MethodGet, "/resources/current-entry", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No time entry currently running")
}

func TestGetResource_Unknown(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doRequest(t, srv, http.MethodGet, "/resources/payroll", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetResource_GatewayFailure(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	rec := doRequest(t, srv, http.MethodGet, "/resources/customers", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
