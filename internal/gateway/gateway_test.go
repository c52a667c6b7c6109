package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/questlane/backend/config"
	"github.com/questlane/backend/pkg/logger"
	"github.com/questlane/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newGatewayContext(authURL, catalogURL, processingURL string) context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, config.Configs{
		AuthEndpoints:       []string{authURL},
		CatalogEndpoints:    []string{catalogURL},
		ProcessingEndpoints: []string{processingURL},
	})
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithHTTPClient(ctx, http.DefaultClient)
	return ctx
}

func newBackend(name string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("X-Backend", name)
		w.WriteHeader(http.StatusOK)
	}))
}

func Test_Gateway_Routing(t *testing.T) {
	auth := newBackend("auth")
	defer auth.Close()
	catalog := newBackend("catalog")
	defer catalog.Close()
	processing := newBackend("processing")
	defer processing.Close()

	ctx := newGatewayContext(auth.URL, catalog.URL, processing.URL)
	gateway, err := New(ctx)
	require.NoError(t, err)

	testcases := []struct {
		path    string
		backend string
	}{
		{path: "/signup", backend: "auth"},
		{path: "/login", backend: "auth"},
		{path: "/getUser?id=user1", backend: "auth"},
		{path: "/getListQuest", backend: "catalog"},
		{path: "/createReward", backend: "catalog"},
		{path: "/assignQuest", backend: "processing"},
		{path: "/getUserQuests?user_id=user1", backend: "processing"},
	}

	for _, tc := range testcases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		w := httptest.NewRecorder()
		gateway.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, tc.path)
		require.Equal(t, tc.backend, w.Header().Get("X-Backend"), tc.path)
	}
}

func Test_Gateway_Routing_OverlappingPaths(t *testing.T) {
	auth := newBackend("auth")
	defer auth.Close()
	processing := newBackend("processing")
	defer processing.Close()

	ctx := newGatewayContext(auth.URL, auth.URL, processing.URL)
	gateway, err := New(ctx)
	require.NoError(t, err)

	// /getUserQuests starts with /getUser but belongs to the processing
	// service, the auth route must not capture it.
	testcases := map[string]string{
		"/getUser?id=user1":            "auth",
		"/getUserQuests?user_id=user1": "processing",
	}

	for path, backend := range testcases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		gateway.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)
		require.Equal(t, backend, w.Header().Get("X-Backend"), path)
	}
}

func Test_Gateway_UnknownRoute(t *testing.T) {
	auth := newBackend("auth")
	defer auth.Close()

	ctx := newGatewayContext(auth.URL, auth.URL, auth.URL)
	gateway, err := New(ctx)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	w := httptest.NewRecorder()
	gateway.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp, "error")
}

func Test_Gateway_UnavailableBackend(t *testing.T) {
	// A closed server simulates a backend that is down.
	down := newBackend("down")
	down.Close()

	ctx := newGatewayContext(down.URL, down.URL, down.URL)
	gateway, err := New(ctx)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	w := httptest.NewRecorder()
	gateway.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func Test_Gateway_Health(t *testing.T) {
	healthy := newBackend("healthy")
	defer healthy.Close()

	down := newBackend("down")
	down.Close()

	ctx := newGatewayContext(healthy.URL, healthy.URL, down.URL)
	gateway, err := New(ctx)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	gateway.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var report healthReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Equal(t, "healthy", report.Gateway)
	require.Equal(t, "degraded", report.OverallStatus)
	require.Equal(t, "healthy", report.Services["auth"].Status)
	require.Equal(t, "unreachable", report.Services["quest_processing"].Status)
}
