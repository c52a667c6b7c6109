package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/questlane/backend/pkg/errorx"
	"github.com/questlane/backend/pkg/router"
	"github.com/questlane/backend/pkg/xcontext"
)

var authPaths = []string{
	"/signup", "/login", "/refresh", "/getUser", "/updateUser", "/addGold", "/addDiamonds",
}

var catalogPaths = []string{
	"/createReward", "/getReward", "/getListReward", "/updateReward", "/deleteReward",
	"/createQuest", "/getQuest", "/getListQuest", "/updateQuest", "/deleteQuest",
}

var processingPaths = []string{
	"/assignQuest", "/getUserQuests", "/completeQuest", "/claimQuest", "/trackSignIn",
}

// Gateway routes public requests to the backend services by exact path.
// Prefix matching is unsafe here, /getUserQuests shares a prefix with
// /getUser but belongs to another service.
type Gateway struct {
	ctx context.Context

	routes map[string]*httputil.ReverseProxy

	healthChecker *healthChecker
}

func New(ctx context.Context) (*Gateway, error) {
	configs := xcontext.Configs(ctx)

	authProxy, err := newProxy(ctx, configs.AuthEndpoints[0])
	if err != nil {
		return nil, err
	}

	catalogProxy, err := newProxy(ctx, configs.CatalogEndpoints[0])
	if err != nil {
		return nil, err
	}

	processingProxy, err := newProxy(ctx, configs.ProcessingEndpoints[0])
	if err != nil {
		return nil, err
	}

	routes := map[string]*httputil.ReverseProxy{}
	for _, p := range authPaths {
		routes[p] = authProxy
	}

	for _, p := range catalogPaths {
		routes[p] = catalogProxy
	}

	for _, p := range processingPaths {
		routes[p] = processingProxy
	}

	return &Gateway{
		ctx:           ctx,
		routes:        routes,
		healthChecker: newHealthChecker(5 * time.Second),
	}, nil
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	if path == "/health" {
		g.serveHealth(w)
		return
	}

	proxy, ok := g.routes[path]
	if !ok {
		xcontext.Logger(g.ctx).Warnf("Unknown route: %s %s", req.Method, path)
		w.WriteHeader(http.StatusNotFound)
		writeError(g.ctx, w, errorx.New(errorx.NotFound, "Route not found: %s", path))
		return
	}

	proxy.ServeHTTP(w, req)
}

func (g *Gateway) serveHealth(w http.ResponseWriter) {
	configs := xcontext.Configs(g.ctx)
	services := map[string]string{
		"auth":             configs.AuthEndpoints[0],
		"quest_catalog":    configs.CatalogEndpoints[0],
		"quest_processing": configs.ProcessingEndpoints[0],
	}

	report := g.healthChecker.Check(g.ctx, services)
	if err := router.WriteJSON(w, report); err != nil {
		xcontext.Logger(g.ctx).Errorf("Cannot write health report: %v", err)
	}
}

func newProxy(ctx context.Context, endpoint string) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, req *http.Request, err error) {
		xcontext.Logger(ctx).Errorf("Cannot proxy to %s: %v", target, err)
		w.WriteHeader(http.StatusServiceUnavailable)
		writeError(ctx, w, errorx.New(errorx.Unavailable, "Backend service unavailable"))
	}

	return proxy, nil
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	errx := errorx.Error{}
	resp := map[string]any{"code": errorx.Unknown.Code, "error": errorx.Unknown.Message}
	if errors.As(err, &errx) {
		resp = map[string]any{"code": errx.Code, "error": errx.Message}
	}

	if err := router.WriteJSON(w, resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write error response: %v", err)
	}
}
