package router

import (
	"context"
	"net/http"

	"github.com/questlane/backend/pkg/xcontext"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before or after the handler. A non-nil returned context
// replaces the request context for the rest of the chain.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc always runs after the response is determined, even if a
// middleware or the handler failed.
type CloserFunc func(ctx context.Context)

type Router struct {
	ctx context.Context
	mux *http.ServeMux

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(ctx context.Context) *Router {
	return &Router{
		ctx: ctx,
		mux: http.NewServeMux(),
	}
}

// Branch creates a new router sharing the same mux and base context, with a
// copy of the current middleware chains. Middlewares added to the branch do
// not affect the parent.
func (r *Router) Branch() *Router {
	branch := &Router{ctx: r.ctx, mux: r.mux}
	branch.befores = append(branch.befores, r.befores...)
	branch.afters = append(branch.afters, r.afters...)
	branch.closers = append(branch.closers, r.closers...)
	return branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	registerHandler(r, http.MethodGet, pattern, handler)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	registerHandler(r, http.MethodPost, pattern, handler)
}

func registerHandler[Request, Response any](
	r *Router, method, pattern string, handler HandlerFunc[Request, Response],
) {
	befores := r.befores
	afters := r.afters
	closers := r.closers

	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		ctx := xcontext.WithHTTPRequest(r.ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithError(ctx)
		ctx = xcontext.WithResponse(ctx)

		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()
		defer handleResponse(ctx)

		if req.Method != method {
			xcontext.SetError(ctx, errNotSupportedMethod)
			return
		}

		for _, m := range befores {
			newCtx, err := m(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}

		var request Request
		var err error
		switch method {
		case http.MethodGet:
			err = bindQuery(req.URL.Query(), &request)
		case http.MethodPost:
			err = bindBody(req.Body, &request)
		}
		if err != nil {
			xcontext.SetError(ctx, err)
			return
		}

		resp, err := handler(ctx, &request)
		if err != nil {
			xcontext.SetError(ctx, err)
			return
		}

		if resp != nil {
			xcontext.SetResponse(ctx, resp)
		}

		for _, m := range afters {
			newCtx, err := m(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}
	})
}
