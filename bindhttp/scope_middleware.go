package bindhttp

import (
	"log/slog"
	"net/http"

	"github.com/goresolve/bindkit"
	"github.com/goresolve/bindkit/bindctx"
	"github.com/goresolve/bindkit/internal/errors"
)

// NewRequestScopeMiddleware returns middleware that creates a new activation
// scope for each request. The scope is disposed after the request has been
// processed.
//
// The current [*http.Request] is seeded into the scope, so request-scoped
// services can depend on it.
//
// The scope is stored on the request context and can be accessed using
// [bindctx.Scope], [bindctx.Resolve], or [bindctx.MustResolve].
//
// Available options:
//   - [WithScopeValues] seeds additional per-request values into each scope.
//   - [WithLogger] sets the logger used for scope lifecycle logging.
func NewRequestScopeMiddleware(p *bindkit.Provider, opts ...MiddlewareOption) (func(http.Handler) http.Handler, error) {
	if p == nil {
		return nil, errors.New("bindhttp.NewRequestScopeMiddleware: provider is nil")
	}

	mw := &scopeMiddleware{
		p:      p,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt.applyScopeMiddleware(mw)
	}

	return func(next http.Handler) http.Handler {
		return &scopeHandler{mw: mw, next: next}
	}, nil
}

type scopeMiddleware struct {
	p      *bindkit.Provider
	values func(r *http.Request) map[bindkit.Key]any
	logger *slog.Logger
}

type scopeHandler struct {
	mw   *scopeMiddleware
	next http.Handler
}

func (h *scopeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	scope := h.mw.p.NewScope()
	defer func() {
		scope.Dispose()
		h.mw.logger.DebugContext(r.Context(), "request scope disposed", "path", r.URL.Path)
	}()

	scope.Seed(bindkit.KeyFor[*http.Request](), r)
	if h.mw.values != nil {
		for key, val := range h.mw.values(r) {
			scope.Seed(key, val)
		}
	}

	ctx := bindctx.WithScope(r.Context(), scope)
	h.next.ServeHTTP(w, r.WithContext(ctx))
}
