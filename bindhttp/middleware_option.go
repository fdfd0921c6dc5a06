package bindhttp

import (
	"log/slog"
	"net/http"

	"github.com/goresolve/bindkit"
)

// MiddlewareOption is used to configure the request scope middleware when
// calling [NewRequestScopeMiddleware].
type MiddlewareOption interface {
	applyScopeMiddleware(*scopeMiddleware)
}

type middlewareOption func(*scopeMiddleware)

func (o middlewareOption) applyScopeMiddleware(mw *scopeMiddleware) { o(mw) }

// WithScopeValues seeds additional values into each request scope. Seeded
// values take precedence over registered producers for that request.
func WithScopeValues(f func(r *http.Request) map[bindkit.Key]any) MiddlewareOption {
	return middlewareOption(func(mw *scopeMiddleware) {
		mw.values = f
	})
}

// WithLogger sets the logger used for scope lifecycle logging. The default is
// [slog.Default].
func WithLogger(l *slog.Logger) MiddlewareOption {
	return middlewareOption(func(mw *scopeMiddleware) {
		if l != nil {
			mw.logger = l
		}
	})
}
