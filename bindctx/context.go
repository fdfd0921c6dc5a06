package bindctx

import (
	"context"

	"github.com/goresolve/bindkit"
	"github.com/goresolve/bindkit/internal/errors"
)

type scopeContextKey struct{}

// WithScope returns a new [context.Context] that carries the provided
// activation scope.
func WithScope(ctx context.Context, s *bindkit.Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, s)
}

// Scope returns the activation scope stored on the [context.Context], if
// present.
func Scope(ctx context.Context) *bindkit.Scope {
	if s, ok := ctx.Value(scopeContextKey{}).(*bindkit.Scope); ok {
		return s
	}
	return nil
}

// Resolve activates a service of type Service from the scope stored on the
// [context.Context].
func Resolve[Service any](ctx context.Context, opts ...bindkit.GetOption) (Service, error) {
	var val Service

	s := Scope(ctx)
	if s == nil {
		return val, errors.Errorf("resolve %s from context: scope not found on context",
			bindkit.KeyFor[Service]())
	}

	anyVal, err := s.Get(bindkit.KeyFor[Service](), opts...)
	if anyVal != nil {
		val = anyVal.(Service)
	}

	return val, errors.Wrap(err, "resolve from context")
}

// MustResolve activates a service of type Service from the scope stored on the
// [context.Context].
//
// If the service cannot be resolved, this function will panic.
func MustResolve[Service any](ctx context.Context, opts ...bindkit.GetOption) Service {
	val, err := Resolve[Service](ctx, opts...)
	if err != nil {
		panic(err)
	}
	return val
}
