package bindkit

import (
	"context"
	"fmt"
	"reflect"

	"github.com/goresolve/bindkit/internal/errors"
)

// Executor invokes a callable with arguments resolved from the provider inside
// a dedicated activation scope. The scope is disposed when the call returns,
// including on error paths. scoped values are seeded into the scope and take
// precedence over registry resolution for that invocation.
type Executor func(ctx context.Context, scoped map[Key]any) (any, error)

// execPlan is the compiled argument-resolution plan for one callable
// signature. Plans are derived from the function type only, so they are safe
// to reuse across distinct closures sharing a code pointer.
type execPlan struct {
	t       reflect.Type
	getters []func(ctx context.Context, s *Scope) (any, error)
}

type execResult struct {
	plan *execPlan
	err  error
}

// GetExecutor builds an executor for fn, resolving each parameter the same way
// constructor dependencies are resolved.
//
// Parameters of type [context.Context] receive the invocation context, and
// parameters of type [*Scope] receive the invocation scope. A parameter
// declared as any has no usable type and resolves by name instead, taken
// positionally from names.
//
// The executor returns the first non-error result of fn, and its error result
// if fn declares one. Resolution itself is always synchronous; only the
// callable's own body may block.
func (p *Provider) GetExecutor(fn any, names ...string) (Executor, error) {
	v := reflect.ValueOf(fn)

	plan, err := p.buildExecPlan(reflect.TypeOf(fn), names)
	if err != nil {
		return nil, errors.Wrapf(err, "bindkit.GetExecutor %T", fn)
	}

	return func(ctx context.Context, scoped map[Key]any) (any, error) {
		return plan.run(ctx, p, v, scoped)
	}, nil
}

// Exec invokes fn with arguments resolved from the provider, memoizing the
// compiled resolution plan per callable.
func (p *Provider) Exec(ctx context.Context, fn any, scoped map[Key]any) (any, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, errors.Errorf("bindkit.Exec %T: fn must be a function", fn)
	}

	res, _ := p.execs.LoadOrCompute(v.Pointer(), func() execResult {
		plan, err := p.buildExecPlan(v.Type(), nil)
		return execResult{plan: plan, err: err}
	})
	if res.err != nil {
		return nil, errors.Wrapf(res.err, "bindkit.Exec %T", fn)
	}

	return res.plan.run(ctx, p, v, scoped)
}

func (p *Provider) buildExecPlan(t reflect.Type, names []string) (*execPlan, error) {
	if t == nil || t.Kind() != reflect.Func {
		return nil, errors.New("fn must be a function")
	}
	if t.IsVariadic() {
		return nil, errors.New("variadic functions are not supported")
	}

	getters := make([]func(ctx context.Context, s *Scope) (any, error), t.NumIn())
	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)

		switch {
		case in == typeContext:
			getters[i] = func(ctx context.Context, _ *Scope) (any, error) {
				return ctx, nil
			}

		case in == typeScope:
			getters[i] = func(_ context.Context, s *Scope) (any, error) {
				return s, nil
			}

		case in == typeAny:
			if i >= len(names) || names[i] == "" {
				return nil, &CannotResolveParameterError{Param: fmt.Sprintf("#%d", i), Type: t}
			}
			key := NameKey(names[i])
			getters[i] = func(_ context.Context, s *Scope) (any, error) {
				return p.Get(key, WithScope(s))
			}

		default:
			key := TypeKey(in)
			getters[i] = func(_ context.Context, s *Scope) (any, error) {
				return p.Get(key, WithScope(s))
			}
		}
	}

	return &execPlan{t: t, getters: getters}, nil
}

// run resolves the arguments inside a one-shot scope, seeded with the caller's
// pre-resolved values, and invokes fn.
func (plan *execPlan) run(ctx context.Context, p *Provider, fn reflect.Value, scoped map[Key]any) (any, error) {
	scope := newScope(p)
	defer scope.Dispose()

	for key, val := range scoped {
		scope.Seed(key, val)
	}

	in := make([]reflect.Value, len(plan.getters))
	for i, get := range plan.getters {
		val, err := get(ctx, scope)
		if err != nil {
			return nil, errors.Wrap(err, "resolve argument")
		}
		in[i] = safeReflectValue(plan.t.In(i), val)
	}

	out := fn.Call(in)

	var result any
	var err error
	for i := range out {
		if plan.t.Out(i) == typeError {
			if err == nil {
				err, _ = out[i].Interface().(error)
			}
			continue
		}
		if result == nil {
			result = out[i].Interface()
		}
	}
	return result, err
}
