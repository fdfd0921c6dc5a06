package bindkit

import (
	"reflect"

	"github.com/goresolve/bindkit/internal/errors"
)

// resolver compiles a registration into a producer during Build.
type resolver interface {
	resolve(rc *resolutionContext) (producer, error)
}

// dynamicResolver resolves a concrete type by describing its dependencies and
// recursively compiling a producer for each of them.
type dynamicResolver struct {
	concrete reflect.Type
	c        *Container
	lifetime Lifetime
}

func (r *dynamicResolver) resolve(rc *resolutionContext) (producer, error) {
	if err := rc.enter(r.concrete); err != nil {
		return nil, err
	}

	desc, err := r.c.descriptors.Describe(r.concrete)
	if err != nil {
		return nil, errors.Wrapf(err, "describe %s", r.concrete)
	}

	key := TypeKey(r.concrete)
	children := make([]producer, 0, len(desc.Params))

	for _, param := range desc.Params {
		child, err := r.resolveParam(rc, param)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return newProducer(r.lifetime, key, argsBuild(key, children, desc.Construct)), nil
}

// resolveParam maps one dependency to a registered key and compiles its
// producer. The declared type wins; an undeclared dependency falls back to the
// alias indexes by name.
func (r *dynamicResolver) resolveParam(rc *resolutionContext, param Param) (producer, error) {
	if len(param.Types) > 1 {
		return nil, &UnsupportedUnionTypeError{Param: param.Name, Type: r.concrete}
	}

	var depType reflect.Type
	if len(param.Types) == 1 {
		depType = param.Types[0]
	} else {
		t, err := r.c.aliasTarget(param.Name, r.concrete)
		if err != nil {
			return nil, err
		}
		depType = t
	}

	depKey := TypeKey(depType)
	reg, ok := r.c.resolvers[depKey]
	if !ok {
		return nil, &CannotResolveParameterError{Param: param.Name, Type: r.concrete}
	}

	return rc.resolveDependency(depKey, reg)
}
