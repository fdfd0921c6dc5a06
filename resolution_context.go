package bindkit

import "reflect"

// resolutionContext is the single-use state threaded through one Build pass.
//
// resolved memoizes the compiled producer for every key, so a key referenced
// by multiple dependents compiles to exactly one producer. This is what makes
// singletons genuinely shared across the graph.
//
// chain records the concrete types currently being compiled, in DFS order, and
// is used purely for cycle detection. Each top-level dynamic registration
// starts with a cleared chain.
type resolutionContext struct {
	resolved map[Key]producer
	chain    []reflect.Type
}

func newResolutionContext() *resolutionContext {
	return &resolutionContext{
		resolved: make(map[Key]producer),
	}
}

// enter pushes t onto the chain, failing if t is already being compiled
// higher up the stack. The membership check runs before every recursive
// descent, so an unresolved cycle can never recurse unboundedly.
func (rc *resolutionContext) enter(t reflect.Type) error {
	for _, c := range rc.chain {
		if c == t {
			return &CircularDependencyError{Root: rc.chain[0], Type: t}
		}
	}

	rc.chain = append(rc.chain, t)
	return nil
}

func (rc *resolutionContext) clearChain() {
	rc.chain = rc.chain[:0]
}

// resolveDependency compiles a producer for key, reusing the memoized producer
// when the key was already compiled during this pass.
func (rc *resolutionContext) resolveDependency(key Key, r resolver) (producer, error) {
	if p, ok := rc.resolved[key]; ok {
		return p, nil
	}

	p, err := r.resolve(rc)
	if err != nil {
		return nil, err
	}

	rc.resolved[key] = p
	return p, nil
}
