package bindkit

import "sync"

// producer is a compiled, lifetime-aware callable that yields an instance for
// a registered key. requesting is the key whose activation triggered the call.
type producer func(s *Scope, requesting Key) (any, error)

// buildFunc constructs one instance. Producers wrap a buildFunc with the
// caching behavior of the registration's lifetime.
type buildFunc func(s *Scope, requesting Key) (any, error)

func newProducer(lifetime Lifetime, key Key, build buildFunc) producer {
	switch lifetime {
	case Singleton:
		return singletonProducer(build)
	case Scoped:
		return scopedProducer(key, build)
	default:
		return producer(build)
	}
}

// singletonProducer constructs once per Provider and caches the result,
// including any construction error. First-time construction is serialized so
// concurrent activations cannot build the instance twice.
func singletonProducer(build buildFunc) producer {
	var mu sync.Mutex
	var done bool
	var val any
	var err error

	return func(s *Scope, requesting Key) (any, error) {
		mu.Lock()
		defer mu.Unlock()

		if !done {
			val, err = build(s, requesting)
			done = true
		}
		return val, err
	}
}

// scopedProducer caches the instance on the activation scope, keyed by the
// registration key.
func scopedProducer(key Key, build buildFunc) producer {
	return func(s *Scope, requesting Key) (any, error) {
		return s.getOrCreate(key, requesting, build)
	}
}

// instanceProducer returns the same pre-built instance regardless of scope.
func instanceProducer(val any) producer {
	return func(*Scope, Key) (any, error) {
		return val, nil
	}
}

// argsBuild invokes each child producer in order, passing the current key as
// the requesting key, and hands the results to construct.
func argsBuild(current Key, children []producer, construct func([]any) (any, error)) buildFunc {
	return func(s *Scope, _ Key) (any, error) {
		args := make([]any, len(children))
		for i, child := range children {
			val, err := child(s, current)
			if err != nil {
				return nil, err
			}
			args[i] = val
		}
		return construct(args)
	}
}
