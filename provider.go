package bindkit

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goresolve/bindkit/internal/errors"
)

// Provider is the immutable output of [Container.Build]: a mapping from keys
// and canonical names to compiled producers.
//
// A Provider is safe for concurrent use. Singleton state lives inside the
// producers, so sharing a Provider means sharing its singletons; rebuilding
// the Provider resets all singleton and cached state.
type Provider struct {
	mu       sync.RWMutex
	services map[Key]producer
	execs    *xsync.MapOf[uintptr, execResult]
}

func newProvider(services map[Key]producer) *Provider {
	return &Provider{
		services: services,
		execs:    xsync.NewMapOf[uintptr, execResult](),
	}
}

// NewScope creates an activation scope bound to this provider.
func (p *Provider) NewScope() *Scope {
	return newScope(p)
}

// GetOption is used to configure a Get call.
//
// Available options:
//   - [WithScope]
//   - [WithDefault]
type GetOption interface {
	applyGet(*getConfig)
}

type getConfig struct {
	scope      *Scope
	def        any
	hasDefault bool
}

type getOption func(*getConfig)

func (o getOption) applyGet(cfg *getConfig) { o(cfg) }

// WithScope resolves using the given activation scope instead of a one-shot
// scope. Scoped services are cached on the supplied scope.
func WithScope(s *Scope) GetOption {
	return getOption(func(cfg *getConfig) {
		cfg.scope = s
	})
}

// WithDefault returns the given value instead of an error when the requested
// key is not registered.
func WithDefault(val any) GetOption {
	return getOption(func(cfg *getConfig) {
		cfg.def = val
		cfg.hasDefault = true
	})
}

// Get activates an instance for a key.
//
// Values seeded on the scope take precedence over registered producers. An
// unknown key fails with [CannotResolveTypeError] unless a default was
// supplied with [WithDefault].
func (p *Provider) Get(key Key, opts ...GetOption) (any, error) {
	var cfg getConfig
	for _, o := range opts {
		o.applyGet(&cfg)
	}

	scope := cfg.scope
	if scope == nil {
		scope = newScope(p)
	}

	if val, ok := scope.cached(key); ok {
		return val, nil
	}

	p.mu.RLock()
	prod, ok := p.services[key]
	p.mu.RUnlock()

	if !ok {
		if cfg.hasDefault {
			return cfg.def, nil
		}
		return nil, &CannotResolveTypeError{Key: key}
	}

	return prod(scope, key)
}

// GetNamed activates an instance registered under a canonical name or alias.
func (p *Provider) GetNamed(name string, opts ...GetOption) (any, error) {
	return p.Get(NameKey(name), opts...)
}

// Contains reports whether the provider can resolve a key.
func (p *Provider) Contains(key Key) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.services[key]
	return ok
}

// Set registers a pre-built value with singleton semantics after Build. This
// exists for interoperability; it fails with [OverridingServiceError] if the
// key, or its canonical name, is already present.
func (p *Provider) Set(key Key, val any) error {
	if key.IsZero() {
		return errors.New("set value: key is empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.services[key]; ok {
		return &OverridingServiceError{Key: key}
	}

	name := canonicalName(key.Type)
	if name != "" {
		if _, ok := p.services[NameKey(name)]; ok {
			return &OverridingServiceError{Key: NameKey(name)}
		}
	}

	prod := instanceProducer(val)
	p.services[key] = prod
	if name != "" {
		p.services[NameKey(name)] = prod
	}
	return nil
}

// Resolve activates an instance of type T from the [Provider].
func Resolve[T any](p *Provider, opts ...GetOption) (T, error) {
	var val T
	anyVal, err := p.Get(KeyFor[T](), opts...)
	if anyVal != nil {
		val = anyVal.(T)
	}
	return val, err
}

// MustResolve activates an instance of type T from the [Provider].
//
// If the instance cannot be resolved, this function will panic.
func MustResolve[T any](p *Provider, opts ...GetOption) T {
	val, err := Resolve[T](p, opts...)
	if err != nil {
		panic(err)
	}
	return val
}
