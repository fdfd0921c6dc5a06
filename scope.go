package bindkit

import "sync"

// Scope is an activation scope: the unit-of-work cache for [Scoped] services.
//
// A Scope is created from a [Provider] with [Provider.NewScope], or implicitly
// per activation when none is supplied. It is not intended to be shared across
// goroutines: one scope covers one logical unit of work.
//
// Dispose releases the cache and severs the provider reference; using the
// scope afterwards returns [ErrScopeDisposed].
type Scope struct {
	mu       sync.Mutex
	provider *Provider
	services map[Key]*scopeEntry
	disposed bool
}

type scopeEntry struct {
	mu   sync.Mutex
	done bool
	val  any
	err  error
}

func newScope(p *Provider) *Scope {
	return &Scope{
		provider: p,
		services: make(map[Key]*scopeEntry),
	}
}

// Provider returns the provider this scope belongs to, or nil after Dispose.
func (s *Scope) Provider() *Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provider
}

// Get activates an instance for a key through the scope's provider, caching
// Scoped instances on this scope.
func (s *Scope) Get(key Key, opts ...GetOption) (any, error) {
	s.mu.Lock()
	p := s.provider
	s.mu.Unlock()

	if p == nil {
		return nil, ErrScopeDisposed
	}

	return p.Get(key, append([]GetOption{WithScope(s)}, opts...)...)
}

// Seed stores a pre-resolved value for a key on this scope. Seeded values take
// precedence over registered producers for activations using this scope.
func (s *Scope) Seed(key Key, val any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.services[key] = &scopeEntry{done: true, val: val}
}

// Dispose clears the scoped-instance cache and drops the provider reference,
// making the scope unusable afterwards. Disposing twice is a no-op.
func (s *Scope) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disposed = true
	s.services = nil
	s.provider = nil
}

// cached returns the value stored for key, if one has been produced or seeded.
func (s *Scope) cached(key Key) (any, bool) {
	s.mu.Lock()
	e := s.services[key]
	s.mu.Unlock()

	if e == nil {
		return nil, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done && e.err == nil {
		return e.val, true
	}
	return nil, false
}

// getOrCreate returns the cached instance for key, constructing and storing it
// if missing. The check-then-insert is atomic per key, so two goroutines
// cannot construct the same scoped service twice on one scope.
func (s *Scope) getOrCreate(key Key, requesting Key, build buildFunc) (any, error) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil, ErrScopeDisposed
	}

	e, ok := s.services[key]
	if !ok {
		e = &scopeEntry{}
		s.services[key] = e
	}
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.done {
		e.val, e.err = build(s, requesting)
		e.done = true
	}
	return e.val, e.err
}
