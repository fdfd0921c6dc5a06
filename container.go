package bindkit

import (
	"reflect"
	"sort"
	"strings"

	"github.com/goresolve/bindkit/internal/errors"
)

// Container accumulates service registrations and aliases, and compiles them
// into an immutable [Provider] with [Container.Build].
//
// A Container is a builder and is not safe for concurrent use. The Provider it
// produces is immutable and safe to share across goroutines.
type Container struct {
	registrations []registration
	resolvers     map[Key]resolver
	aliases       map[string][]reflect.Type
	exactAliases  map[string]reflect.Type
	descriptors   DescriptorProvider
	provider      *Provider
	strict        bool
	eagerAliases  bool
}

type registration struct {
	key Key
	res resolver
}

// New creates a new [Container] with the provided options.
//
// Available options:
//   - [WithStrictMode] disables name-based fallback resolution.
//   - [WithEagerAliasCheck] fails Build on ambiguous inferred aliases.
//   - [WithDescriptorProvider] overrides dependency discovery.
func New(opts ...Option) *Container {
	c := &Container{
		resolvers:    make(map[Key]resolver),
		aliases:      make(map[string][]reflect.Type),
		exactAliases: make(map[string]reflect.Type),
		descriptors:  defaultDescriptors,
	}

	for _, o := range opts {
		o.applyContainer(c)
	}

	return c
}

// bind registers a resolver for a key, and indexes the key's canonical name
// variants in the inferred alias table unless the container is strict.
func (c *Container) bind(key Key, r resolver) error {
	if _, ok := c.resolvers[key]; ok {
		return &OverridingServiceError{Key: key}
	}

	c.resolvers[key] = r
	c.registrations = append(c.registrations, registration{key: key, res: r})
	c.provider = nil

	name := canonicalName(key.Type)
	if c.strict || name == "" {
		return nil
	}

	c.addInferred(name, key.Type)
	c.addInferred(strings.ToLower(name), key.Type)
	c.addInferred(standardParamName(name), key.Type)
	return nil
}

func (c *Container) addInferred(name string, t reflect.Type) {
	for _, existing := range c.aliases[name] {
		if existing == t {
			return
		}
	}
	c.aliases[name] = append(c.aliases[name], t)
}

// Contains reports whether a key has been registered.
func (c *Container) Contains(key Key) bool {
	_, ok := c.resolvers[key]
	return ok
}

// AddSingleton registers base with [Singleton] lifetime. With a concrete type,
// base is bound to it; otherwise base is registered as its own concrete type.
func (c *Container) AddSingleton(base reflect.Type, concrete ...reflect.Type) error {
	return c.addDynamic(base, concrete, Singleton)
}

// AddScoped registers base with [Scoped] lifetime. With a concrete type, base
// is bound to it; otherwise base is registered as its own concrete type.
func (c *Container) AddScoped(base reflect.Type, concrete ...reflect.Type) error {
	return c.addDynamic(base, concrete, Scoped)
}

// AddTransient registers base with [Transient] lifetime. With a concrete type,
// base is bound to it; otherwise base is registered as its own concrete type.
func (c *Container) AddTransient(base reflect.Type, concrete ...reflect.Type) error {
	return c.addDynamic(base, concrete, Transient)
}

func (c *Container) addDynamic(base reflect.Type, concrete []reflect.Type, lifetime Lifetime) error {
	if base == nil {
		return errors.New("register type: base type is nil")
	}

	target := base
	if len(concrete) > 0 && concrete[0] != nil {
		target = concrete[0]
		if !target.AssignableTo(base) {
			return errors.Errorf("register type: %s is not assignable to %s", target, base)
		}
	} else if base.Kind() == reflect.Interface {
		return errors.Errorf("register type: cannot register interface %s without a concrete type", base)
	}

	return c.bind(TypeKey(base), &dynamicResolver{concrete: target, c: c, lifetime: lifetime})
}

// AddInstance registers a pre-built instance, optionally under a declared base
// type. Instances always have singleton semantics.
func (c *Container) AddInstance(instance any, declared ...reflect.Type) error {
	if instance == nil {
		return errors.New("add instance: instance is nil")
	}

	t := reflect.TypeOf(instance)
	key := TypeKey(t)
	if len(declared) > 0 && declared[0] != nil {
		if !t.AssignableTo(declared[0]) {
			return errors.Errorf("add instance: %s is not assignable to %s", t, declared[0])
		}
		key = TypeKey(declared[0])
	}

	return c.bind(key, &instanceResolver{instance: instance})
}

// RegisterFactory binds a factory function with the given lifetime.
//
// The factory may accept no arguments, the activation [*Scope], or the *Scope
// and the requesting [Key], and may return the service or the service and an
// error. Any other signature fails with [InvalidFactoryError].
//
// The service key is the factory's return type unless declared explicitly with
// [For]; a factory returning any without an explicit declaration fails with
// [MissingReturnTypeError].
func (c *Container) RegisterFactory(factory any, lifetime Lifetime, opts ...FactoryOption) error {
	var cfg factoryConfig
	for _, o := range opts {
		o.applyFactory(&cfg)
	}

	returnType, build, err := newFactory(factory, cfg.returnType)
	if err != nil {
		return err
	}

	return c.bind(TypeKey(returnType), &factoryResolver{t: returnType, factory: build, lifetime: lifetime})
}

// AddSingletonFactory binds a factory function with [Singleton] lifetime.
func (c *Container) AddSingletonFactory(factory any, opts ...FactoryOption) error {
	return c.RegisterFactory(factory, Singleton, opts...)
}

// AddScopedFactory binds a factory function with [Scoped] lifetime.
func (c *Container) AddScopedFactory(factory any, opts ...FactoryOption) error {
	return c.RegisterFactory(factory, Scoped, opts...)
}

// AddTransientFactory binds a factory function with [Transient] lifetime.
func (c *Container) AddTransientFactory(factory any, opts ...FactoryOption) error {
	return c.RegisterFactory(factory, Transient, opts...)
}

// AddAlias maps a free-text parameter name to a registered type in the
// inferred alias table. It fails with [AliasAlreadyDefinedError] if the name
// is already present as either an exact or an inferred alias.
func (c *Container) AddAlias(name string, target reflect.Type) error {
	if c.strict {
		return &InvalidOperationInStrictModeError{Operation: "AddAlias"}
	}
	if _, ok := c.aliases[name]; ok {
		return &AliasAlreadyDefinedError{Name: name}
	}
	if _, ok := c.exactAliases[name]; ok {
		return &AliasAlreadyDefinedError{Name: name}
	}

	c.addInferred(name, target)
	c.provider = nil
	return nil
}

// AddAliases adds inferred aliases from a name-to-type mapping.
func (c *Container) AddAliases(values map[string]reflect.Type) error {
	names := sortedNames(values)

	var errs errors.MultiError
	for _, name := range names {
		errs = errs.Append(c.AddAlias(name, values[name]))
	}
	return errs.Join()
}

// SetAlias sets an exact alias for a type. It fails with
// [AliasAlreadyDefinedError] if the name is already present as an exact alias,
// unless override is true.
func (c *Container) SetAlias(name string, target reflect.Type, override bool) error {
	if c.strict {
		return &InvalidOperationInStrictModeError{Operation: "SetAlias"}
	}
	if _, ok := c.exactAliases[name]; ok && !override {
		return &AliasAlreadyDefinedError{Name: name}
	}

	c.exactAliases[name] = target
	c.provider = nil
	return nil
}

// SetAliases sets many exact aliases from a name-to-type mapping.
func (c *Container) SetAliases(values map[string]reflect.Type, override bool) error {
	names := sortedNames(values)

	var errs errors.MultiError
	for _, name := range names {
		errs = errs.Append(c.SetAlias(name, values[name], override))
	}
	return errs.Join()
}

// aliasTarget resolves an undeclared dependency name to a registered type
// using the exact aliases first, then the inferred aliases.
func (c *Container) aliasTarget(name string, owner reflect.Type) (reflect.Type, error) {
	if c.strict {
		return nil, &CannotResolveParameterError{Param: name, Type: owner}
	}

	if t, ok := c.exactAliases[name]; ok {
		return t, nil
	}

	candidates := c.aliases[name]
	switch len(candidates) {
	case 0:
		return nil, &CannotResolveParameterError{Param: name, Type: owner}
	case 1:
		return candidates[0], nil
	default:
		return nil, &AmbiguousAliasError{Name: name, Types: candidates}
	}
}

// Build compiles the registrations into an immutable [Provider].
//
// All graph-shape validation happens here: missing dependencies, circular
// dependencies, union type declarations, and alias misconfiguration surface as
// errors from Build and never later. Once built, Get can only fail with
// [CannotResolveTypeError].
func (c *Container) Build() (*Provider, error) {
	rc := newResolutionContext()
	services := make(map[Key]producer)

	for _, reg := range c.registrations {
		if _, ok := rc.resolved[reg.key]; !ok {
			// Each top-level dynamic registration starts its own
			// cycle-detection path. A resolver reached as someone
			// else's dependency keeps the ambient chain.
			if _, dynamic := reg.res.(*dynamicResolver); dynamic {
				rc.clearChain()
			}

			p, err := reg.res.resolve(rc)
			if err != nil {
				return nil, errors.Wrap(err, "bindkit.Build")
			}
			rc.resolved[reg.key] = p
		}

		p := rc.resolved[reg.key]
		services[reg.key] = p

		// Strict mode disables every name-based lookup, including the
		// canonical-name entries.
		if !c.strict {
			if name := canonicalName(reg.key.Type); name != "" {
				services[NameKey(name)] = p
			}
		}
	}

	if !c.strict {
		if err := c.applyAliases(services); err != nil {
			return nil, errors.Wrap(err, "bindkit.Build")
		}
	}

	return newProvider(services), nil
}

// applyAliases points every resolvable alias name at the compiled producer for
// its target type. Ambiguous inferred names are skipped unless the container
// was created with [WithEagerAliasCheck].
func (c *Container) applyAliases(services map[Key]producer) error {
	names := sortedNames(c.aliases)

	var errs errors.MultiError
	for _, name := range names {
		candidates := c.aliases[name]
		if len(candidates) > 1 {
			if c.eagerAliases {
				errs = errs.Append(&AmbiguousAliasError{Name: name, Types: candidates})
			}
			continue
		}

		p, ok := services[TypeKey(candidates[0])]
		if !ok {
			errs = errs.Append(&AliasConfigurationError{Name: name, Type: candidates[0]})
			continue
		}
		services[NameKey(name)] = p
	}

	for _, name := range sortedNames(c.exactAliases) {
		target := c.exactAliases[name]
		p, ok := services[TypeKey(target)]
		if !ok {
			errs = errs.Append(&AliasConfigurationError{Name: name, Type: target})
			continue
		}
		services[NameKey(name)] = p
	}

	return errs.Join()
}

// Provider returns the built provider, building it on first use. Any further
// registration invalidates the cached provider.
func (c *Container) Provider() (*Provider, error) {
	if c.provider == nil {
		p, err := c.Build()
		if err != nil {
			return nil, err
		}
		c.provider = p
	}
	return c.provider, nil
}

// Resolve builds the provider if needed and activates an instance for a key.
func (c *Container) Resolve(key Key, opts ...GetOption) (any, error) {
	p, err := c.Provider()
	if err != nil {
		return nil, err
	}
	return p.Get(key, opts...)
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
