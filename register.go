package bindkit

import "reflect"

// RegisterType registers concrete type T with the given lifetime, keyed by
// itself.
//
// Example:
//
//	c := bindkit.New()
//	err := bindkit.RegisterType[*CatsController](c, bindkit.Transient)
func RegisterType[T any](c *Container, lifetime Lifetime) error {
	return c.addDynamic(reflect.TypeFor[T](), nil, lifetime)
}

// RegisterTypeAs registers Concrete under the Base key with the given
// lifetime. Concrete must be assignable to Base.
//
// Example:
//
//	err := bindkit.RegisterTypeAs[CatsRepository, *SQLCatsRepository](c, bindkit.Singleton)
func RegisterTypeAs[Base any, Concrete any](c *Container, lifetime Lifetime) error {
	return c.addDynamic(
		reflect.TypeFor[Base](),
		[]reflect.Type{reflect.TypeFor[Concrete]()},
		lifetime,
	)
}

// RegisterInstance registers a pre-built instance under the T key. Instances
// always have singleton semantics.
func RegisterInstance[T any](c *Container, instance T) error {
	return c.AddInstance(instance, reflect.TypeFor[T]())
}

// FactoryOption configures a factory registration when calling
// [Container.RegisterFactory] or one of its lifetime shorthands.
type FactoryOption interface {
	applyFactory(*factoryConfig)
}

type factoryConfig struct {
	returnType reflect.Type
}

type factoryOption func(*factoryConfig)

func (o factoryOption) applyFactory(cfg *factoryConfig) { o(cfg) }

// For declares the service type produced by a factory, for factories whose
// return type alone does not identify the service: factories returning any, or
// producing a concrete type that should be keyed by an interface.
func For[T any]() FactoryOption {
	return factoryOption(func(cfg *factoryConfig) {
		cfg.returnType = reflect.TypeFor[T]()
	})
}
