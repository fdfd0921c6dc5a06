package bindkit

// Option is used to configure a new [Container] when calling [New].
type Option interface {
	applyContainer(*Container)
}

type option func(*Container)

func (o option) applyContainer(c *Container) { o(c) }

// WithStrictMode disables alias inference and all name-based fallback
// resolution. Every dependency must declare an explicit type, and the alias
// mutation methods fail with [InvalidOperationInStrictModeError].
func WithStrictMode() Option {
	return option(func(c *Container) {
		c.strict = true
	})
}

// WithEagerAliasCheck makes Build fail with [AmbiguousAliasError] when an
// inferred alias name has more than one candidate type.
//
// Without this option ambiguous names are skipped when populating the
// provider's name table, and fail only if consumed by an undeclared
// dependency.
func WithEagerAliasCheck() Option {
	return option(func(c *Container) {
		c.eagerAliases = true
	})
}

// WithDescriptorProvider sets the [DescriptorProvider] used to discover type
// dependencies. The default derives descriptors from exported struct fields.
func WithDescriptorProvider(dp DescriptorProvider) Option {
	return option(func(c *Container) {
		if dp != nil {
			c.descriptors = dp
		}
	})
}
