package bindkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goresolve/bindkit"
	"github.com/goresolve/bindkit/internal/testtypes"
)

func BenchmarkProvider_Contains(b *testing.B) {
	c := bindkit.New()
	require.NoError(b, bindkit.RegisterType[*testtypes.ServiceA](c, bindkit.Transient))

	p, err := c.Build()
	require.NoError(b, err)

	for i := 0; i < b.N; i++ {
		_ = p.Contains(bindkit.KeyFor[*testtypes.ServiceA]())
	}
}

func BenchmarkProvider_Get_Instance(b *testing.B) {
	c := bindkit.New()
	require.NoError(b, bindkit.RegisterInstance(c, &testtypes.Settings{}))

	p, err := c.Build()
	require.NoError(b, err)

	for i := 0; i < b.N; i++ {
		_, _ = bindkit.Resolve[*testtypes.Settings](p)
	}
}

func BenchmarkProvider_Get_Singleton(b *testing.B) {
	c := bindkit.New()
	require.NoError(b, bindkit.RegisterType[*testtypes.ServiceA](c, bindkit.Singleton))

	p, err := c.Build()
	require.NoError(b, err)

	for i := 0; i < b.N; i++ {
		_, _ = bindkit.Resolve[*testtypes.ServiceA](p)
	}
}

func BenchmarkProvider_Get_Transient(b *testing.B) {
	c := bindkit.New()
	require.NoError(b, bindkit.RegisterType[*testtypes.ServiceA](c, bindkit.Transient))

	p, err := c.Build()
	require.NoError(b, err)

	for i := 0; i < b.N; i++ {
		_, _ = bindkit.Resolve[*testtypes.ServiceA](p)
	}
}

func BenchmarkProvider_Get_TransientGraph(b *testing.B) {
	c := bindkit.New()
	require.NoError(b, bindkit.RegisterType[*testtypes.ServiceA](c, bindkit.Transient))
	require.NoError(b, bindkit.RegisterType[*testtypes.ServiceB](c, bindkit.Transient))

	p, err := c.Build()
	require.NoError(b, err)

	for i := 0; i < b.N; i++ {
		_, _ = bindkit.Resolve[*testtypes.ServiceB](p)
	}
}

func BenchmarkProvider_Get_Scoped(b *testing.B) {
	c := bindkit.New()
	require.NoError(b, bindkit.RegisterType[*testtypes.ServiceA](c, bindkit.Scoped))

	p, err := c.Build()
	require.NoError(b, err)

	scope := p.NewScope()
	defer scope.Dispose()

	for i := 0; i < b.N; i++ {
		_, _ = scope.Get(bindkit.KeyFor[*testtypes.ServiceA]())
	}
}

func BenchmarkProvider_GetNamed(b *testing.B) {
	c := bindkit.New()
	require.NoError(b, bindkit.RegisterType[*testtypes.ServiceA](c, bindkit.Singleton))

	p, err := c.Build()
	require.NoError(b, err)

	for i := 0; i < b.N; i++ {
		_, _ = p.GetNamed("service_a")
	}
}

func BenchmarkProvider_Exec(b *testing.B) {
	c := bindkit.New()
	require.NoError(b, bindkit.RegisterType[*testtypes.ServiceA](c, bindkit.Singleton))

	p, err := c.Build()
	require.NoError(b, err)

	ctx := context.Background()
	fn := func(a *testtypes.ServiceA) *testtypes.ServiceA { return a }

	for i := 0; i < b.N; i++ {
		_, _ = p.Exec(ctx, fn, nil)
	}
}

func BenchmarkContainer_Build(b *testing.B) {
	c := bindkit.New()
	require.NoError(b, bindkit.RegisterType[*testtypes.ServiceA](c, bindkit.Singleton))
	require.NoError(b, bindkit.RegisterType[*testtypes.ServiceB](c, bindkit.Transient))
	require.NoError(b, bindkit.RegisterType[*testtypes.ServiceC](c, bindkit.Transient))

	for i := 0; i < b.N; i++ {
		_, _ = c.Build()
	}
}
