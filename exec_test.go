package bindkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goresolve/bindkit"
	"github.com/goresolve/bindkit/internal/testtypes"
	"github.com/goresolve/bindkit/internal/testutils"
)

func buildTestProvider(t *testing.T) *bindkit.Provider {
	t.Helper()

	c := bindkit.New()
	require.NoError(t, bindkit.RegisterInstance(c, &testtypes.Settings{ConnectionString: "conn-str"}))
	require.NoError(t, bindkit.RegisterTypeAs[testtypes.CatsRepository, *testtypes.SQLCatsRepository](c, bindkit.Singleton))
	require.NoError(t, bindkit.RegisterType[*testtypes.ServiceA](c, bindkit.Scoped))

	p, err := c.Build()
	require.NoError(t, err)
	return p
}

func Test_Provider_Exec(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves typed parameters", func(t *testing.T) {
		p := buildTestProvider(t)

		result, err := p.Exec(ctx, func(repo testtypes.CatsRepository, settings *testtypes.Settings) string {
			require.NotNil(t, repo)
			return settings.ConnectionString
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "conn-str", result)
	})

	t.Run("passes the context through", func(t *testing.T) {
		p := buildTestProvider(t)

		type ctxKey struct{}
		callCtx := context.WithValue(ctx, ctxKey{}, "marker")

		result, err := p.Exec(callCtx, func(c context.Context) any {
			return c.Value(ctxKey{})
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "marker", result)
	})

	t.Run("passes the invocation scope", func(t *testing.T) {
		p := buildTestProvider(t)

		_, err := p.Exec(ctx, func(s *bindkit.Scope, a *testtypes.ServiceA) error {
			// The scope argument is the same one-shot scope the other
			// arguments were resolved in.
			other, err := s.Get(bindkit.KeyFor[*testtypes.ServiceA]())
			if err != nil {
				return err
			}
			assert.Same(t, a, other)
			return nil
		}, nil)
		require.NoError(t, err)
	})

	t.Run("scoped overrides take precedence", func(t *testing.T) {
		p := buildTestProvider(t)

		override := &testtypes.ServiceA{}
		result, err := p.Exec(ctx, func(a *testtypes.ServiceA) *testtypes.ServiceA {
			return a
		}, map[bindkit.Key]any{
			bindkit.KeyFor[*testtypes.ServiceA](): override,
		})
		require.NoError(t, err)
		assert.Same(t, override, result)
	})

	t.Run("no results", func(t *testing.T) {
		p := buildTestProvider(t)

		called := false
		result, err := p.Exec(ctx, func(*testtypes.ServiceA) {
			called = true
		}, nil)
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.True(t, called)
	})

	t.Run("error result is returned unwrapped", func(t *testing.T) {
		p := buildTestProvider(t)

		_, err := p.Exec(ctx, func() error {
			return assert.AnError
		}, nil)
		assert.Same(t, assert.AnError, err)
	})

	t.Run("unresolvable parameter", func(t *testing.T) {
		p := buildTestProvider(t)

		_, err := p.Exec(ctx, func(*testtypes.Logger) {}, nil)
		testutils.LogError(t, err)

		assert.EqualError(t, err,
			"resolve argument: unable to resolve the key *testtypes.Logger")
	})

	t.Run("not a function", func(t *testing.T) {
		p := buildTestProvider(t)

		_, err := p.Exec(ctx, "not a function", nil)
		testutils.LogError(t, err)

		assert.EqualError(t, err, "bindkit.Exec string: fn must be a function")
	})

	t.Run("variadic function", func(t *testing.T) {
		p := buildTestProvider(t)

		_, err := p.Exec(ctx, func(...*testtypes.ServiceA) {}, nil)
		testutils.LogError(t, err)

		assert.EqualError(t, err,
			"bindkit.Exec func(...*testtypes.ServiceA): variadic functions are not supported")
	})

	t.Run("untyped parameter without a name", func(t *testing.T) {
		p := buildTestProvider(t)

		_, err := p.Exec(ctx, func(any) {}, nil)
		testutils.LogError(t, err)

		assert.EqualError(t, err,
			`bindkit.Exec func(interface {}): unable to resolve parameter "#0" when resolving func(interface {})`)
	})

	t.Run("distinct closures share a compiled plan", func(t *testing.T) {
		p := buildTestProvider(t)

		mk := func(want string) func(*testtypes.Settings) string {
			return func(s *testtypes.Settings) string {
				return want + ":" + s.ConnectionString
			}
		}

		r1, err := p.Exec(ctx, mk("first"), nil)
		require.NoError(t, err)
		r2, err := p.Exec(ctx, mk("second"), nil)
		require.NoError(t, err)

		assert.Equal(t, "first:conn-str", r1)
		assert.Equal(t, "second:conn-str", r2)
	})
}

func Test_Provider_GetExecutor(t *testing.T) {
	ctx := context.Background()

	t.Run("untyped parameters resolve by name", func(t *testing.T) {
		p := buildTestProvider(t)

		exec, err := p.GetExecutor(func(repo any) any {
			return repo
		}, "cats_repository")
		require.NoError(t, err)

		result, err := exec(ctx, nil)
		require.NoError(t, err)
		assert.IsType(t, &testtypes.SQLCatsRepository{}, result)
	})

	t.Run("mixed typed and named parameters", func(t *testing.T) {
		p := buildTestProvider(t)

		exec, err := p.GetExecutor(func(settings *testtypes.Settings, repo any) bool {
			return settings != nil && repo != nil
		}, "", "cats_repository")
		require.NoError(t, err)

		result, err := exec(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, true, result)
	})

	t.Run("missing name for untyped parameter", func(t *testing.T) {
		p := buildTestProvider(t)

		_, err := p.GetExecutor(func(any) {})
		testutils.LogError(t, err)

		assert.EqualError(t, err,
			`bindkit.GetExecutor func(interface {}): unable to resolve parameter "#0" when resolving func(interface {})`)
	})

	t.Run("each invocation gets a fresh scope", func(t *testing.T) {
		p := buildTestProvider(t)

		exec, err := p.GetExecutor(func(a *testtypes.ServiceA) *testtypes.ServiceA {
			return a
		})
		require.NoError(t, err)

		r1, err := exec(ctx, nil)
		require.NoError(t, err)
		r2, err := exec(ctx, nil)
		require.NoError(t, err)

		assert.NotSame(t, r1, r2)
	})
}
