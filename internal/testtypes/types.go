package testtypes

import "reflect"

var (
	TypeSettings       = reflect.TypeFor[*Settings]()
	TypeCatsRepository = reflect.TypeFor[CatsRepository]()
	TypeSQLCatsRepo    = reflect.TypeFor[*SQLCatsRepository]()
	TypeServiceA       = reflect.TypeFor[*ServiceA]()
	TypeServiceB       = reflect.TypeFor[*ServiceB]()
	TypeLogger         = reflect.TypeFor[*Logger]()
	TypeCat            = reflect.TypeFor[*Cat]()
)

// Settings is registered as a pre-built instance in most tests.
type Settings struct {
	ConnectionString string
}

type CatsRepository interface {
	Cats() []string
}

// SQLCatsRepository depends on *Settings by declared field type.
type SQLCatsRepository struct {
	Settings *Settings
}

func (r *SQLCatsRepository) Cats() []string {
	return nil
}

// ServiceA has no dependencies. The unexported pad field keeps the struct
// non-zero-size so that distinct allocations have distinct addresses and
// pointer-identity assertions in tests are meaningful.
type ServiceA struct {
	_pad byte //nolint:unused
}

// ServiceB depends on *ServiceA.
type ServiceB struct {
	A *ServiceA
}

// ServiceC depends on both *ServiceA and *ServiceB, forming a diamond.
type ServiceC struct {
	A *ServiceA
	B *ServiceB
}

type Logger struct{}

// UsesLogger has an undeclared dependency resolved by the inferred
// "logger" alias.
type UsesLogger struct {
	Logger any
}

// UsesNamed has an undeclared dependency with an explicit lookup name.
type UsesNamed struct {
	Dep any `di:"cats_repository"`
}

// FooBar and Foobar share the lowercase name "foobar", making the inferred
// alias for that name ambiguous.
type FooBar struct{}

type Foobar struct{}

// UsesFoobar consumes the ambiguous "foobar" alias.
type UsesFoobar struct {
	Dep any `di:"foobar"`
}

// Cat is produced by factories in tests and never resolved dynamically.
type Cat struct {
	Name string
}

// WantsCat depends on *Cat, which tests register through factories.
type WantsCat struct {
	Cat *Cat
}

// CircularA and CircularB depend on each other.
type CircularA struct {
	B *CircularB
}

type CircularB struct {
	A *CircularA
}

// Ignored has a field excluded from resolution.
type Ignored struct {
	Skipped *Settings `di:"-"`
	A       *ServiceA
}
