package bindkit

import (
	"fmt"
	"reflect"
)

// Key identifies a registered service: either a type or a free-text name.
// Exactly one of Type or Name is set.
//
// Name keys back the alias-based lookup: every registered type is also
// reachable under its canonical name variants unless the container is built in
// strict mode.
type Key struct {
	Type reflect.Type
	Name string
}

// KeyFor returns the type key for T.
func KeyFor[T any]() Key {
	return Key{Type: reflect.TypeFor[T]()}
}

// TypeKey returns the key for a [reflect.Type].
func TypeKey(t reflect.Type) Key {
	return Key{Type: t}
}

// NameKey returns the key for a free-text name.
func NameKey(name string) Key {
	return Key{Name: name}
}

// IsZero reports whether the key identifies nothing.
func (k Key) IsZero() bool {
	return k.Type == nil && k.Name == ""
}

func (k Key) String() string {
	if k.Type == nil {
		return fmt.Sprintf("%q", k.Name)
	}
	return k.Type.String()
}
