package bindkit

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ErrScopeDisposed is returned when a disposed activation scope is used.
var ErrScopeDisposed = errors.New("activation scope is disposed")

// OverridingServiceError is returned when registering a key that is already
// bound. Registrations never override each other silently.
type OverridingServiceError struct {
	Key Key
}

func (e *OverridingServiceError) Error() string {
	return fmt.Sprintf("a service with key %s is already registered", e.Key)
}

// CannotResolveParameterError is returned when a dependency has no satisfiable
// key: no declared type, no alias, or an alias pointing at nothing.
type CannotResolveParameterError struct {
	Param string
	Type  reflect.Type
}

func (e *CannotResolveParameterError) Error() string {
	return fmt.Sprintf("unable to resolve parameter %q when resolving %s", e.Param, e.Type)
}

// CannotResolveTypeError is returned by Get when the requested key is not
// registered and no default was supplied.
type CannotResolveTypeError struct {
	Key Key
}

func (e *CannotResolveTypeError) Error() string {
	return fmt.Sprintf("unable to resolve the key %s", e.Key)
}

// UnsupportedUnionTypeError is returned when a dependency declares more than
// one candidate type. Union declarations are never resolved best-effort.
type UnsupportedUnionTypeError struct {
	Param string
	Type  reflect.Type
}

func (e *UnsupportedUnionTypeError) Error() string {
	return fmt.Sprintf(
		"union type declarations are not supported: cannot resolve parameter %q when resolving %s",
		e.Param, e.Type)
}

// CircularDependencyError is returned when a key depends, directly or
// transitively, on itself.
type CircularDependencyError struct {
	Root reflect.Type
	Type reflect.Type
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected for service of type %s while resolving %s",
		e.Root, e.Type)
}

// AliasAlreadyDefinedError is returned when adding an alias under a name that
// is already present, as either an exact or an inferred alias.
type AliasAlreadyDefinedError struct {
	Name string
}

func (e *AliasAlreadyDefinedError) Error() string {
	return fmt.Sprintf("cannot define alias %q: an alias with the given name is already defined", e.Name)
}

// AliasConfigurationError is returned by Build when an alias points at a type
// that was never registered.
type AliasConfigurationError struct {
	Name string
	Type reflect.Type
}

func (e *AliasConfigurationError) Error() string {
	return fmt.Sprintf("an alias %q for type %s was defined, but the type is not registered",
		e.Name, e.Type)
}

// AmbiguousAliasError is returned when an alias name maps to more than one
// candidate type and the ambiguity is actually consumed, or eagerly during
// Build when the container was created with [WithEagerAliasCheck].
type AmbiguousAliasError struct {
	Name  string
	Types []reflect.Type
}

func (e *AmbiguousAliasError) Error() string {
	names := make([]string, len(e.Types))
	for i, t := range e.Types {
		names[i] = t.String()
	}
	sort.Strings(names)

	return fmt.Sprintf("alias %q is ambiguous: candidate types %s", e.Name, strings.Join(names, ", "))
}

// InvalidOperationInStrictModeError is returned when alias mutation is
// attempted on a strict-mode container.
type InvalidOperationInStrictModeError struct {
	Operation string
}

func (e *InvalidOperationInStrictModeError) Error() string {
	return fmt.Sprintf("the container is configured in strict mode: %s is not allowed", e.Operation)
}

// MissingReturnTypeError is returned when a factory's return type does not
// identify a service and no explicit type was declared with [For].
type MissingReturnTypeError struct{}

func (e *MissingReturnTypeError) Error() string {
	return "the factory return type does not identify a service: declare it explicitly with For"
}

// InvalidFactoryError is returned when a factory has an unsupported signature.
type InvalidFactoryError struct {
	Type reflect.Type
}

func (e *InvalidFactoryError) Error() string {
	msg := "the factory is not valid: it must be a function accepting nothing, " +
		"a *Scope, or a *Scope and the requesting Key, and returning the service " +
		"or the service and an error"
	if e.Type != nil {
		return fmt.Sprintf("the factory for type %s is not valid: it must be a function "+
			"accepting nothing, a *Scope, or a *Scope and the requesting Key, and "+
			"returning the service or the service and an error", e.Type)
	}
	return msg
}
