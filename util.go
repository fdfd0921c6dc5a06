package bindkit

import (
	"context"
	"reflect"
	"regexp"
	"strings"
)

// These are commonly used types.
var (
	typeError   = reflect.TypeFor[error]()
	typeContext = reflect.TypeFor[context.Context]()
	typeScope   = reflect.TypeFor[*Scope]()
	typeKey     = reflect.TypeFor[Key]()
	typeAny     = reflect.TypeFor[any]()
)

var (
	firstCapPattern = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	allCapPattern   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// standardParamName converts a declared name to its snake_case form.
// An interface-style "I" prefix keeps the leading "i":
// "ICatsRepository" becomes "icats_repository".
func standardParamName(name string) string {
	v := firstCapPattern.ReplaceAllString(name, "${1}_${2}")
	v = strings.ToLower(allCapPattern.ReplaceAllString(v, "${1}_${2}"))
	if strings.HasPrefix(v, "i_") {
		return "i" + v[2:]
	}
	return v
}

// canonicalName returns the declared name used to build alias entries for a
// type. Pointer registrations share the name of their element type. Anonymous
// and parameterized types have no canonical name and are not aliased.
func canonicalName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	name := t.Name()
	if strings.ContainsAny(name, "[.") {
		return ""
	}
	return name
}

func safeReflectValue(t reflect.Type, val any) reflect.Value {
	if val == nil {
		return reflect.Zero(t)
	}

	return reflect.ValueOf(val)
}
