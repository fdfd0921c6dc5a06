package bindkit

import "reflect"

// Param describes a single dependency of a concrete type: a lookup name and
// the declared candidate types.
//
// An empty Types slice means the dependency has no declared type and is
// resolved through the alias indexes by name. More than one type is a union
// declaration, which is always rejected during Build.
type Param struct {
	Name  string
	Types []reflect.Type
}

// TypeDescriptor describes how to construct a concrete type: its ordered
// dependencies and a construct function receiving the resolved values in the
// same order.
type TypeDescriptor struct {
	Params    []Param
	Construct func(args []any) (any, error)
}

// DescriptorProvider supplies type descriptors to the resolution engine.
//
// The engine depends only on this interface for dependency discovery, never on
// reflection directly. The default provider derives descriptors from exported
// struct fields; a [DescriptorTable] can supply explicit descriptors instead.
type DescriptorProvider interface {
	Describe(t reflect.Type) (*TypeDescriptor, error)
}

// DescriptorTable is a [DescriptorProvider] backed by explicit per-type
// descriptors. Types without an entry fall back to field reflection.
type DescriptorTable map[reflect.Type]*TypeDescriptor

func (dt DescriptorTable) Describe(t reflect.Type) (*TypeDescriptor, error) {
	if d, ok := dt[t]; ok {
		return d, nil
	}
	return defaultDescriptors.Describe(t)
}

var _ DescriptorProvider = DescriptorTable(nil)

// TagName is the struct tag consulted by the default descriptor provider.
// `di:"-"` excludes a field from resolution; any other value overrides the
// lookup name used for undeclared dependencies.
const TagName = "di"

var defaultDescriptors DescriptorProvider = fieldDescriptors{}

// fieldDescriptors derives descriptors from exported struct fields.
//
// Every exported field is a dependency: the field type is its declared type,
// and the snake_case field name is its lookup name. A field of type any has no
// declared type and resolves through the alias indexes.
type fieldDescriptors struct{}

func (fieldDescriptors) Describe(t reflect.Type) (*TypeDescriptor, error) {
	base := t
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}

	if base.Kind() != reflect.Struct {
		return &TypeDescriptor{
			Construct: func([]any) (any, error) {
				if t.Kind() == reflect.Ptr {
					return reflect.New(base).Interface(), nil
				}
				return reflect.Zero(t).Interface(), nil
			},
		}, nil
	}

	var params []Param
	var indexes [][]int

	for i := 0; i < base.NumField(); i++ {
		f := base.Field(i)
		if !f.IsExported() {
			continue
		}

		name, tagged := f.Tag.Lookup(TagName)
		if name == "-" {
			continue
		}
		if !tagged || name == "" {
			name = standardParamName(f.Name)
		}

		p := Param{Name: name}
		if f.Type != typeAny {
			p.Types = []reflect.Type{f.Type}
		}

		params = append(params, p)
		indexes = append(indexes, f.Index)
	}

	construct := func(args []any) (any, error) {
		ptr := reflect.New(base)
		elem := ptr.Elem()
		for i, idx := range indexes {
			if args[i] == nil {
				continue
			}
			elem.FieldByIndex(idx).Set(reflect.ValueOf(args[i]))
		}

		if t.Kind() == reflect.Ptr {
			return ptr.Interface(), nil
		}
		return elem.Interface(), nil
	}

	return &TypeDescriptor{Params: params, Construct: construct}, nil
}
