package bindkit

import "reflect"

// factoryResolver wraps a user factory as a producer with the registration's
// lifetime. The factory was validated and wrapped behind the uniform build
// signature at registration time.
type factoryResolver struct {
	t        reflect.Type
	factory  buildFunc
	lifetime Lifetime
}

func (r *factoryResolver) resolve(*resolutionContext) (producer, error) {
	return newProducer(r.lifetime, TypeKey(r.t), r.factory), nil
}

// newFactory validates a user factory function and wraps it behind the uniform
// two-argument build signature. The arity is inspected once here, never at
// activation time.
//
// Supported parameter shapes: (), (*Scope), and (*Scope, Key) where the Key is
// the requesting key being activated. The factory returns the service, or the
// service and an error.
func newFactory(factory any, declared reflect.Type) (reflect.Type, buildFunc, error) {
	t := reflect.TypeOf(factory)
	if t == nil || t.Kind() != reflect.Func || t.IsVariadic() {
		return nil, nil, &InvalidFactoryError{Type: declared}
	}

	v := reflect.ValueOf(factory)

	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != typeError {
			return nil, nil, &InvalidFactoryError{Type: declared}
		}
	default:
		return nil, nil, &InvalidFactoryError{Type: declared}
	}

	returnType := declared
	if returnType == nil {
		returnType = t.Out(0)
		if returnType == typeAny || returnType == typeError {
			return nil, nil, &MissingReturnTypeError{}
		}
	}

	var call func(s *Scope, requesting Key) []reflect.Value

	switch t.NumIn() {
	case 0:
		call = func(*Scope, Key) []reflect.Value {
			return v.Call(nil)
		}
	case 1:
		if t.In(0) != typeScope {
			return nil, nil, &InvalidFactoryError{Type: returnType}
		}
		call = func(s *Scope, _ Key) []reflect.Value {
			return v.Call([]reflect.Value{reflect.ValueOf(s)})
		}
	case 2:
		if t.In(0) != typeScope || t.In(1) != typeKey {
			return nil, nil, &InvalidFactoryError{Type: returnType}
		}
		call = func(s *Scope, requesting Key) []reflect.Value {
			return v.Call([]reflect.Value{reflect.ValueOf(s), reflect.ValueOf(requesting)})
		}
	default:
		return nil, nil, &InvalidFactoryError{Type: returnType}
	}

	hasErr := t.NumOut() == 2
	build := func(s *Scope, requesting Key) (any, error) {
		out := call(s, requesting)
		if hasErr {
			if err, _ := out[1].Interface().(error); err != nil {
				return nil, err
			}
		}
		return out[0].Interface(), nil
	}

	return returnType, build, nil
}
