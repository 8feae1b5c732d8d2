package underz

import (
	"fmt"
	"reflect"
)

// Invoke calls fn once per element of c with the element and args, and
// returns the results in traversal order.
func Invoke[T, R any](c Collection[T], fn func(item T, args ...any) R, args ...any) []R {
	return Map(c, func(item T, _ Key) R {
		return fn(item, args...)
	})
}

// InvokeMethod calls the exported method named method on every element of
// c with args, and returns one result per element: the method's only
// return value, nil when it returns nothing, or a []any holding every
// return value when it returns several.
//
// An element without such a method panics with an error wrapping
// ErrMethodNotFound. Arguments follow reflect.Value.Call rules; a mismatch
// panics there.
func InvokeMethod[T any](c Collection[T], method string, args ...any) []any {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = reflect.ValueOf(arg)
	}
	return Map(c, func(item T, key Key) any {
		m := reflect.ValueOf(item).MethodByName(method)
		if !m.IsValid() {
			panic(fmt.Errorf("%w: %T has no method %q (element %s)", ErrMethodNotFound, item, method, key))
		}
		return collectResults(m.Call(in))
	})
}

func collectResults(out []reflect.Value) any {
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		results := make([]any, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		return results
	}
}
