package underz

import "reflect"

// Flatten collapses arbitrarily nested slices and arrays into a single
// slice of their non-sequence leaves, depth first and left to right.
// Nested values of any slice or array type are descended into, including
// typed ones such as []int.
//
//	underz.Flatten([]any{1, []any{2}, []any{3, []any{[]any{4}}}})
//	// [1 2 3 4]
func Flatten(nested []any) []any {
	return flattenInto([]any{}, Sequence(nested...))
}

func flattenInto(result []any, c Collection[any]) []any {
	Each(c, func(item any, _ Key, _ Collection[any]) {
		if inner, ok := asSequence(item); ok {
			result = flattenInto(result, inner)
			return
		}
		result = append(result, item)
	})
	return result
}

func asSequence(v any) (Collection[any], bool) {
	switch s := v.(type) {
	case []any:
		return Sequence(s...), true
	case nil:
		return Collection[any]{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Collection[any]{}, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return Sequence(items...), true
}
