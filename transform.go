package underz

// Map applies fn to every element of c and collects the results in
// traversal order. The result always has c.Len() elements.
//
// Example:
//
//	doubled := underz.Map(underz.Sequence(1, 2, 3), func(n int, _ underz.Key) int {
//	    return n * 2
//	})
func Map[T, R any](c Collection[T], fn func(value T, key Key) R) []R {
	out := make([]R, 0, c.Len())
	Each(c, func(item T, key Key, _ Collection[T]) {
		out = append(out, fn(item, key))
	})
	return out
}

// Pluck extracts the property key from every element of c. Elements
// without the property contribute the zero value of V.
//
//	ages := underz.Pluck(underz.Sequence(people...), "age")
func Pluck[V any](c Collection[map[string]V], key string) []V {
	return Map(c, func(item map[string]V, _ Key) V {
		return item[key]
	})
}

// Property returns a function that reads the property key from a mapping.
// It is the iteratee Pluck uses and pairs well with SortBy and Map.
func Property[V any](key string) func(map[string]V) V {
	return func(m map[string]V) V {
		return m[key]
	}
}
