package underz

// Filter returns the elements of c for which test returns true, in
// traversal order.
func Filter[T any](c Collection[T], test func(T) bool) []T {
	out := []T{}
	Each(c, func(item T, _ Key, _ Collection[T]) {
		if test(item) {
			out = append(out, item)
		}
	})
	return out
}

// Reject returns the elements of c that Filter would leave out, in
// traversal order. Filter and Reject always partition c: each element lands
// in exactly one of the two results, duplicates included.
func Reject[T any](c Collection[T], test func(T) bool) []T {
	return Filter(c, func(item T) bool {
		return !test(item)
	})
}

// Uniq returns seq without duplicates, keeping the first occurrence of each
// value. Duplicates are found through IndexOf, which makes Uniq quadratic.
func Uniq[T comparable](seq []T) []T {
	out := []T{}
	Each(Sequence(seq...), func(item T, key Key, _ Collection[T]) {
		if IndexOf(seq, item) == key.Index() {
			out = append(out, item)
		}
	})
	return out
}
