package underz

// Intersection returns the elements of the first sequence that are present
// in every other sequence, in the first sequence's order. Duplicates in the
// first sequence are kept. With no sequences the result is empty; with one
// it is a copy of that sequence.
//
//	underz.Intersection([]int{1, 2, 3}, []int{101, 2, 1, 10}, []int{2, 1})
//	// [1 2]
func Intersection[T comparable](seqs ...[]T) []T {
	if len(seqs) == 0 {
		return []T{}
	}
	first, others := seqs[0], Sequence(seqs[1:]...)
	return Filter(Sequence(first...), func(item T) bool {
		return Every(others, func(seq []T) bool {
			return IndexOf(seq, item) != -1
		})
	})
}

// Difference returns the elements of seq that appear in none of others,
// keeping seq's order. With no others the result is a copy of seq.
//
//	underz.Difference([]int{1, 2, 3, 4}, []int{2, 3}) // [1 4]
func Difference[T comparable](seq []T, others ...[]T) []T {
	rest := Sequence(others...)
	return Reject(Sequence(seq...), func(item T) bool {
		return Some(rest, func(other []T) bool {
			return IndexOf(other, item) != -1
		})
	})
}
