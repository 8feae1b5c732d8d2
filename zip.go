package underz

// Zip groups the elements of seqs by position. The result has one entry per
// position of the longest input; position i holds the i-th element of every
// input, in input order. Inputs shorter than i+1 contribute the zero value
// of T there, which is nil when T is an interface type.
//
//	underz.Zip([]any{"a", "b", "c", "d"}, []any{1, 2, 3})
//	// [[a 1] [b 2] [c 3] [d <nil>]]
func Zip[T any](seqs ...[]T) [][]T {
	all := Sequence(seqs...)
	longest := Reduce(all, func(largest int, seq []T) int {
		return max(largest, len(seq))
	}, 0)

	out := make([][]T, longest)
	for i := range out {
		out[i] = Map(all, func(seq []T, _ Key) T {
			var absent T
			if i < len(seq) {
				return seq[i]
			}
			return absent
		})
	}
	return out
}
