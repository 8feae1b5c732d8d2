package underz

// Shuffle returns a new slice holding every element of seq exactly once in
// a uniformly random order. seq is not modified.
func Shuffle[T any](seq []T) []T {
	return ShuffleWith(seq, DefaultRandom)
}

// ShuffleWith is Shuffle drawing from src: every element gets a random sort
// key and the elements are ordered by it.
func ShuffleWith[T any](seq []T, src RandomSource) []T {
	return SortBy(Sequence(seq...), func(T, Key) float64 {
		return src.Float64()
	})
}
