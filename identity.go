package underz

// Identity returns v unchanged. It is the default iteratee wherever a
// caller has nothing better to supply.
func Identity[T any](v T) T {
	return v
}

// First returns the first element of seq, or the zero value when seq is empty.
func First[T any](seq []T) T {
	var zero T
	if len(seq) == 0 {
		return zero
	}
	return seq[0]
}

// FirstN returns the first n elements of seq. A negative n is treated as an
// end offset from the back, so FirstN(s, -1) drops the last element.
func FirstN[T any](seq []T, n int) []T {
	end := n
	if end < 0 {
		end = max(len(seq)+end, 0)
	}
	end = min(end, len(seq))
	out := make([]T, end)
	copy(out, seq[:end])
	return out
}

// Last returns the last element of seq, or the zero value when seq is empty.
func Last[T any](seq []T) T {
	var zero T
	if len(seq) == 0 {
		return zero
	}
	return seq[len(seq)-1]
}

// LastN returns the last n elements of seq. Asking for more elements than
// seq holds returns all of them; a negative n returns none.
func LastN[T any](seq []T, n int) []T {
	start := max(len(seq)-n, 0)
	if start > len(seq) {
		start = len(seq)
	}
	out := make([]T, len(seq)-start)
	copy(out, seq[start:])
	return out
}
