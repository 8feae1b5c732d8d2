package underz

// Reduce folds c from left to right in traversal order: each call receives
// the previous result and the next element.
//
// When initial is omitted the fold starts from numeric 0, not from the
// first element: the zero value of A, or the int 0 when A is an interface
// type such as any. Folds over strings or maps should pass an explicit
// initial value.
//
//	sum := underz.Reduce(underz.Sequence(1, 2, 3), func(total, n int) int {
//	    return total + n
//	}) // 6
func Reduce[T, A any](c Collection[T], fn func(acc A, item T) A, initial ...A) A {
	acc := defaultAccumulator[A]()
	if len(initial) > 0 {
		acc = initial[0]
	}
	Each(c, func(item T, _ Key, _ Collection[T]) {
		acc = fn(acc, item)
	})
	return acc
}

func defaultAccumulator[A any]() A {
	var acc A
	if zero, ok := any(0).(A); ok {
		acc = zero
	}
	return acc
}

// Contains reports whether any element of c is identical to target, in the
// sense of IndexOf. The scan always visits every element; the result
// latches once a match is seen.
func Contains[T comparable](c Collection[T], target T) bool {
	return Reduce(c, func(found bool, item T) bool {
		if found {
			return true
		}
		return identical(item, target)
	}, false)
}

// Every reports whether test holds for every element of c. A nil test
// always holds, and an empty collection yields true.
func Every[T any](c Collection[T], test func(T) bool) bool {
	if test == nil {
		return true
	}
	return Reduce(c, func(all bool, item T) bool {
		if !all {
			return false
		}
		return test(item)
	}, true)
}

// Some reports whether test holds for at least one element of c. An empty
// collection yields false. Each element is checked through Every, so a nil
// test holds for any non-empty collection.
func Some[T any](c Collection[T], test func(T) bool) bool {
	if c.Len() == 0 {
		return false
	}
	return Reduce(c, func(found bool, item T) bool {
		if found {
			return true
		}
		return Every(Sequence(item), test)
	}, false)
}
