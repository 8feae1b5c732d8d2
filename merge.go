package underz

// Object is a property bag: the shape Extend, Defaults and the
// property-based helpers work on when the values are heterogeneous.
type Object = map[string]any

// Extend copies every property of each source into target, in source
// order. Later sources overwrite earlier ones and target's own properties.
// target is mutated and returned; a nil target is allocated first.
func Extend[V any](target map[string]V, sources ...map[string]V) map[string]V {
	if target == nil {
		target = make(map[string]V)
	}
	Each(Sequence(sources...), func(source map[string]V, _ Key, _ Collection[map[string]V]) {
		Each(Mapping(source), func(value V, key Key, _ Collection[V]) {
			target[key.Name()] = value
		})
	})
	return target
}

// Defaults fills in properties missing from target using each source in
// order. A property is only assigned when target does not hold it at the
// moment of assignment, so the first source to supply a key wins.
// target is mutated and returned; a nil target is allocated first.
func Defaults[V any](target map[string]V, sources ...map[string]V) map[string]V {
	if target == nil {
		target = make(map[string]V)
	}
	Each(Sequence(sources...), func(source map[string]V, _ Key, _ Collection[map[string]V]) {
		Each(Mapping(source), func(value V, key Key, _ Collection[V]) {
			if _, ok := target[key.Name()]; !ok {
				target[key.Name()] = value
			}
		})
	})
	return target
}
