// Package underz provides a small, type-safe functional toolkit for Go:
// uniform iteration over sequences and mappings, eager collection
// algorithms built on that iteration, and function decorators that change
// how a function is invoked.
//
// # Overview
//
// Every collection algorithm composes from two primitives:
//
//   - Each: visits every element of a Collection, whatever its kind
//   - Reduce: folds a Collection into a single value
//
// A Collection[T] is a tagged variant holding either an ordered sequence
// ([]T) or a mapping (map[string]T). Each is the only place that looks at the
// tag, so every algorithm accepts both kinds without branching itself.
//
//	ages := underz.Sequence(40, 1, 17)
//	byName := underz.Mapping(map[string]int{"ann": 40, "bob": 1})
//
//	underz.Filter(ages, func(n int) bool { return n >= 18 })   // [40]
//	underz.Reduce(byName, func(sum, n int) int { return sum + n }) // 41
//
// # Algorithms
//
// Selection:
//   - Filter, Reject: complementary, order-preserving partition
//   - Uniq: first occurrence of each value
//
// Transformation:
//   - Map, Pluck, Invoke, InvokeMethod
//
// Aggregation:
//   - Reduce (omitted initial value starts from 0), Contains, Every, Some
//
// Merging:
//   - Extend, Defaults
//
// Ordering and sets:
//   - SortBy, SortByOptional, SortByProperty: stable, absent keys last
//   - Zip, Flatten, Intersection, Difference, Shuffle
//
// All algorithms are eager and return new slices; only Extend and Defaults
// mutate their target, by contract.
//
// # Decorators
//
// Decorators wrap a function and change its invocation semantics without
// changing its signature:
//
//   - Once: run on the first call, replay that result afterwards
//   - Memoize: cache results per argument
//   - Delay: run later on a Scheduler
//   - Throttle: at most one run per time window, with one trailing run
//
// Each decorator comes in two forms. The plain form returns a function:
//
//	load := underz.Once(func(paths ...string) *Config { return read(paths...) })
//
// The New form returns a state object with metrics (metricz), tracing
// (tracez) and lifecycle hooks (hookz), mirroring how long-lived components
// are observed elsewhere in the zoobzio ecosystem:
//
//	save := underz.NewThrottle("autosave", persist, time.Second)
//	defer save.Close()
//	save.OnInvoked(func(ctx context.Context, e underz.ThrottleEvent) error {
//	    log.Printf("%s ran (trailing=%t)", e.Name, e.Trailing)
//	    return nil
//	})
//
// State is private to each decorated value: decorating the same function
// twice yields two independent caches, windows and results.
//
// # Time and randomness
//
// Delay and Throttle schedule work through a Scheduler, which every
// clockz.Clock satisfies. Tests substitute clockz.NewFakeClock() and advance
// time explicitly. Shuffle draws from a RandomSource (*rand.Rand satisfies
// it) so tests can seed it.
//
// # Errors
//
// Algorithms do not validate their input. Misuse fails the call with the
// panic the underlying access produces; a failed method lookup panics with
// an error wrapping ErrMethodNotFound.
package underz
