package underz

import "errors"

// The algorithms in this package do not validate their input: a bad
// argument fails the call with whatever panic the traversal or lookup
// produces.

// ErrMethodNotFound is raised by InvokeMethod, wrapped in the panic value,
// when an element has no exported method with the requested name. A caller
// that chooses to recover can detect it with errors.Is.
var ErrMethodNotFound = errors.New("method not found")
