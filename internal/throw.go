package internal

import (
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors through the pivot search, the sort comparator and the sweep
// would clutter the algorithm. Instead, we use panics, and the public API
// recovers to convert to an error.

var (
	// A nil point, or a coordinate outside of MaxCoordinate.
	ErrInvalidInput = errors.New("invalid input")
	// The runtime refused to allocate the working copy or the hull stack. This
	// is best effort: only runtime panics from those allocations are caught. An
	// actual out of memory condition is fatal in Go and cannot be recovered.
	ErrAllocationFailure = errors.New("allocation failure")
)

// Only panics carrying a *HullError are converted back into errors. Anything
// else, including runtime errors raised by bugs, keeps propagating.
type HullError struct {
	Err error
}

func (e *HullError) Error() string {
	return e.Err.Error()
}

func (e *HullError) Unwrap() error {
	return e.Err
}

// Panic with a HullError wrapping ErrInvalidInput.
func fatalf(format string, args ...interface{}) {
	panic(&HullError{errors.Wrapf(ErrInvalidInput, format, args...)})
}

// Run an allocation, converting a runtime panic (e.g. "makeslice: cap out of
// range") into ErrAllocationFailure. The runtime aborts on real memory
// exhaustion, which no recover can see.
func allocate(what string, n int, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if runtimeErr, ok := r.(runtime.Error); ok {
				panic(&HullError{errors.Wrapf(ErrAllocationFailure, "%s for %d points: %v", what, n, runtimeErr)})
			}
			panic(r)
		}
	}()
	fn()
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(*HullError); ok {
			return hullError.Err
		}
		panic(r)
	}
	return nil
}
