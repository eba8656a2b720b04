package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Bounds checks happen deep inside loops over triangles. Rather than thread an
// error through every helper, we panic with a TopologyError and the public API
// recovers it into an ordinary error. Any other panic is a real bug and is
// re-raised.

type TopologyError struct {
	Err error
}

func (e TopologyError) Error() string { return e.Err.Error() }
func (e TopologyError) Cause() error  { return e.Err }
func (e TopologyError) Unwrap() error { return e.Err }

// A triangle index that points outside the point set.
type IndexError struct {
	Triangle int // Position of the offending triangle
	Index    int
	Len      int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("triangle %d: index %d out of range for %d points", e.Triangle, e.Index, e.Len)
}

// Panic with a TopologyError.
func fatalf(format string, args ...interface{}) {
	panic(TopologyError{errors.Errorf(format, args...)})
}

func throw(err error) {
	panic(TopologyError{err})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if topologyError, ok := r.(TopologyError); ok {
			return topologyError.Err
		}
		panic(r)
	}
	return nil
}
