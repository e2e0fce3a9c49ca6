package concurrent

import (
	"fmt"
	"runtime/debug"
)

// Supplier defines an arbitrary operation that produces a value
type Supplier[T any] interface {
	Supply() (T, error)
}

// SupplierFunc allows a function to act as a Supplier
type SupplierFunc[T any] func() (T, error)

// Implementation of Supplier interface for SupplierFunc.
func (f SupplierFunc[T]) Supply() (T, error) {
	return f()
}

// Result of a supplier
type Result[T any] struct {
	value T
	err   error
}

// Value returned by the supplier
func (r Result[T]) Value() T {
	return r.value
}

// Err returned by the supplier
func (r Result[T]) Err() error {
	return r.err
}

// supply runs the supplier and turns a panic into an error, so
// that a failing supplier does not bring down the whole batch
func supply[T any](s Supplier[T]) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorFromPanic(r)
		}
	}()

	return s.Supply()
}

func errorFromPanic(r interface{}) error {
	stacktrace := debug.Stack()

	switch x := r.(type) {
	case string:
		return ErrPanic{Cause: fmt.Errorf("panic error %s at %s", x, string(stacktrace))}
	case error:
		return ErrPanic{Cause: fmt.Errorf("panic error %s at %s", x.Error(), string(stacktrace))}
	default:
		return ErrPanic{Cause: fmt.Errorf("unknown panic %+v at %s", r, string(stacktrace))}
	}
}
