package concurrent

// ErrPanic is the error reported for a supplier that panicked
type ErrPanic struct {
	Cause error
}

// Error implementation of error for ErrPanic
func (e ErrPanic) Error() string {
	return e.Cause.Error()
}
