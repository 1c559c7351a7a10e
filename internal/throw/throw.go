package throw

import "github.com/pkg/errors"

// Threading errors through every bucket probe and axiom batch would add a lot
// of noise to the hot path for conditions that only a bug can produce.
// Instead, those paths panic with an *Error, and the public API recovers to
// convert it back into an error.

type Error struct {
	cause error
}

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Panic with an *Error.
func Fatalf(format string, args ...interface{}) {
	panic(&Error{errors.Errorf(format, args...)})
}

// Convert a recovered *Error back into an error. Any other panic value is
// re-raised, since it did not come from us.
func Recover(r interface{}) error {
	if r != nil {
		if err, ok := r.(*Error); ok {
			return err.cause
		}
		panic(r)
	}
	return nil
}
