package either

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by panics raised on contract violations.
// Recovered panic values satisfy errors.Is against these sentinels.
var (
	// ErrNilValue reports an attempt to store or produce a nil payload.
	ErrNilValue = errors.New("either: nil value")

	// ErrNilArgument reports a nil function or target argument where one
	// is required.
	ErrNilArgument = errors.New("either: nil argument")

	// ErrNoSuchValue reports access to the side an Either does not hold.
	ErrNoSuchValue = errors.New("either: no such value")

	// ErrTypeMismatch reports a failed cast of the held value.
	ErrTypeMismatch = errors.New("either: type mismatch")
)

func errf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
