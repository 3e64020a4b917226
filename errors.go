package contiguous

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKeyFunc is returned when a sequence without a key function is asked
	// to decode external data. It indicates the receiver was not created with
	// New, FromUnsorted or Collect.
	ErrNoKeyFunc = errors.New("key function not set")
)

// ErrDuplicateKey indicates that two elements would share a key.
//
// Duplicate keys are a contract violation, never silently resolved: they are
// reported by FromUnsorted, Insert, RetainMap and the decode paths, and the
// data model forbids overwrite-on-conflict.
type ErrDuplicateKey struct {
	Key any
}

func (e *ErrDuplicateKey) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}

// ErrRowLengthMismatch indicates that Array2 construction or decoding was
// given rows of inconsistent length.
type ErrRowLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrRowLengthMismatch) Error() string {
	return fmt.Sprintf("row length mismatch: expected %d, got %d", e.Expected, e.Actual)
}
