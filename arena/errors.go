package arena

import (
	"errors"
	"fmt"
)

// ErrInvalidHandle is returned by every operation that receives a handle whose
// slot does not exist, is free, or has been reoccupied under a newer generation.
var ErrInvalidHandle = errors.New("invalid handle")

// ErrCorrupt is reported by Verify and Reset when the slot table breaks an
// invariant.
var ErrCorrupt = errors.New("corrupt slot table")

// Reason says why a handle failed validation.
type Reason uint8

const (
	reasonNone Reason = iota
	ReasonOutOfRange
	ReasonFree
	ReasonStale
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfRange:
		return "slot out of range"
	case ReasonFree:
		return "slot is free"
	case ReasonStale:
		return "generation mismatch"
	default:
		return "valid"
	}
}

// HandleError is the concrete error behind ErrInvalidHandle.
type HandleError struct {
	Handle Handle
	Reason Reason
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("arena: %v %s: %s", ErrInvalidHandle, e.Handle, e.Reason)
}

func (e *HandleError) Unwrap() error {
	return ErrInvalidHandle
}
