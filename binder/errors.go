package binder

import (
	"errors"
	"fmt"
)

// ErrBinding matches every error returned by Discover and Bind.
var ErrBinding = errors.New("binding failed")

var (
	ErrNodeNotFound   = errors.New("no component with this id")
	ErrNotDataBearing = errors.New("not a data source")
	ErrNoListener     = errors.New("component has no listener for this event")
	ErrInvalidMarker  = errors.New("invalid marker")
)

// Error reports which marker or field could not be bound.
type Error struct {
	ID     string
	Member string
	Err    error
}

func (e *Error) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("binding %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("binding %s to %q: %v", e.Member, e.ID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes every *Error match ErrBinding.
func (e *Error) Is(target error) bool { return target == ErrBinding }
