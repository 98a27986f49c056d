// Package digital holds the v1 digital pin interfaces.
package digital

import (
	"context"
	"errors"
)

// ErrorKind classifies a pin error.
type ErrorKind uint8

const (
	ErrorOther ErrorKind = iota
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorOther:
		return "other"
	}
	return "unknown"
}

// Error is a pin error that can be classified.
type Error interface {
	error
	Kind() ErrorKind
}

// KindOf classifies err, defaulting to ErrorOther.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return ErrorOther
}

// PinState is a logic level.
type PinState bool

const (
	Low  PinState = false
	High PinState = true
)

func PinStateFrom(high bool) PinState { return PinState(high) }

func (s PinState) Not() PinState { return !s }

func (s PinState) String() string {
	if s {
		return "high"
	}
	return "low"
}

type InputPin interface {
	IsHigh() (bool, error)
	IsLow() (bool, error)
}

type OutputPin interface {
	SetLow() error
	SetHigh() error
}

// SetState drives p to s.
func SetState(p OutputPin, s PinState) error {
	if s == High {
		return p.SetHigh()
	}
	return p.SetLow()
}

// StatefulOutputPin remembers the level it drives.
type StatefulOutputPin interface {
	OutputPin
	IsSetHigh() (bool, error)
	IsSetLow() (bool, error)
	Toggle() error
}

// IOPin is a pin that is both read and driven.
type IOPin interface {
	InputPin
	OutputPin
}

// Wait blocks until the pin reaches a level or sees an edge. Cancellation is
// through ctx and is entirely up to the implementation.
type Wait interface {
	WaitForHigh(ctx context.Context) error
	WaitForLow(ctx context.Context) error
	WaitForRisingEdge(ctx context.Context) error
	WaitForFallingEdge(ctx context.Context) error
	WaitForAnyEdge(ctx context.Context) error
}
