package compat

import (
	"context"

	digital0 "halcompat/halv0/digital"
	digital1 "halcompat/halv1/digital"
)

// PinMode selects which capability subset a forwarded pin exposes.
type PinMode uint8

const (
	PinInput PinMode = iota
	PinOutput
	PinIO
)

func (m PinMode) String() string {
	switch m {
	case PinInput:
		return "input"
	case PinOutput:
		return "output"
	case PinIO:
		return "io"
	}
	return "unknown"
}

// ForwardPin is implemented only by ForwardInputPin, ForwardOutputPin and
// ForwardIOPin. Type-assert to the digital1 interfaces to use it.
type ForwardPin interface {
	Mode() PinMode
	forwardPin()
}

// ---- forward ----

type ForwardInputPin[P digital0.InputPin] struct{ container[P] }

func NewForwardInputPin[P digital0.InputPin](p P) *ForwardInputPin[P] {
	return &ForwardInputPin[P]{container[P]{inner: p}}
}

func (a *ForwardInputPin[P]) IsHigh() (bool, error) {
	v, err := a.inner.IsHigh()
	return v, digitalErr(err)
}

func (a *ForwardInputPin[P]) IsLow() (bool, error) {
	v, err := a.inner.IsLow()
	return v, digitalErr(err)
}

func (a *ForwardInputPin[P]) Mode() PinMode { return PinInput }
func (a *ForwardInputPin[P]) forwardPin()   {}

type ForwardOutputPin[P digital0.OutputPin] struct{ container[P] }

func NewForwardOutputPin[P digital0.OutputPin](p P) *ForwardOutputPin[P] {
	return &ForwardOutputPin[P]{container[P]{inner: p}}
}

func (a *ForwardOutputPin[P]) SetHigh() error { return digitalErr(a.inner.SetHigh()) }
func (a *ForwardOutputPin[P]) SetLow() error  { return digitalErr(a.inner.SetLow()) }
func (a *ForwardOutputPin[P]) SetState(s digital1.PinState) error {
	return digital1.SetState(a, s)
}

func (a *ForwardOutputPin[P]) Mode() PinMode { return PinOutput }
func (a *ForwardOutputPin[P]) forwardPin()   {}

type ForwardIOPin[P IOPinV0] struct{ container[P] }

func NewForwardIOPin[P IOPinV0](p P) *ForwardIOPin[P] {
	return &ForwardIOPin[P]{container[P]{inner: p}}
}

func (a *ForwardIOPin[P]) IsHigh() (bool, error) {
	v, err := a.inner.IsHigh()
	return v, digitalErr(err)
}

func (a *ForwardIOPin[P]) IsLow() (bool, error) {
	v, err := a.inner.IsLow()
	return v, digitalErr(err)
}

func (a *ForwardIOPin[P]) SetHigh() error { return digitalErr(a.inner.SetHigh()) }
func (a *ForwardIOPin[P]) SetLow() error  { return digitalErr(a.inner.SetLow()) }
func (a *ForwardIOPin[P]) SetState(s digital1.PinState) error {
	return digital1.SetState(a, s)
}

func (a *ForwardIOPin[P]) Mode() PinMode { return PinIO }
func (a *ForwardIOPin[P]) forwardPin()   {}

// ForwardStatefulOutputPin adds the v1 Toggle. If the inner pin has no
// Toggle of its own, the driven level is read back and inverted.
type ForwardStatefulOutputPin[P digital0.StatefulOutputPin] struct{ container[P] }

func NewForwardStatefulOutputPin[P digital0.StatefulOutputPin](p P) *ForwardStatefulOutputPin[P] {
	return &ForwardStatefulOutputPin[P]{container[P]{inner: p}}
}

func (a *ForwardStatefulOutputPin[P]) SetHigh() error { return digitalErr(a.inner.SetHigh()) }
func (a *ForwardStatefulOutputPin[P]) SetLow() error  { return digitalErr(a.inner.SetLow()) }
func (a *ForwardStatefulOutputPin[P]) SetState(s digital1.PinState) error {
	return digital1.SetState(a, s)
}

func (a *ForwardStatefulOutputPin[P]) IsSetHigh() (bool, error) {
	v, err := a.inner.IsSetHigh()
	return v, digitalErr(err)
}

func (a *ForwardStatefulOutputPin[P]) IsSetLow() (bool, error) {
	v, err := a.inner.IsSetLow()
	return v, digitalErr(err)
}

func (a *ForwardStatefulOutputPin[P]) Toggle() error {
	if t, ok := any(a.inner).(digital0.ToggleableOutputPin); ok {
		return digitalErr(t.Toggle())
	}
	high, err := a.inner.IsSetHigh()
	if err != nil {
		return digitalErr(err)
	}
	return digital1.SetState(a, digital1.PinStateFrom(high).Not())
}

// ForwardWaitPin forwards level reads and passes the wait calls straight
// through with the caller's context.
type ForwardWaitPin[P WaitPinV0] struct{ container[P] }

func NewForwardWaitPin[P WaitPinV0](p P) *ForwardWaitPin[P] {
	return &ForwardWaitPin[P]{container[P]{inner: p}}
}

func (a *ForwardWaitPin[P]) IsHigh() (bool, error) {
	v, err := a.inner.IsHigh()
	return v, digitalErr(err)
}

func (a *ForwardWaitPin[P]) IsLow() (bool, error) {
	v, err := a.inner.IsLow()
	return v, digitalErr(err)
}

func (a *ForwardWaitPin[P]) WaitForHigh(ctx context.Context) error { return a.inner.WaitForHigh(ctx) }
func (a *ForwardWaitPin[P]) WaitForLow(ctx context.Context) error  { return a.inner.WaitForLow(ctx) }
func (a *ForwardWaitPin[P]) WaitForRisingEdge(ctx context.Context) error {
	return a.inner.WaitForRisingEdge(ctx)
}
func (a *ForwardWaitPin[P]) WaitForFallingEdge(ctx context.Context) error {
	return a.inner.WaitForFallingEdge(ctx)
}
func (a *ForwardWaitPin[P]) WaitForAnyEdge(ctx context.Context) error {
	return a.inner.WaitForAnyEdge(ctx)
}

// ---- reverse ----

type ReverseInputPin[P digital1.InputPin] struct{ container[P] }

func NewReverseInputPin[P digital1.InputPin](p P) *ReverseInputPin[P] {
	return &ReverseInputPin[P]{container[P]{inner: p}}
}

func (a *ReverseInputPin[P]) IsHigh() (bool, error) { return a.inner.IsHigh() }
func (a *ReverseInputPin[P]) IsLow() (bool, error)  { return a.inner.IsLow() }

type ReverseOutputPin[P digital1.OutputPin] struct{ container[P] }

func NewReverseOutputPin[P digital1.OutputPin](p P) *ReverseOutputPin[P] {
	return &ReverseOutputPin[P]{container[P]{inner: p}}
}

func (a *ReverseOutputPin[P]) SetHigh() error { return a.inner.SetHigh() }
func (a *ReverseOutputPin[P]) SetLow() error  { return a.inner.SetLow() }

type ReverseIOPin[P digital1.IOPin] struct{ container[P] }

func NewReverseIOPin[P digital1.IOPin](p P) *ReverseIOPin[P] {
	return &ReverseIOPin[P]{container[P]{inner: p}}
}

func (a *ReverseIOPin[P]) IsHigh() (bool, error) { return a.inner.IsHigh() }
func (a *ReverseIOPin[P]) IsLow() (bool, error)  { return a.inner.IsLow() }
func (a *ReverseIOPin[P]) SetHigh() error        { return a.inner.SetHigh() }
func (a *ReverseIOPin[P]) SetLow() error         { return a.inner.SetLow() }

type ReverseStatefulOutputPin[P digital1.StatefulOutputPin] struct{ container[P] }

func NewReverseStatefulOutputPin[P digital1.StatefulOutputPin](p P) *ReverseStatefulOutputPin[P] {
	return &ReverseStatefulOutputPin[P]{container[P]{inner: p}}
}

func (a *ReverseStatefulOutputPin[P]) SetHigh() error           { return a.inner.SetHigh() }
func (a *ReverseStatefulOutputPin[P]) SetLow() error            { return a.inner.SetLow() }
func (a *ReverseStatefulOutputPin[P]) IsSetHigh() (bool, error) { return a.inner.IsSetHigh() }
func (a *ReverseStatefulOutputPin[P]) IsSetLow() (bool, error)  { return a.inner.IsSetLow() }
func (a *ReverseStatefulOutputPin[P]) Toggle() error            { return a.inner.Toggle() }
