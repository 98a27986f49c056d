package compat

import (
	delay0 "halcompat/halv0/delay"
	delay1 "halcompat/halv1/delay"
	"halcompat/x/mathx"
)

// ForwardDelay presents a v0 delay of width W as a v1 DelayNs. Durations
// that do not fit in W are split into several calls; nanoseconds round up
// to the next microsecond.
type ForwardDelay[W delay0.Word, D delay0.Delay[W]] struct{ container[D] }

func NewForwardDelay[W delay0.Word, D delay0.Delay[W]](d D) *ForwardDelay[W, D] {
	return &ForwardDelay[W, D]{container[D]{inner: d}}
}

func (a *ForwardDelay[W, D]) DelayNs(ns uint32) {
	a.DelayUs(mathx.CeilDiv(ns, 1000))
}

func (a *ForwardDelay[W, D]) DelayUs(us uint32) { mathx.Chunks[W](us, a.inner.DelayUs) }
func (a *ForwardDelay[W, D]) DelayMs(ms uint32) { mathx.Chunks[W](ms, a.inner.DelayMs) }

// ReverseDelay presents a v1 DelayNs as a v0 delay of width W.
type ReverseDelay[W delay0.Word, D delay1.DelayNs] struct{ container[D] }

func NewReverseDelay[W delay0.Word, D delay1.DelayNs](d D) *ReverseDelay[W, D] {
	return &ReverseDelay[W, D]{container[D]{inner: d}}
}

func (a *ReverseDelay[W, D]) DelayMs(ms W) { a.inner.DelayMs(uint32(ms)) }
func (a *ReverseDelay[W, D]) DelayUs(us W) { a.inner.DelayUs(uint32(us)) }
