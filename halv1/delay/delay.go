// Package delay holds the v1 blocking delay interface.
package delay

// DelayNs pauses for at least the requested duration.
type DelayNs interface {
	DelayNs(ns uint32)
	DelayUs(us uint32)
	DelayMs(ms uint32)
}
