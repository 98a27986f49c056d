// Package digital holds the v0 digital pin interfaces.
package digital

// InputPin reads a pin level.
type InputPin interface {
	IsHigh() (bool, error)
	IsLow() (bool, error)
}

// OutputPin drives a pin level.
type OutputPin interface {
	SetHigh() error
	SetLow() error
}

// StatefulOutputPin can report the level it was last driven to.
type StatefulOutputPin interface {
	OutputPin
	IsSetHigh() (bool, error)
	IsSetLow() (bool, error)
}

// ToggleableOutputPin inverts its driven level.
type ToggleableOutputPin interface {
	Toggle() error
}
