package periphshim

import (
	"context"
	"time"

	"halcompat/errcode"
	digital1 "halcompat/halv1/digital"

	"periph.io/x/conn/v3/gpio"
)

// Pin presents a periph gpio.PinIO as a v1 stateful IO pin with waits.
//
// periph can only wait with a timeout, so the waits poll the context every
// poll interval (10ms unless changed with WithPoll).
//
// Waiting needs the pin configured as an input. Once SetHigh, SetLow or
// Toggle has driven it, the waits fail with errcode.Unsupported instead of
// silently letting go of the line; call Release to stop driving first.
type Pin struct {
	pin     gpio.PinIO
	poll    time.Duration
	driving bool
}

var (
	_ digital1.IOPin             = (*Pin)(nil)
	_ digital1.StatefulOutputPin = (*Pin)(nil)
	_ digital1.Wait              = (*Pin)(nil)
)

func FromPin(p gpio.PinIO) *Pin { return &Pin{pin: p, poll: 10 * time.Millisecond} }

func (p *Pin) WithPoll(d time.Duration) *Pin {
	if d > 0 {
		p.poll = d
	}
	return p
}

func (p *Pin) IsHigh() (bool, error) { return p.pin.Read() == gpio.High, nil }
func (p *Pin) IsLow() (bool, error)  { return p.pin.Read() == gpio.Low, nil }

func (p *Pin) SetHigh() error { return p.out(gpio.High) }
func (p *Pin) SetLow() error  { return p.out(gpio.Low) }

func (p *Pin) out(l gpio.Level) error {
	if err := p.pin.Out(l); err != nil {
		return err
	}
	p.driving = true
	return nil
}

// Release stops driving the pin and leaves it as an input, so the waits can
// be used again.
func (p *Pin) Release() error {
	if err := p.pin.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return err
	}
	p.driving = false
	return nil
}

func (p *Pin) IsSetHigh() (bool, error) { return p.IsHigh() }
func (p *Pin) IsSetLow() (bool, error)  { return p.IsLow() }

func (p *Pin) Toggle() error { return p.out(!p.pin.Read()) }

func (p *Pin) WaitForHigh(ctx context.Context) error {
	return p.wait(ctx, gpio.RisingEdge, func(l gpio.Level) bool { return l == gpio.High })
}

func (p *Pin) WaitForLow(ctx context.Context) error {
	return p.wait(ctx, gpio.FallingEdge, func(l gpio.Level) bool { return l == gpio.Low })
}

func (p *Pin) WaitForRisingEdge(ctx context.Context) error {
	return p.wait(ctx, gpio.RisingEdge, nil)
}

func (p *Pin) WaitForFallingEdge(ctx context.Context) error {
	return p.wait(ctx, gpio.FallingEdge, nil)
}

func (p *Pin) WaitForAnyEdge(ctx context.Context) error {
	return p.wait(ctx, gpio.BothEdges, nil)
}

// wait arms edge detection and returns once level reports true, or on the
// first edge when level is nil. The level is checked after arming so a
// transition between the caller's last read and the arm is not lost.
func (p *Pin) wait(ctx context.Context, edge gpio.Edge, level func(gpio.Level) bool) error {
	if p.driving {
		return errcode.Unsupportedf("periphshim.pin", "wait on a pin driven as an output; Release it first")
	}
	if err := p.pin.In(gpio.PullNoChange, edge); err != nil {
		return err
	}
	for {
		if level != nil && level(p.pin.Read()) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.pin.WaitForEdge(p.poll) && level == nil {
			return nil
		}
	}
}
