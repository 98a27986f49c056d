// Package nb is the non-blocking call contract of the v0 family: a call that
// cannot make progress right now returns ErrWouldBlock and is retried.
package nb

import (
	"errors"

	"halcompat/errcode"
)

// ErrWouldBlock reports that the operation must be retried later.
var ErrWouldBlock error = errcode.WouldBlock

func IsWouldBlock(err error) bool { return errors.Is(err, ErrWouldBlock) }

// Block retries f until it returns something other than ErrWouldBlock.
func Block(f func() error) error {
	for {
		err := f()
		if !IsWouldBlock(err) {
			return err
		}
	}
}

// BlockValue is Block for calls that produce a value.
func BlockValue[T any](f func() (T, error)) (T, error) {
	for {
		v, err := f()
		if !IsWouldBlock(err) {
			return v, err
		}
	}
}
