package compat

import (
	"errors"

	digital1 "halcompat/halv1/digital"
	i2c1 "halcompat/halv1/i2c"
	"halcompat/halv1/serialio"
	spi1 "halcompat/halv1/spi"
)

// Error carries a v0 error through a v1 interface that expects a classified
// error. Its kind is always the target domain's "other" kind.
type Error[K any] struct {
	err  error
	kind K
}

func (e *Error[K]) Error() string { return e.err.Error() }
func (e *Error[K]) Unwrap() error { return e.err }

// Inner returns the original error.
func (e *Error[K]) Inner() error { return e.err }

func (e *Error[K]) Kind() K { return e.kind }

// wrap returns err unchanged when it already classifies itself as K,
// otherwise boxes it with other.
func wrap[K any](err error, other K) error {
	if err == nil {
		return nil
	}
	var k interface{ Kind() K }
	if errors.As(err, &k) {
		return err
	}
	return &Error[K]{err: err, kind: other}
}

func digitalErr(err error) error { return wrap(err, digital1.ErrorOther) }
func spiErr(err error) error     { return wrap(err, spi1.ErrorOther) }
func i2cErr(err error) error     { return wrap(err, i2c1.ErrorOther) }
func ioErr(err error) error      { return wrap(err, serialio.ErrorOther) }
