// Package serialio holds the v1 byte-stream interfaces used for serial ports.
package serialio

import (
	"errors"

	"halcompat/errcode"
)

// ErrorKind classifies a stream error.
type ErrorKind uint8

const (
	ErrorOther ErrorKind = iota
	ErrorNotFound
	ErrorPermissionDenied
	ErrorConnectionRefused
	ErrorConnectionReset
	ErrorConnectionAborted
	ErrorNotConnected
	ErrorAddrInUse
	ErrorAddrNotAvailable
	ErrorBrokenPipe
	ErrorAlreadyExists
	ErrorInvalidInput
	ErrorInvalidData
	ErrorTimedOut
	ErrorInterrupted
	ErrorUnsupported
	ErrorOutOfMemory
	ErrorWriteZero
)

var kindNames = [...]string{
	"other", "not_found", "permission_denied", "connection_refused",
	"connection_reset", "connection_aborted", "not_connected", "addr_in_use",
	"addr_not_available", "broken_pipe", "already_exists", "invalid_input",
	"invalid_data", "timed_out", "interrupted", "unsupported", "out_of_memory",
	"write_zero",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Error is a stream error that can be classified.
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

// Read reads at least one byte, blocking until some are available. A zero
// length buffer returns immediately.
type Read interface {
	Read(buf []byte) (int, error)
}

// ReadReady reports whether Read would return without blocking.
type ReadReady interface {
	ReadReady() (bool, error)
}

// Write writes some prefix of buf, blocking until at least one byte is
// accepted. A zero length buffer returns 0 immediately.
type Write interface {
	Write(buf []byte) (int, error)
	Flush() error
}

// WriteReady reports whether Write would return without blocking.
type WriteReady interface {
	WriteReady() (bool, error)
}

type writeZero struct{}

func (writeZero) Error() string   { return string(errcode.WriteZero) }
func (writeZero) Kind() ErrorKind { return ErrorWriteZero }
func (writeZero) Code() errcode.Code {
	return errcode.WriteZero
}

// ErrWriteZero is returned by WriteAll when a Write makes no progress.
var ErrWriteZero Error = writeZero{}

// WriteAll writes the whole of buf.
func WriteAll(w Write, buf []byte) error {
	for len(buf) > 0 {
		n, err := w.Write(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrWriteZero
		}
		buf = buf[n:]
	}
	return nil
}
