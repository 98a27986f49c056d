// Package i2c holds the v1 I2C interface.
package i2c

import "errors"

// SevenBitAddress is a bus address in the range 0x00..0x7f.
type SevenBitAddress = uint8

// ErrorKind classifies a bus error.
type ErrorKind uint8

const (
	ErrorBus ErrorKind = iota
	ErrorArbitrationLoss
	ErrorNoAcknowledge
	ErrorOverrun
	ErrorOther
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorBus:
		return "bus"
	case ErrorArbitrationLoss:
		return "arbitration_loss"
	case ErrorNoAcknowledge:
		return "no_acknowledge"
	case ErrorOverrun:
		return "overrun"
	case ErrorOther:
		return "other"
	}
	return "unknown"
}

// NoAcknowledgeSource says which phase was not acknowledged.
type NoAcknowledgeSource uint8

const (
	NackUnknown NoAcknowledgeSource = iota
	NackAddress
	NackData
)

func (s NoAcknowledgeSource) String() string {
	switch s {
	case NackAddress:
		return "address"
	case NackData:
		return "data"
	}
	return "unknown"
}

// Error is a bus error that can be classified.
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

// OpKind tags an Operation.
type OpKind uint8

const (
	OpRead OpKind = iota
	OpWrite
)

func (k OpKind) String() string {
	switch k {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	}
	return "unknown"
}

// Operation is one step of a transaction.
type Operation struct {
	Kind OpKind
	Buf  []byte
}

func ReadOp(buf []byte) Operation  { return Operation{Kind: OpRead, Buf: buf} }
func WriteOp(buf []byte) Operation { return Operation{Kind: OpWrite, Buf: buf} }

// I2C is a bus controller.
//
// Transaction runs ops against addr with a single start and stop. Adjacent
// operations of the same kind are one contiguous transfer; a change of
// direction issues a repeated start.
type I2C interface {
	Read(addr SevenBitAddress, buf []byte) error
	Write(addr SevenBitAddress, buf []byte) error
	WriteRead(addr SevenBitAddress, w, r []byte) error
	Transaction(addr SevenBitAddress, ops []Operation) error
}
