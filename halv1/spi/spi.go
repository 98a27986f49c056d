// Package spi holds the v1 SPI interfaces: Bus for exclusive access to the
// wires and Device for chip-select framed transactions.
package spi

import "errors"

// ErrorKind classifies a bus error.
type ErrorKind uint8

const (
	ErrorOverrun ErrorKind = iota
	ErrorModeFault
	ErrorFrameFormat
	ErrorChipSelectFault
	ErrorOther
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorOverrun:
		return "overrun"
	case ErrorModeFault:
		return "mode_fault"
	case ErrorFrameFormat:
		return "frame_format"
	case ErrorChipSelectFault:
		return "chip_select_fault"
	case ErrorOther:
		return "other"
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

// Bus is a full-duplex SPI bus without chip-select management.
//
// Transfer clocks max(len(read), len(write)) words: write is padded with
// zeros, surplus input beyond len(read) is discarded.
type Bus interface {
	Read(words []byte) error
	Write(words []byte) error
	Transfer(read, write []byte) error
	TransferInPlace(words []byte) error
	Flush() error
}

// OpKind tags an Operation.
type OpKind uint8

const (
	OpRead OpKind = iota
	OpWrite
	OpTransfer
	OpTransferInPlace
	OpDelayNs
)

func (k OpKind) String() string {
	switch k {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpTransfer:
		return "transfer"
	case OpTransferInPlace:
		return "transfer_in_place"
	case OpDelayNs:
		return "delay_ns"
	}
	return "unknown"
}

// Operation is one step of a Device transaction. Which fields are used
// depends on Kind: Read fills Read, Write sends Write, Transfer does both,
// TransferInPlace uses Read as both source and destination, DelayNs waits.
type Operation struct {
	Kind  OpKind
	Read  []byte
	Write []byte
	Ns    uint32
}

func ReadOp(buf []byte) Operation  { return Operation{Kind: OpRead, Read: buf} }
func WriteOp(buf []byte) Operation { return Operation{Kind: OpWrite, Write: buf} }
func TransferOp(read, write []byte) Operation {
	return Operation{Kind: OpTransfer, Read: read, Write: write}
}
func TransferInPlaceOp(buf []byte) Operation {
	return Operation{Kind: OpTransferInPlace, Read: buf}
}
func DelayNsOp(ns uint32) Operation { return Operation{Kind: OpDelayNs, Ns: ns} }

// Device runs transactions with chip select asserted for the whole list.
type Device interface {
	Transaction(ops []Operation) error
}
