// Package i2c holds the v0 I2C interfaces with seven-bit addressing.
package i2c

import "iter"

// SevenBitAddress is a bus address in the range 0x00..0x7f.
type SevenBitAddress = uint8

type Read interface {
	Read(addr SevenBitAddress, buf []byte) error
}

type Write interface {
	Write(addr SevenBitAddress, buf []byte) error
}

// WriteIter writes the bytes produced by an iterator in one frame.
type WriteIter interface {
	WriteIter(addr SevenBitAddress, bytes iter.Seq[byte]) error
}

// WriteRead writes then reads with a repeated start in between.
type WriteRead interface {
	WriteRead(addr SevenBitAddress, w, r []byte) error
}

type WriteIterRead interface {
	WriteIterRead(addr SevenBitAddress, w iter.Seq[byte], r []byte) error
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

// Operation is one step of a Transactional exchange.
type Operation struct {
	Kind OpKind
	Buf  []byte
}

func ReadOp(buf []byte) Operation  { return Operation{Kind: OpRead, Buf: buf} }
func WriteOp(buf []byte) Operation { return Operation{Kind: OpWrite, Buf: buf} }

// Transactional executes a list of operations against one address without
// releasing the bus in between.
type Transactional interface {
	Exec(addr SevenBitAddress, ops []Operation) error
}

// TransactionalIter is Transactional fed by an iterator.
type TransactionalIter interface {
	ExecIter(addr SevenBitAddress, ops iter.Seq[Operation]) error
}
