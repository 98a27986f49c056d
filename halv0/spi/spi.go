// Package spi holds the v0 SPI interfaces: blocking byte-slice primitives, a
// non-blocking word-at-a-time full-duplex interface and a batched transaction.
package spi

import "iter"

// Write sends words, discarding whatever is clocked in.
type Write interface {
	Write(words []byte) error
}

// Transfer sends words and overwrites them with the received bytes. The
// returned slice aliases words.
type Transfer interface {
	Transfer(words []byte) ([]byte, error)
}

// WriteIter sends the words produced by an iterator.
type WriteIter interface {
	WriteIter(words iter.Seq[byte]) error
}

// FullDuplex is the non-blocking word interface. Both methods may return
// nb.ErrWouldBlock.
type FullDuplex interface {
	Read() (byte, error)
	Send(word byte) error
}

// OpKind tags an Operation.
type OpKind uint8

const (
	OpWrite    OpKind = iota // send Buf, ignore input
	OpTransfer               // send Buf, replace it with input
)

func (k OpKind) String() string {
	switch k {
	case OpWrite:
		return "write"
	case OpTransfer:
		return "transfer"
	}
	return "unknown"
}

// Operation is one step of a Transactional exchange.
type Operation struct {
	Kind OpKind
	Buf  []byte
}

func WriteOp(buf []byte) Operation    { return Operation{Kind: OpWrite, Buf: buf} }
func TransferOp(buf []byte) Operation { return Operation{Kind: OpTransfer, Buf: buf} }

// Transactional executes a list of operations as one exchange.
type Transactional interface {
	Exec(ops []Operation) error
}
