package compat

import (
	"iter"
	"slices"

	"halcompat/errcode"
	i2c0 "halcompat/halv0/i2c"
	i2c1 "halcompat/halv1/i2c"
	"halcompat/internal/splice"
)

// ---- forward ----

// ForwardI2C presents a v0 bus as a v1 I2C.
//
// When the inner value has no v0 Transactional, Transaction only accepts
// lists that fit one frame: a write run, a read run, or a write run followed
// by a read run, lowered to Write, Read or WriteRead. Longer lists fail with
// errcode.Unsupported before touching the bus; use NewForwardTransactionalI2C
// for those.
type ForwardI2C[B I2CV0] struct{ container[B] }

func NewForwardI2C[B I2CV0](b B) *ForwardI2C[B] {
	return &ForwardI2C[B]{container[B]{inner: b}}
}

// NewForwardTransactionalI2C requires a v0 Transactional bus, so every v1
// transaction maps 1:1 onto one Exec.
func NewForwardTransactionalI2C[B TransactionalI2CV0](b B) *ForwardI2C[B] {
	return NewForwardI2C(b)
}

func (a *ForwardI2C[B]) Read(addr i2c1.SevenBitAddress, buf []byte) error {
	return i2cErr(a.inner.Read(addr, buf))
}

func (a *ForwardI2C[B]) Write(addr i2c1.SevenBitAddress, buf []byte) error {
	return i2cErr(a.inner.Write(addr, buf))
}

func (a *ForwardI2C[B]) WriteRead(addr i2c1.SevenBitAddress, w, r []byte) error {
	return i2cErr(a.inner.WriteRead(addr, w, r))
}

func (a *ForwardI2C[B]) Transaction(addr i2c1.SevenBitAddress, ops []i2c1.Operation) error {
	if t, ok := any(a.inner).(i2c0.Transactional); ok {
		v0 := make([]i2c0.Operation, 0, len(ops))
		for _, op := range ops {
			switch op.Kind {
			case i2c1.OpRead:
				v0 = append(v0, i2c0.ReadOp(op.Buf))
			case i2c1.OpWrite:
				v0 = append(v0, i2c0.WriteOp(op.Buf))
			default:
				return badI2COp("forward.i2c", op.Kind)
			}
		}
		return i2cErr(t.Exec(addr, v0))
	}

	segs, err := splice.I2C("forward.i2c", ops)
	if err != nil {
		return err
	}
	return splice.Frame("forward.i2c", segs, func(w, r []byte) error {
		switch {
		case r == nil:
			return i2cErr(a.inner.Write(addr, w))
		case len(w) == 0:
			return i2cErr(a.inner.Read(addr, r))
		}
		return i2cErr(a.inner.WriteRead(addr, w, r))
	})
}

func badI2COp(op string, k i2c1.OpKind) error {
	return &errcode.E{C: errcode.InvalidParams, Op: op, Msg: "unknown operation " + k.String()}
}

// ---- reverse ----

// ReverseI2C presents a v1 I2C through every v0 I2C interface.
type ReverseI2C[B i2c1.I2C] struct{ container[B] }

func NewReverseI2C[B i2c1.I2C](b B) *ReverseI2C[B] {
	return &ReverseI2C[B]{container[B]{inner: b}}
}

func (a *ReverseI2C[B]) Read(addr i2c0.SevenBitAddress, buf []byte) error {
	return a.inner.Read(addr, buf)
}

func (a *ReverseI2C[B]) Write(addr i2c0.SevenBitAddress, buf []byte) error {
	return a.inner.Write(addr, buf)
}

func (a *ReverseI2C[B]) WriteRead(addr i2c0.SevenBitAddress, w, r []byte) error {
	return a.inner.WriteRead(addr, w, r)
}

// WriteIter collects bytes into one buffer so the write stays a single frame.
func (a *ReverseI2C[B]) WriteIter(addr i2c0.SevenBitAddress, bytes iter.Seq[byte]) error {
	return a.inner.Write(addr, slices.Collect(bytes))
}

func (a *ReverseI2C[B]) WriteIterRead(addr i2c0.SevenBitAddress, w iter.Seq[byte], r []byte) error {
	return a.inner.WriteRead(addr, slices.Collect(w), r)
}

func (a *ReverseI2C[B]) Exec(addr i2c0.SevenBitAddress, ops []i2c0.Operation) error {
	return a.ExecIter(addr, slices.Values(ops))
}

func (a *ReverseI2C[B]) ExecIter(addr i2c0.SevenBitAddress, ops iter.Seq[i2c0.Operation]) error {
	var v1 []i2c1.Operation
	for op := range ops {
		switch op.Kind {
		case i2c0.OpRead:
			v1 = append(v1, i2c1.ReadOp(op.Buf))
		case i2c0.OpWrite:
			v1 = append(v1, i2c1.WriteOp(op.Buf))
		default:
			return &errcode.E{C: errcode.InvalidParams, Op: "reverse.i2c", Msg: "unknown operation " + op.Kind.String()}
		}
	}
	return a.inner.Transaction(addr, v1)
}
