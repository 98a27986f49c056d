package compat

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"halcompat/errcode"
	i2c0 "halcompat/halv0/i2c"
	i2c1 "halcompat/halv1/i2c"
)

func TestForwardI2CCallThrough(t *testing.T) {
	b := &fakeI2C0{fill: 0x10}
	a := NewForwardI2C(b)
	r := make([]byte, 2)
	if err := a.WriteRead(0x40, []byte{0xAA}, r); err != nil {
		t.Fatalf("WriteRead: %v", err)
	}
	if !bytes.Equal(r, []byte{0x10, 0x11}) {
		t.Fatalf("read: got %v", r)
	}
	if err := a.Write(0x40, []byte{1}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(b.calls) != 2 || b.calls[0].op != "write_read" || b.calls[1].op != "write" {
		t.Fatalf("calls: %+v", b.calls)
	}

	b.err = errBoom
	err := a.Read(0x40, r)
	if i2c1.KindOf(err) != i2c1.ErrorOther || !errors.Is(err, errBoom) {
		t.Fatalf("want other-kind wrapper, got %#v", err)
	}
}

func TestForwardI2CTransactionOneFrame(t *testing.T) {
	b := &fakeI2C0{fill: 0x20}
	a := NewForwardI2C(b)
	r1, r2 := make([]byte, 1), make([]byte, 2)
	ops := []i2c1.Operation{
		i2c1.WriteOp([]byte{1}),
		i2c1.WriteOp([]byte{2, 3}),
		i2c1.ReadOp(r1),
		i2c1.ReadOp(r2),
	}
	if err := a.Transaction(0x33, ops); err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	if len(b.calls) != 1 {
		t.Fatalf("want one write_read, got %+v", b.calls)
	}
	c := b.calls[0]
	if c.op != "write_read" || !bytes.Equal(c.w, []byte{1, 2, 3}) || c.rlen != 3 {
		t.Fatalf("call: %+v", c)
	}
	if !bytes.Equal(r1, []byte{0x20}) || !bytes.Equal(r2, []byte{0x21, 0x22}) {
		t.Fatalf("readback split: r1=%v r2=%v", r1, r2)
	}

	b.calls = nil
	if err := a.Transaction(0x33, []i2c1.Operation{i2c1.WriteOp([]byte{4}), i2c1.WriteOp([]byte{5})}); err != nil {
		t.Fatalf("write run: %v", err)
	}
	if len(b.calls) != 1 || b.calls[0].op != "write" || !bytes.Equal(b.calls[0].w, []byte{4, 5}) {
		t.Fatalf("write run should be one write, got %+v", b.calls)
	}
}

func TestForwardI2CTransactionRejectsSeveralFrames(t *testing.T) {
	b := &fakeI2C0{fill: 0x20}
	a := NewForwardI2C(b)
	r1, r2 := make([]byte, 2), make([]byte, 1)
	ops := []i2c1.Operation{
		i2c1.WriteOp([]byte{1}),
		i2c1.ReadOp(r1),
		i2c1.WriteOp([]byte{2}),
		i2c1.ReadOp(r2),
	}
	err := a.Transaction(0x33, ops)
	if errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("want unsupported, got %v", err)
	}
	if len(b.calls) != 0 {
		t.Fatalf("rejected transaction reached the bus: %+v", b.calls)
	}
	if !bytes.Equal(r1, []byte{0, 0}) || r2[0] != 0 {
		t.Fatalf("read buffers touched: r1=%v r2=%v", r1, r2)
	}

	tb := &txI2C0{}
	if err := NewForwardTransactionalI2C(tb).Transaction(0x33, ops); err != nil {
		t.Fatalf("transactional bus: %v", err)
	}
	if len(tb.execs) != 1 || len(tb.execs[0]) != 4 {
		t.Fatalf("want one Exec of 4 ops, got %+v", tb.execs)
	}
}

func TestForwardI2CTransactionEmptyWriteIsDropped(t *testing.T) {
	for name, empty := range map[string][]byte{"nil": nil, "empty": {}} {
		b := &fakeI2C0{fill: 1}
		r := make([]byte, 2)
		ops := []i2c1.Operation{i2c1.WriteOp(empty), i2c1.ReadOp(r)}
		if err := NewForwardI2C(b).Transaction(0x10, ops); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(b.calls) != 1 || b.calls[0].op != "read" || b.calls[0].rlen != 2 {
			t.Fatalf("%s write: want one read, got %+v", name, b.calls)
		}
	}
}

func TestForwardI2CTransactionLoneRead(t *testing.T) {
	b := &fakeI2C0{fill: 1}
	a := NewForwardI2C(b)
	r := make([]byte, 3)
	if err := a.Transaction(0x10, []i2c1.Operation{i2c1.ReadOp(r)}); err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	if len(b.calls) != 1 || b.calls[0].op != "read" || !bytes.Equal(r, []byte{1, 2, 3}) {
		t.Fatalf("calls=%+v r=%v", b.calls, r)
	}
	b.calls = nil
	if err := a.Transaction(0x10, nil); err != nil || len(b.calls) != 0 {
		t.Fatalf("empty transaction: err=%v calls=%v", err, b.calls)
	}
}

func TestForwardI2CUsesInnerTransactional(t *testing.T) {
	b := &txI2C0{}
	a := NewForwardI2C(b)
	ops := []i2c1.Operation{i2c1.WriteOp([]byte{1}), i2c1.ReadOp(make([]byte, 1))}
	if err := a.Transaction(0x50, ops); err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	if len(b.calls) != 1 || b.calls[0].op != "exec" {
		t.Fatalf("want one Exec, got %+v", b.calls)
	}
	got := b.execs[0]
	if len(got) != 2 || got[0].Kind != i2c0.OpWrite || got[1].Kind != i2c0.OpRead {
		t.Fatalf("ops not mapped 1:1: %+v", got)
	}
}

func TestReverseI2C(t *testing.T) {
	b := &fakeI2C1{}
	a := NewReverseI2C(b)
	if err := a.WriteIter(0x20, slices.Values([]byte{1, 2, 3})); err != nil {
		t.Fatalf("WriteIter: %v", err)
	}
	if len(b.calls) != 1 || !bytes.Equal(b.calls[0].w, []byte{1, 2, 3}) {
		t.Fatalf("WriteIter should be one write, got %+v", b.calls)
	}
	if err := a.WriteIterRead(0x20, slices.Values([]byte{9}), make([]byte, 4)); err != nil {
		t.Fatalf("WriteIterRead: %v", err)
	}
	if c := b.calls[1]; c.op != "write_read" || c.rlen != 4 {
		t.Fatalf("WriteIterRead: %+v", c)
	}

	ops := []i2c0.Operation{i2c0.WriteOp([]byte{1}), i2c0.ReadOp(make([]byte, 2))}
	if err := a.Exec(0x21, ops); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if len(b.txs) != 1 || len(b.txs[0]) != 2 || b.txs[0][1].Kind != i2c1.OpRead {
		t.Fatalf("Exec: %+v", b.txs)
	}
	if err := a.ExecIter(0x21, slices.Values(ops)); err != nil || len(b.txs) != 2 {
		t.Fatalf("ExecIter: err=%v txs=%d", err, len(b.txs))
	}

	b.err = errBoom
	if err := a.Read(0x21, nil); err != errBoom {
		t.Fatalf("Read: want errBoom verbatim, got %#v", err)
	}
}
