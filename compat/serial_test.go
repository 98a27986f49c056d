package compat

import (
	"bytes"
	"errors"
	"testing"

	"halcompat/errcode"
	"halcompat/halv0/nb"
	"halcompat/halv1/serialio"
)

func TestForwardSerialBlockingWrite(t *testing.T) {
	w := &bwriter{}
	a := NewForwardSerial(w)
	n, err := a.Write([]byte("hello"))
	if err != nil || n != 5 || string(w.data) != "hello" {
		t.Fatalf("Write: n=%d err=%v data=%q", n, err, w.data)
	}
	if n, err := a.Write(nil); n != 0 || err != nil {
		t.Fatalf("empty Write: n=%d err=%v", n, err)
	}
	if err := a.Flush(); err != nil || w.flushes != 1 {
		t.Fatalf("Flush: %v", err)
	}

	w.err = errBoom
	_, err = a.Write([]byte{1})
	if serialio.KindOf(err) != serialio.ErrorOther || !errors.Is(err, errBoom) {
		t.Fatalf("want other-kind wrapper, got %#v", err)
	}
}

func TestForwardSerialNonBlocking(t *testing.T) {
	s := &nbSerial{}
	a := NewForwardSerialNB(s)
	if err := serialio.WriteAll(a, []byte{1, 2, 3}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if !bytes.Equal(s.out, []byte{1, 2, 3}) {
		t.Fatalf("out: got %v", s.out)
	}
	if err := a.Flush(); err != nil || s.flushes != 1 {
		t.Fatalf("Flush: err=%v flushes=%d", err, s.flushes)
	}
}

func TestForwardSerialReader(t *testing.T) {
	s := &rxSerial{in: []byte{1, 2, 3}}
	a := NewForwardSerialReader(s)
	buf := make([]byte, 2)
	n, err := a.Read(buf)
	if err != nil || n != 2 || !bytes.Equal(buf, []byte{1, 2}) {
		t.Fatalf("Read: n=%d err=%v buf=%v", n, err, buf)
	}
	n, err = a.Read(buf)
	if err != nil || n != 1 || buf[0] != 3 {
		t.Fatalf("drain stops at would-block: n=%d err=%v", n, err)
	}
	if n, err := a.Read(nil); n != 0 || err != nil {
		t.Fatalf("empty Read: n=%d err=%v", n, err)
	}

	s.in, s.err = []byte{7}, errBoom
	n, err = a.Read(make([]byte, 4))
	if n != 1 || !errors.Is(err, errBoom) {
		t.Fatalf("partial read then error: n=%d err=%v", n, err)
	}
}

func TestReverseSerialWriteAll(t *testing.T) {
	s := &stream1{limit: 2}
	a := NewReverseSerial(s)
	if err := a.BWriteAll([]byte("abcde")); err != nil {
		t.Fatalf("BWriteAll: %v", err)
	}
	if string(s.data) != "abcde" {
		t.Fatalf("data: got %q", s.data)
	}
	if err := a.BFlush(); err != nil || s.flushes != 1 {
		t.Fatalf("BFlush: %v", err)
	}

	s.limit = 0
	if err := a.BWriteAll([]byte{1}); errcode.Of(err) != errcode.WriteZero || serialio.KindOf(err) != serialio.ErrorWriteZero {
		t.Fatalf("zero progress: want write_zero, got %v", err)
	}
	if err := a.Write(1); !nb.IsWouldBlock(err) {
		t.Fatalf("Write with no room: want would_block, got %v", err)
	}
	s.limit = 1
	if err := a.Write(9); err != nil || s.data[len(s.data)-1] != 9 {
		t.Fatalf("Write: %v", err)
	}
}

func TestReverseSerialReader(t *testing.T) {
	s := &stream1{}
	a := NewReverseSerialReader(s)
	if _, err := a.Read(); !nb.IsWouldBlock(err) {
		t.Fatalf("not ready: want would_block, got %v", err)
	}
	s.in = []byte{0x55}
	w, err := a.Read()
	if err != nil || w != 0x55 {
		t.Fatalf("Read: want 0x55, got %#x (%v)", w, err)
	}
}
