// Package splice flattens an ordered list of partial reads and writes into one
// contiguous staging buffer, runs a single exchange over it, and scatters the
// result back into the original read buffers.
package splice

import "halcompat/errcode"

// Segment is one operation of a batched exchange. Out is sent (zero padded),
// In receives the matching slice of the exchanged buffer. Either may be nil;
// for in-place transfers both alias the same buffer.
type Segment struct {
	Out []byte
	In  []byte
}

// Len is the number of bytes the segment occupies on the wire.
func (s Segment) Len() int { return max(len(s.Out), len(s.In)) }

// Reads reports whether the segment expects readback.
func (s Segment) Reads() bool { return s.In != nil }

// Total is the staged length of segs.
func Total(segs []Segment) int {
	n := 0
	for _, s := range segs {
		n += s.Len()
	}
	return n
}

// Stage appends the outbound bytes of segs to dst in order. Read-only bytes
// and padding are zero.
func Stage(dst []byte, segs []Segment) []byte {
	for _, s := range segs {
		off := len(dst)
		dst = append(dst, make([]byte, s.Len())...)
		copy(dst[off:], s.Out)
	}
	return dst
}

// Scatter copies each reading segment's slice of staged into its In buffer.
// staged must be the buffer produced by Stage for the same segs.
func Scatter(staged []byte, segs []Segment) {
	off := 0
	for _, s := range segs {
		n := s.Len()
		if s.In != nil {
			copy(s.In, staged[off:off+n])
		}
		off += n
	}
}

// Exchange stages segs, hands the buffer to xfer once, and scatters the
// result. If xfer fails no In buffer is touched.
func Exchange(segs []Segment, xfer func(buf []byte) error) error {
	buf := Stage(make([]byte, 0, Total(segs)), segs)
	if err := xfer(buf); err != nil {
		return err
	}
	Scatter(buf, segs)
	return nil
}

// Dir is the direction of a run on a half-duplex bus.
type Dir uint8

const (
	DirWrite Dir = iota
	DirRead
)

// Run is a maximal sequence of adjacent operations sharing one direction.
type Run struct {
	Dir  Dir
	Segs []Segment
}

// Len is the byte length of the run.
func (r Run) Len() int { return Total(r.Segs) }

// Bytes returns the concatenated outbound bytes of a write run.
func (r Run) Bytes() []byte {
	if len(r.Segs) == 1 {
		return r.Segs[0].Out
	}
	return Stage(make([]byte, 0, r.Len()), r.Segs)
}

// Gather runs read into a single buffer and scatters it into the run's
// segments. A run with one segment reads straight into its buffer.
func (r Run) Gather(read func(buf []byte) error) error {
	if len(r.Segs) == 1 {
		return read(r.Segs[0].In)
	}
	return Exchange(r.Segs, read)
}

// Runs groups segs into maximal same-direction runs. A segment reads when
// In is non-nil and writes otherwise.
func Runs(segs []Segment) []Run {
	var out []Run
	for _, s := range segs {
		d := DirWrite
		if s.Reads() {
			d = DirRead
		}
		if n := len(out); n > 0 && out[n-1].Dir == d {
			out[n-1].Segs = append(out[n-1].Segs, s)
			continue
		}
		out = append(out, Run{Dir: d, Segs: []Segment{s}})
	}
	return out
}

// WriteSeg sends buf and discards the echo.
func WriteSeg(buf []byte) Segment { return Segment{Out: buf} }

// ReadSeg sends zeros and reads into buf. A nil buf still counts as a read.
func ReadSeg(buf []byte) Segment {
	if buf == nil {
		buf = []byte{}
	}
	return Segment{In: buf}
}

// InPlaceSeg sends buf and overwrites it with the input.
func InPlaceSeg(buf []byte) Segment { return Segment{Out: buf, In: ReadSeg(buf).In} }

// Frame lowers segs onto a half-duplex bus primitive that runs one frame per
// call: tx gets a write run and the read run after it, with a nil r for a
// lone write and a nil w for a lone read. Zero-length segments are dropped;
// if nothing else is left, tx sees one empty write. An empty list makes no
// call. Anything that needs more than one frame is Unsupported and reaches
// no bus.
func Frame(op string, segs []Segment, tx func(w, r []byte) error) error {
	if len(segs) == 0 {
		return nil
	}
	kept := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if s.Len() > 0 {
			kept = append(kept, s)
		}
	}
	runs := Runs(kept)
	switch {
	case len(runs) == 0:
		return tx(nil, nil)
	case len(runs) > 2, len(runs) == 2 && runs[0].Dir == DirRead:
		return errcode.Unsupportedf(op, "operations need more than one write-then-read frame")
	}
	var w []byte
	if runs[0].Dir == DirWrite {
		w = runs[0].Bytes()
		if len(runs) == 1 {
			return tx(w, nil)
		}
		runs = runs[1:]
	}
	return runs[0].Gather(func(buf []byte) error { return tx(w, buf) })
}
