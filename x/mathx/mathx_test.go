package mathx

import "testing"

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want uint32 }{
		{0, 1000, 0},
		{1, 1000, 1},
		{999, 1000, 1},
		{1000, 1000, 1},
		{1001, 1000, 2},
		{^uint32(0), 1000, 4294968},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := CeilDiv(c.a, c.b); got != c.want {
			t.Fatalf("CeilDiv(%d,%d): want %d, got %d", c.a, c.b, c.want, got)
		}
	}
}

func TestMaxOf(t *testing.T) {
	if MaxOf[uint8]() != 0xff || MaxOf[uint16]() != 0xffff || MaxOf[uint32]() != 0xffffffff {
		t.Fatal("MaxOf mismatch")
	}
}

func TestChunks(t *testing.T) {
	var got []uint8
	Chunks(600, func(v uint8) { got = append(got, v) })
	if len(got) != 3 || got[0] != 255 || got[1] != 255 || got[2] != 90 {
		t.Fatalf("unexpected chunks %v", got)
	}

	got = got[:0]
	Chunks(0, func(v uint8) { got = append(got, v) })
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("zero total: want one zero chunk, got %v", got)
	}

	var sum uint64
	calls := 0
	Chunks(^uint32(0), func(v uint32) { sum += uint64(v); calls++ })
	if calls != 1 || sum != uint64(^uint32(0)) {
		t.Fatalf("uint32 chunking: calls=%d sum=%d", calls, sum)
	}
}
