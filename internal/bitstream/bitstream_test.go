package bitstream

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/johndoe31415/pylzstring/internal/testutil"
)

func TestBitPacking(t *testing.T) {
	rnd := testutil.NewRand(1)
	for w := 1; w <= 32; w++ {
		for trial := 0; trial < 50; trial++ {
			var v uint64
			if w < 64 {
				v = uint64(rnd.Int()) & ((1 << uint(w)) - 1)
			}
			bs := New()
			bs.AppendValue(v, w)
			bs.Seek(0)
			got := bs.ReadBits(w)
			if got != v {
				t.Errorf("width %d: got %d, want %d", w, got, v)
			}
		}
	}
}

func TestSequentialPacking(t *testing.T) {
	rnd := testutil.NewRand(2)
	type entry struct {
		v uint64
		w int
	}
	var entries []entry
	bs := New()
	for i := 0; i < 200; i++ {
		w := 1 + rnd.Intn(20)
		v := uint64(rnd.Int()) & ((1 << uint(w)) - 1)
		bs.AppendValue(v, w)
		entries = append(entries, entry{v, w})
	}
	bs.Seek(0)
	for i, e := range entries {
		got := bs.ReadBits(e.w)
		if got != e.v {
			t.Errorf("entry %d: got %d, want %d", i, got, e.v)
		}
	}
}

func TestAlphabetReversal(t *testing.T) {
	for _, a := range []*Alphabet{StdAlphabet, URIAlphabet} {
		for i := 0; i < 64; i++ {
			c := a.chars[i]
			v, ok := a.valueOf(c)
			if !ok {
				t.Fatalf("char %q at index %d not recognised by its own alphabet", c, i)
			}
			want := reverse6LUT[i]
			if v != want {
				t.Errorf("char %q at index %d: got value %d, want %d", c, i, v, want)
			}
		}
	}
}

func TestBitTextRoundTrip(t *testing.T) {
	text := "0010000010000010000100001100001001000000"
	bs := FromBitText(text)
	if got := bs.ToText(); got != text {
		t.Errorf("got %q, want %q", got, text)
	}
}

func TestFromBytesRoundTrip(t *testing.T) {
	rnd := testutil.NewRand(3)
	b := rnd.Bytes(97)
	bs := FromBytes(b)
	if got := bs.Bytes(); !cmp.Equal(got, b) {
		t.Errorf("Bytes() mismatch (-got +want):\n%s", cmp.Diff(got, b))
	}
	if bs.Len() != 8*len(b) {
		t.Errorf("Len() = %d, want %d", bs.Len(), 8*len(b))
	}
}

func TestReadPastEndFabricatesZeros(t *testing.T) {
	bs := FromBytes([]byte{0xff})
	bs.Seek(4)
	got := bs.ReadBits(8)
	// Low 4 bits of 0xff (1111) are the real bits; the top 4 are fabricated
	// zeros past Len().
	if got != 0x0f {
		t.Errorf("got %#x, want %#x", got, 0x0f)
	}
}

func TestSetBitExtendsAcrossMultipleBytes(t *testing.T) {
	bs := New()
	bs.SetBit(23, 1)
	if bs.Len() != 24 {
		t.Errorf("Len() = %d, want 24", bs.Len())
	}
	if len(bs.Bytes()) != 3 {
		t.Errorf("len(Bytes()) = %d, want 3", len(bs.Bytes()))
	}
	if bs.GetBit(23) != 1 {
		t.Errorf("GetBit(23) = 0, want 1")
	}
	for _, p := range []int{0, 1, 7, 8, 15, 16, 22} {
		if bs.GetBit(p) != 0 {
			t.Errorf("GetBit(%d) = 1, want 0", p)
		}
	}
}

func TestSetBitOutOfOrder(t *testing.T) {
	bs := New()
	bs.SetBit(5, 1)
	bs.SetBit(1, 1)
	bs.SetBit(0, 1)
	if bs.GetBit(0) != 1 || bs.GetBit(1) != 1 || bs.GetBit(5) != 1 {
		t.Errorf("out-of-order SetBit calls clobbered neighbouring bits: %s", bs.ToText())
	}
	for _, p := range []int{2, 3, 4, 6, 7} {
		if bs.GetBit(p) != 0 {
			t.Errorf("GetBit(%d) = 1, want 0", p)
		}
	}
}

func TestAlphabetTruncatesAtUnknownChar(t *testing.T) {
	bs := FromAlphabet("AB==", StdAlphabet)
	if bs.Len() != 12 {
		t.Errorf("Len() = %d, want 12 (parsing must stop at '=')", bs.Len())
	}
}

func TestBase64Padding(t *testing.T) {
	bs := New()
	bs.AppendValue(0, 1) // 1 bit -> 1 char of base64, padded to 4
	s := bs.ToBase64()
	if len(s)%4 != 0 {
		t.Errorf("ToBase64() length %d is not a multiple of 4: %q", len(s), s)
	}
	u := bs.ToURLComponent()
	if len(u) != 1 {
		t.Errorf("ToURLComponent() length %d, want 1 (no padding)", len(u))
	}
}

func TestAppendValuePreconditionViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for zero width")
		}
	}()
	New().AppendValue(0, 0)
}

func TestSetBitPreconditionViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range bit value")
		}
	}()
	New().SetBit(0, 2)
}
