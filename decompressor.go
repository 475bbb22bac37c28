package lzstring

import (
	"math/bits"

	"github.com/johndoe31415/pylzstring/internal/bitstream"
)

// Decompressor replays the dictionary described by a compressed BitStream
// to reconstruct the original byte sequence. Grounded on
// original_source/lzstr/LZString.py's LZStringDecompressor, which round-
// trips correctly against the reference implementation as-is.
type Decompressor struct {
	cdict    map[int][]byte
	lastData []byte
	hasLast  bool
}

// NewDecompressor returns a Decompressor ready to consume a single
// BitStream. Decompressors are not reusable across calls to Decompress.
func NewDecompressor() *Decompressor {
	return &Decompressor{cdict: make(map[int][]byte)}
}

// width returns the current token width: the bit length of len(cdict),
// counting the three reserved indices that are never dereferenced. This
// must be computed from len(cdict)+dictFirstIndex, not len(cdict) alone —
// see DESIGN.md point 1.
func (d *Decompressor) width() int {
	return bits.Len(uint(len(d.cdict) + dictFirstIndex))
}

// Decompress consumes bs from position 0 and returns the decompressed byte
// sequence, or a *DictionaryInconsistencyError if the stream is corrupt.
func (d *Decompressor) Decompress(bs *bitstream.BitStream) ([]byte, error) {
	bs.Seek(0)

	var out []byte
	for {
		w := d.width()
		t := int(bs.ReadBits(w))

		var data []byte
		switch {
		case t == tokenLiteralByte:
			data = bs.ReadChars(1)
			d.cdict[len(d.cdict)+dictFirstIndex] = data
		case t == tokenLiteralWord:
			data = bs.ReadChars(2)
			d.cdict[len(d.cdict)+dictFirstIndex] = data
		case t == tokenEndOfStream:
			return out, nil
		default:
			idx := t
			if existing, ok := d.cdict[idx]; ok {
				data = existing
			} else if d.hasLast && idx == len(d.cdict)+dictFirstIndex {
				data = append(append([]byte{}, d.lastData...), d.lastData[0])
			} else {
				return nil, &DictionaryInconsistencyError{Token: t, DictSize: len(d.cdict) + dictFirstIndex}
			}
		}

		out = append(out, data...)

		if d.hasLast {
			pair := append(append([]byte{}, d.lastData...), data[0])
			d.cdict[len(d.cdict)+dictFirstIndex] = pair
		}
		d.lastData = data
		d.hasLast = true

		// Truncated input: if the read cursor has run past the stream's
		// materialised length with no EndOfStream seen, treat it as an
		// implicit end rather than spinning on fabricated zero bits.
		if bs.Cursor() >= bs.Len() {
			return out, nil
		}
	}
}
