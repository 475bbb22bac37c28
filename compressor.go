package lzstring

import (
	"math/bits"

	"github.com/johndoe31415/pylzstring/internal/bitstream"
)

// Compressor runs the dictionary-construction algorithm over a byte
// sequence and produces a BitStream. Grounded on
// original_source/lzstr/LZString.py's LZStringCompressor, corrected for the
// dictionary-offset and trailing-flush bugs documented in DESIGN.md.
type Compressor struct {
	cdict         map[string]int
	notEmittedYet map[string]bool
	pattern       []byte
	dictsize      int
}

// NewCompressor returns a Compressor ready to compress a single buffer.
// Compressors are not reusable across calls to Compress.
func NewCompressor() *Compressor {
	return &Compressor{
		cdict:         make(map[string]int),
		notEmittedYet: make(map[string]bool),
		dictsize:      dictFirstIndex,
	}
}

// width returns the current token width: the bit length of dictsize-1.
func (c *Compressor) width() int {
	return bits.Len(uint(c.dictsize - 1))
}

// Compress runs the algorithm over data and returns the resulting
// BitStream. Each Compressor instance is single-use.
func (c *Compressor) Compress(data []byte) *bitstream.BitStream {
	bs := bitstream.New()

	for _, b := range data {
		s := string([]byte{b})
		if _, ok := c.cdict[s]; !ok {
			c.cdict[s] = len(c.cdict) + dictFirstIndex
			c.notEmittedYet[s] = true
		}

		combined := string(c.pattern) + s
		if _, ok := c.cdict[combined]; ok {
			c.pattern = append(c.pattern, b)
			continue
		}

		c.emit(bs, c.pattern)
		c.cdict[combined] = len(c.cdict) + dictFirstIndex
		c.pattern = []byte{b}
	}

	if len(c.pattern) > 0 {
		c.emit(bs, c.pattern)
	}

	w := c.width()
	bs.AppendValue(tokenEndOfStream, w)

	// The reference encoder always appends exactly one extra zero bit
	// after the EndOfStream token; see DESIGN.md point 3.
	bs.Append(0)

	return bs
}

// emit writes pattern to bs: a LiteralByte token if pattern is a
// single-byte entry that has not yet been materialised into the output, or
// a dictionary-reference token otherwise.
func (c *Compressor) emit(bs *bitstream.BitStream, pattern []byte) {
	key := string(pattern)
	w := c.width()

	if c.notEmittedYet[key] {
		delete(c.notEmittedYet, key)
		bs.AppendValue(tokenLiteralByte, w)
		bs.AppendValue(uint64(pattern[0]), 8)
		c.dictsize += 2
		return
	}

	bs.AppendValue(uint64(c.cdict[key]), w)
	c.dictsize++
}
