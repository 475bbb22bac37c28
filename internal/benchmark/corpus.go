package benchmark

import (
	"strings"

	"github.com/johndoe31415/pylzstring/internal/testutil"
)

// corpusEntry is one named buffer exercised against every registered codec.
type corpusEntry struct {
	name string
	data []byte
}

// corpus returns a small, varied set of buffers standing in for the binary
// fixture files dsnet-compress's testdata/repeats.go (and siblings)
// generate but whose output was not retrieved into the pack: repetitive
// text, an all-zero run, pseudo-random bytes, and the empty buffer.
func corpus() []corpusEntry {
	rnd := testutil.NewRand(7)
	return []corpusEntry{
		{"empty", nil},
		{"zeros", make([]byte, 4096)},
		{"repeated-text", []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200))},
		{"pseudo-random", rnd.Bytes(4096)},
	}
}
