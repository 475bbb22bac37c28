// Package lzstring implements a compatible reimplementation of the
// "LZString" family of string-oriented compressors and decompressors: an
// LZ78/LZW-derived dictionary codec whose compressed stream is a
// self-delimited sequence of variable-width bit tokens, interchangeable
// across a raw byte buffer, a padded base-64 text, and a URL-safe base-64
// variant.
//
// The package is bit-for-bit interoperable with the reference "lz-string"
// JavaScript library's compress/decompress family of functions.
package lzstring

import "github.com/johndoe31415/pylzstring/internal/bitstream"

// Error is the wrapper type for precondition violations raised directly by
// this package, as opposed to DictionaryInconsistencyError, which reports a
// corrupt compressed stream.
type Error string

func (e Error) Error() string { return "lzstring: " + string(e) }

// CompressToBytes compresses data and returns the raw compressed byte
// buffer. The returned buffer's semantic bit length may be less than
// 8*len(result); trailing bits beyond the compressed stream's true length
// are implicit zero padding.
func CompressToBytes(data []byte) []byte {
	return NewCompressor().Compress(data).Bytes()
}

// CompressToBase64 compresses data and renders it as padded base-64 text.
func CompressToBase64(data []byte) string {
	return NewCompressor().Compress(data).ToBase64()
}

// CompressToEncodedURIComponent compresses data and renders it as unpadded,
// URL-safe base-64 text.
func CompressToEncodedURIComponent(data []byte) string {
	return NewCompressor().Compress(data).ToURLComponent()
}

// DecompressFromBytes decompresses a raw compressed byte buffer produced by
// CompressToBytes (or the reference implementation's equivalent).
func DecompressFromBytes(data []byte) ([]byte, error) {
	return NewDecompressor().Decompress(bitstream.FromBytes(data))
}

// DecompressFromBase64 decompresses padded base-64 text produced by
// CompressToBase64.
func DecompressFromBase64(text string) ([]byte, error) {
	return NewDecompressor().Decompress(bitstream.FromBase64(text))
}

// DecompressFromEncodedURIComponent decompresses unpadded, URL-safe base-64
// text produced by CompressToEncodedURIComponent.
func DecompressFromEncodedURIComponent(text string) ([]byte, error) {
	return NewDecompressor().Decompress(bitstream.FromURLComponent(text))
}
