package benchmark

import "github.com/johndoe31415/pylzstring"

func init() {
	registerEncoder("lzstring", lzstring.CompressToBytes)
	registerDecoder("lzstring", lzstring.DecompressFromBytes)
}
