package benchmark

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	registerEncoder("xz", func(data []byte) []byte {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write(data); err != nil {
			panic(err)
		}
		if err := w.Close(); err != nil {
			panic(err)
		}
		return buf.Bytes()
	})
	registerDecoder("xz", func(data []byte) ([]byte, error) {
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return io.ReadAll(r)
	})
}
