package benchmark

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

func init() {
	registerEncoder("klauspost-flate", func(data []byte) []byte {
		var buf bytes.Buffer
		w, err := flate.NewWriter(&buf, flate.BestCompression)
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
	registerDecoder("klauspost-flate", func(data []byte) ([]byte, error) {
		r := flate.NewReader(bytes.NewReader(data))
		defer r.Close()
		return io.ReadAll(r)
	})
}
