package benchmark

import (
	"github.com/klauspost/compress/zstd"
)

func init() {
	registerEncoder("klauspost-zstd", func(data []byte) []byte {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			panic(err)
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil)
	})
	registerDecoder("klauspost-zstd", func(data []byte) ([]byte, error) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	})
}
