package main

import (
	"archive/zip"
	"io"

	"github.com/andybalholm/brotli"
)

// level: 0 to 11
func brotli_compressor(level int) zip.Compressor {
	return func(out io.Writer) (io.WriteCloser, error) {
		if level < 0 {
			return brotli.NewWriter(out), nil
		}
		return brotli.NewWriterLevel(out, min(level, brotli.BestCompression)), nil
	}
}

func init() {
	registerCodec(Codec{
		Name:       "brotli",
		Method:     Brotli,
		Compressor: brotli_compressor,
		Decompressor: func(input io.Reader) io.ReadCloser {
			return io.NopCloser(brotli.NewReader(input))
		},
	})
}
