package main

import (
	"archive/zip"
	"compress/flate"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// method ids for non-standard compressors
const (
	Zstd   uint16 = 93
	Brotli uint16 = 121
)

type MyZipWriter interface {
	RegisterCompressor(method uint16, comp zip.Compressor)
}

// Codec ties a --method name to a zip method id.
// A nil Compressor keeps the archive/zip default for Method.
type Codec struct {
	Name         string
	Method       uint16
	Compressor   func(level int) zip.Compressor
	Decompressor zip.Decompressor
	Unsupported  bool
}

var codecs = map[string]Codec{}

func registerCodec(c Codec) {
	codecs[c.Name] = c
	if c.Decompressor != nil {
		zip.RegisterDecompressor(c.Method, c.Decompressor)
	}
}

func CodecNames() []string {
	res := make([]string, 0, len(codecs))
	for k := range codecs {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// SetupCompressor registers the compressor for the named method and returns its id.
// level -1 means the library default.
func SetupCompressor(zipfile MyZipWriter, method string, level int) (uint16, error) {
	c, ok := codecs[method]
	if !ok {
		return 0, fmt.Errorf("unknown compression method: %s", method)
	}
	if c.Unsupported {
		return 0, fmt.Errorf("%s: %w", method, errors.ErrUnsupported)
	}
	if c.Compressor != nil {
		slog.Debug("register compressor", "method", method, "id", c.Method, "level", level)
		zipfile.RegisterCompressor(c.Method, c.Compressor(level))
	}
	return c.Method, nil
}

func deflate_compressor(level int) zip.Compressor {
	if level < flate.HuffmanOnly {
		level = flate.DefaultCompression
	}
	level = min(level, flate.BestCompression)
	return func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	}
}

func init() {
	registerCodec(Codec{Name: "store", Method: zip.Store})
	registerCodec(Codec{Name: "deflate", Method: zip.Deflate, Compressor: deflate_compressor})
}
