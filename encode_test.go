package main

import (
	"archive/zip"
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"testing"
)

const benchSize = 1024 * 1024

type benchdata struct {
	name string
	data []byte
}

func makedata(b *testing.B) []benchdata {
	random := make([]byte, benchSize)
	if _, err := rand.Read(random); err != nil {
		b.Fatal("rand", err)
	}
	return []benchdata{
		{"Zero", make([]byte, benchSize)},
		{"Random", random},
		{"Text", []byte(lorem_text(benchSize))},
	}
}

// bench_writer returns a zip writer set up for method, skipping unsupported ones.
func bench_writer(b *testing.B, method string) (*zip.Writer, *bytes.Buffer, uint16) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	id, err := SetupCompressor(zw, method, -1)
	if errors.Is(err, errors.ErrUnsupported) {
		b.Skip(method, err)
	}
	if err != nil {
		b.Fatal("setup", method, err)
	}
	return zw, buf, id
}

func bench_write(b *testing.B, zw *zip.Writer, data []byte, idx int, method uint16) {
	wr, err := zw.CreateHeader(&zip.FileHeader{Name: fmt.Sprintf("name-%d.bin", idx), Method: method})
	if err != nil {
		b.Error("create", err)
	}
	if n, err := wr.Write(data); err != nil || n != len(data) {
		b.Error("write", n, err)
	}
	if err = zw.Flush(); err != nil {
		b.Error("flush", err)
	}
}

func bench_read(b *testing.B, zr *zip.Reader, idx int) int {
	fi, err := zr.Open(fmt.Sprintf("name-%d.bin", idx))
	if err != nil {
		b.Error("open", err)
		return 0
	}
	defer fi.Close()
	res, err := io.ReadAll(fi)
	if err != nil {
		b.Error("readall", err)
	}
	return len(res)
}

func bench_encode(b *testing.B, method string) {
	for _, bm := range makedata(b) {
		zw, _, id := bench_writer(b, method)
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(bm.data)))
			i := 0
			for b.Loop() {
				bench_write(b, zw, bm.data, i, id)
				i++
			}
		})
		zw.Close()
	}
}

func bench_decode(b *testing.B, method string) {
	bench := makedata(b)
	zw, buf, id := bench_writer(b, method)
	for idx, bm := range bench {
		bench_write(b, zw, bm.data, idx, id)
	}
	if err := zw.Close(); err != nil {
		b.Fatal("close", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		b.Fatal("NewReader", err)
	}
	for idx, bm := range bench {
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(bm.data)))
			for b.Loop() {
				if n := bench_read(b, zr, idx); n != len(bm.data) {
					b.Error("short read", n)
				}
			}
		})
	}
}

func Benchmark_StoreEncode(b *testing.B)   { bench_encode(b, "store") }
func Benchmark_StoreDecode(b *testing.B)   { bench_decode(b, "store") }
func Benchmark_DeflateEncode(b *testing.B) { bench_encode(b, "deflate") }
func Benchmark_DeflateDecode(b *testing.B) { bench_decode(b, "deflate") }
func Benchmark_BrotliEncode(b *testing.B)  { bench_encode(b, "brotli") }
func Benchmark_BrotliDecode(b *testing.B)  { bench_decode(b, "brotli") }
func Benchmark_ZstdEncode(b *testing.B)    { bench_encode(b, "zstd") }
func Benchmark_ZstdDecode(b *testing.B)    { bench_decode(b, "zstd") }

func Benchmark_ZopfliEncode(b *testing.B) {
	b.Skip() // too slow
	bench_encode(b, "zopfli")
}
