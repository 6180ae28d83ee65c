package main

import (
	"testing"
)

func TestFormatSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input  uint64
		expect string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1024*1024 - 1, "1024 KB"},
		{1024 * 1024, "1 MB"},
		{5 * 1024 * 1024 * 1024, "5 GB"},
		{1 << 40, "1 TB"},
		{1 << 50, "1024 TB"},
		{1234567, "1.18 MB"},
	}
	for _, tt := range tests {
		if res := FormatSize(tt.input); res != tt.expect {
			t.Error("FormatSize", tt.input, res, tt.expect)
		}
	}
}

func TestFormatSignedSize(t *testing.T) {
	t.Parallel()
	if res := FormatSignedSize(1536); res != "1.5 KB" {
		t.Error("positive", res)
	}
	if res := FormatSignedSize(-2048); res != "-2 KB" {
		t.Error("negative", res)
	}
	if res := FormatSignedSize(0); res != "0 B" {
		t.Error("zero", res)
	}
}
