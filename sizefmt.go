package main

import (
	"strconv"
	"strings"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with binary magnitudes, capped at TB.
func FormatSize(bytes uint64) string {
	value := float64(bytes)
	order := 0
	for value >= 1024 && order < len(sizeUnits)-1 {
		value /= 1024
		order++
	}
	str := strconv.FormatFloat(value, 'f', 2, 64)
	str = strings.TrimRight(str, "0")
	str = strings.TrimSuffix(str, ".")
	return str + " " + sizeUnits[order]
}

func FormatSignedSize(bytes int64) string {
	if bytes < 0 {
		return "-" + FormatSize(uint64(-bytes))
	}
	return FormatSize(uint64(bytes))
}
