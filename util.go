package main

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
)

// sniff length used by http.DetectContentType
const sniffLen = 512

func ismatch(name string, patterns []string) bool {
	for _, pat := range patterns {
		if matched, _ := filepath.Match(pat, name); matched {
			slog.Debug("match", "name", name, "pattern", pat)
			return true
		}
	}
	return false
}

// ismatch_path matches patterns against the slash path and its base name.
func ismatch_path(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return ismatch(name, patterns) || ismatch(BaseName(name), patterns)
}

// ispat matches the name, or the content type detected from head, against patterns.
func ispat(name string, head []byte, patterns []string) bool {
	if ismatch_path(name, patterns) {
		return true
	}
	if len(head) == 0 {
		return false
	}
	content_type := http.DetectContentType(head)
	sname := strings.SplitN(content_type, ";", 2)
	return ismatch(strings.TrimSpace(sname[0]), patterns)
}
