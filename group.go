package main

import (
	"strings"
)

// FolderGroup holds the files whose immediate parent is Folder. Root is "".
type FolderGroup struct {
	Folder  string
	Entries []ArchiveEntry
}

func is_separator(r rune) bool {
	return r == '/' || r == '\\'
}

// split_path splits on both slash and backslash.
func split_path(name string) []string {
	return strings.FieldsFunc(name, is_separator)
}

// ParentFolder returns the immediate parent joined with "/", or "" at root.
func ParentFolder(name string) string {
	parts := split_path(name)
	if len(parts) <= 1 {
		return ""
	}
	return strings.Join(parts[:len(parts)-1], "/")
}

// BaseName returns the last path segment.
func BaseName(name string) string {
	parts := split_path(name)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// AncestorFolders lists every folder prefix of a file path, outermost first.
func AncestorFolders(name string) []string {
	parts := split_path(name)
	if len(parts) <= 1 {
		return nil
	}
	res := make([]string, 0, len(parts)-1)
	for i := 1; i < len(parts); i++ {
		res = append(res, strings.Join(parts[:i], "/"))
	}
	return res
}

// GroupByFolder clusters contiguous runs of entries sharing a parent.
// Input must already be sorted by path; order is never changed.
func GroupByFolder(sorted []ArchiveEntry) []FolderGroup {
	res := make([]FolderGroup, 0)
	for i, entry := range sorted {
		parent := ParentFolder(entry.Path)
		if i == 0 || res[len(res)-1].Folder != parent {
			res = append(res, FolderGroup{Folder: parent})
		}
		last := &res[len(res)-1]
		last.Entries = append(last.Entries, entry)
	}
	return res
}
