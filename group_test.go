package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(paths ...string) []ArchiveEntry {
	res := make([]ArchiveEntry, 0, len(paths))
	for _, p := range paths {
		res = append(res, ArchiveEntry{Path: p})
	}
	return res
}

func TestParentFolder(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", ParentFolder("root.txt"))
	assert.Equal(t, "", ParentFolder(""))
	assert.Equal(t, "a", ParentFolder("a/x.txt"))
	assert.Equal(t, "a/b", ParentFolder("a/b/c.txt"))
	assert.Equal(t, "a/b", ParentFolder(`a\b\c.txt`))
	assert.Equal(t, "a/b", ParentFolder(`a/b\c.txt`))
}

func TestAncestorFolders(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "a/b"}, AncestorFolders("a/b/c.txt"))
	assert.Nil(t, AncestorFolders("c.txt"))
	assert.Nil(t, AncestorFolders(""))
}

func TestBaseName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "c.txt", BaseName("a/b/c.txt"))
	assert.Equal(t, "c.txt", BaseName(`a\c.txt`))
	assert.Equal(t, "", BaseName(""))
}

func TestGroupByFolder(t *testing.T) {
	t.Parallel()
	groups := GroupByFolder(entries("a/x.txt", "a/y.txt", "b/z.txt", "root.txt"))
	require.Len(t, groups, 3)
	assert.Equal(t, "a", groups[0].Folder)
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "b", groups[1].Folder)
	assert.Len(t, groups[1].Entries, 1)
	assert.Equal(t, "", groups[2].Folder)
	assert.Equal(t, "root.txt", groups[2].Entries[0].Path)
}

func TestGroupByFolderKeepsOrder(t *testing.T) {
	t.Parallel()
	// root files sorted before folders stay first
	groups := GroupByFolder(entries("A.txt", "a/x.txt", "a/y/z.txt", "b.txt"))
	require.Len(t, groups, 4)
	assert.Equal(t, []string{"", "a", "a/y", ""},
		[]string{groups[0].Folder, groups[1].Folder, groups[2].Folder, groups[3].Folder})
}

func TestGroupByFolderEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, GroupByFolder(nil))
	groups := GroupByFolder(entries(""))
	require.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].Folder)
}
