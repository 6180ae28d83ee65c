package main

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ArchiveEntry is a read-only snapshot of one item in an archive.
type ArchiveEntry struct {
	Path             string `json:"path"`
	IsDir            bool   `json:"is_dir"`
	UncompressedSize uint64 `json:"uncompressed_size"`
	CompressedSize   uint64 `json:"compressed_size"`
}

type ReportFile struct {
	Name           string  `json:"name"`
	Path           string  `json:"path"`
	OriginalSize   uint64  `json:"original_size"`
	CompressedSize uint64  `json:"compressed_size"`
	Ratio          float64 `json:"ratio"`
}

type ReportGroup struct {
	Folder string       `json:"folder"`
	Files  []ReportFile `json:"files"`
}

type ArchiveReport struct {
	Name           string        `json:"name"`
	Files          int           `json:"files"`
	Folders        int           `json:"folders"`
	OriginalSize   uint64        `json:"original_size"`
	CompressedSize uint64        `json:"compressed_size"`
	SpaceSaved     int64         `json:"space_saved"`
	Ratio          float64       `json:"ratio"`
	Groups         []ReportGroup `json:"groups"`
}

// ReadEntries takes the metadata of every entry from the central directory.
func ReadEntries(zr *zip.Reader) []ArchiveEntry {
	res := make([]ArchiveEntry, 0, len(zr.File))
	for _, f := range zr.File {
		res = append(res, ArchiveEntry{
			Path:             f.Name,
			IsDir:            f.FileInfo().IsDir(),
			UncompressedSize: f.UncompressedSize64,
			CompressedSize:   f.CompressedSize64,
		})
	}
	return res
}

// CompressionRatio is the reduction in percent; 0 for empty input.
func CompressionRatio(original, compressed uint64) float64 {
	if original == 0 {
		return 0
	}
	return (1 - float64(compressed)/float64(original)) * 100
}

func BuildReport(name string, entries []ArchiveEntry) *ArchiveReport {
	files := make([]ArchiveEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir {
			files = append(files, e)
		}
	}
	// every ancestor counts, not only immediate parents
	folders := map[string]struct{}{}
	for _, f := range files {
		for _, dir := range AncestorFolders(f.Path) {
			folders[dir] = struct{}{}
		}
	}
	slices.SortStableFunc(files, func(a, b ArchiveEntry) int {
		return strings.Compare(a.Path, b.Path)
	})
	res := &ArchiveReport{
		Name:    name,
		Folders: len(folders),
		Groups:  make([]ReportGroup, 0),
	}
	for _, grp := range GroupByFolder(files) {
		rg := ReportGroup{Folder: grp.Folder, Files: make([]ReportFile, 0, len(grp.Entries))}
		for _, e := range grp.Entries {
			rg.Files = append(rg.Files, ReportFile{
				Name:           BaseName(e.Path),
				Path:           e.Path,
				OriginalSize:   e.UncompressedSize,
				CompressedSize: e.CompressedSize,
				Ratio:          CompressionRatio(e.UncompressedSize, e.CompressedSize),
			})
			res.OriginalSize += e.UncompressedSize
			res.CompressedSize += e.CompressedSize
			res.Files++
		}
		res.Groups = append(res.Groups, rg)
	}
	res.SpaceSaved = int64(res.OriginalSize) - int64(res.CompressedSize)
	res.Ratio = CompressionRatio(res.OriginalSize, res.CompressedSize)
	return res
}

func (r *ArchiveReport) Render(con *Console) {
	w := con.Writer()
	fmt.Fprintln(w)
	con.Heading("Archive: " + r.Name)
	for i, grp := range r.Groups {
		if i != 0 && r.Groups[i-1].Folder != "" {
			fmt.Fprintln(w)
		}
		if grp.Folder != "" {
			fmt.Fprintln(w, con.yellow.Sprintf("  [%s]", grp.Folder))
		}
		for _, f := range grp.Files {
			fmt.Fprint(w, con.white.Sprint("  [FILE] "))
			fmt.Fprintf(w, "%-50s", f.Name)
			fmt.Fprintln(w, con.gray.Sprintf(" | Original: %-10s | Compressed: %-10s | Ratio: %.1f%%",
				FormatSize(f.OriginalSize), FormatSize(f.CompressedSize), f.Ratio))
		}
	}
	fmt.Fprintln(w)
	con.Rule()
	con.Field("Total Files", r.Files)
	con.Field("Total Folders", r.Folders)
	con.Field("Original Size", FormatSize(r.OriginalSize))
	con.Field("Compressed Size", FormatSize(r.CompressedSize))
	con.Field("Space Saved", fmt.Sprintf("%s (%.1f%%)", FormatSignedSize(r.SpaceSaved), r.Ratio))
	con.Rule()
}

func (r *ArchiveReport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
