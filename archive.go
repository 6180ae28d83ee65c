package main

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"
)

var (
	ErrNotFound = errors.New("not found")
	ErrNotZip   = errors.New("not a zip archive")
)

// ArchiveWriter owns an output file and the zip writer on top of it.
type ArchiveWriter struct {
	name   string
	fp     *os.File
	zw     *zip.Writer
	method uint16
	stored []string
	files  int
}

func CreateArchive(name string, method string, level int, stored []string) (*ArchiveWriter, error) {
	fp, err := os.Create(name)
	if err != nil {
		slog.Error("openOutput", "path", name, "error", err)
		return nil, err
	}
	zw := zip.NewWriter(fp)
	id, err := SetupCompressor(zw, method, level)
	if err != nil {
		fp.Close()
		os.Remove(name)
		return nil, err
	}
	return &ArchiveWriter{name: name, fp: fp, zw: zw, method: id, stored: stored}, nil
}

func (a *ArchiveWriter) Files() int {
	return a.files
}

// open_entry builds the header for path and opens it for reading.
func (a *ArchiveWriter) open_entry(path string, archivepath string) (*zip.FileHeader, *os.File, error) {
	st, err := os.Stat(path)
	if err != nil {
		slog.Error("stat", "path", path, "error", err)
		return nil, nil, err
	}
	hdr, err := zip.FileInfoHeader(st)
	if err != nil {
		return nil, nil, err
	}
	hdr.Name = archivepath
	hdr.Method = a.method
	rd, err := os.Open(path)
	if err != nil {
		slog.Error("OpenFile", "path", path, "error", err)
		return nil, nil, err
	}
	if len(a.stored) != 0 {
		buf := make([]byte, sniffLen)
		buflen, err := io.ReadFull(rd, buf)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			slog.Error("ReadFile", "path", path, "error", err)
			rd.Close()
			return nil, nil, err
		}
		if _, err = rd.Seek(0, io.SeekStart); err != nil {
			slog.Error("seek", "path", path, "error", err)
			rd.Close()
			return nil, nil, err
		}
		if ispat(archivepath, buf[:buflen], a.stored) {
			slog.Debug("not compress", "name", archivepath)
			hdr.Method = zip.Store
		}
	}
	return hdr, rd, nil
}

// AddFile copies the file at path into the archive as archivepath.
func (a *ArchiveWriter) AddFile(path string, archivepath string) error {
	hdr, rd, err := a.open_entry(path, archivepath)
	if err != nil {
		return err
	}
	defer rd.Close()
	wr, err := a.zw.CreateHeader(hdr)
	if err != nil {
		slog.Error("zipCreate", "path", archivepath, "error", err)
		return err
	}
	written, err := io.Copy(wr, rd)
	if err != nil {
		slog.Error("Copy", "path", path, "archivepath", archivepath, "error", err, "written", written)
		return err
	}
	slog.Debug("written", "path", path, "archivepath", archivepath, "written", written, "method", hdr.Method)
	a.files++
	return nil
}

// Close finishes the central directory and closes the file.
func (a *ArchiveWriter) Close() error {
	err := a.zw.Close()
	if cerr := a.fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// Abort closes and removes a partially written archive.
func (a *ArchiveWriter) Abort() {
	if err := a.zw.Close(); err != nil {
		slog.Debug("close aborted zip", "name", a.name, "error", err)
	}
	if err := a.fp.Close(); err != nil {
		slog.Debug("close aborted file", "name", a.name, "error", err)
	}
	if err := os.Remove(a.name); err != nil {
		slog.Error("remove partial archive", "name", a.name, "error", err)
	}
}

// identify_zip refuses inputs whose content is not a zip archive.
// The name is not passed on so a .zip suffix alone never matches.
// Archives with leading data (self-extracting stubs) have no magic at offset 0
// and are accepted when the central directory can be read.
func identify_zip(ctx context.Context, name string) error {
	fp, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fp.Close()
	format, _, err := archives.Identify(ctx, "", fp)
	if err != nil {
		slog.Debug("identify", "name", name, "error", err)
		zr, zerr := zip.OpenReader(name)
		if zerr != nil {
			slog.Debug("open as zip", "name", name, "error", zerr)
			return fmt.Errorf("%s: %w", filepath.Base(name), ErrNotZip)
		}
		zr.Close()
		return nil
	}
	if ext := format.Extension(); ext != ".zip" {
		return fmt.Errorf("%s (%s): %w", filepath.Base(name), strings.TrimPrefix(ext, "."), ErrNotZip)
	}
	return nil
}

// OpenArchive checks the format and opens the archive for reading.
func OpenArchive(ctx context.Context, name string) (*zip.ReadCloser, error) {
	if err := identify_zip(ctx, name); err != nil {
		return nil, err
	}
	zr, err := zip.OpenReader(name)
	if err != nil {
		slog.Error("open reader", "file", name, "error", err)
		return nil, err
	}
	return zr, nil
}

// ExtractFile writes one entry below dest, keeping its relative path.
func ExtractFile(f *zip.File, dest string) error {
	relpath := filepath.Join(split_path(f.Name)...)
	if relpath == "" || !filepath.IsLocal(relpath) {
		return fmt.Errorf("illegal entry path: %s", f.Name)
	}
	target := filepath.Join(dest, relpath)
	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		slog.Error("mkdir", "path", filepath.Dir(target), "error", err)
		return err
	}
	rd, err := f.Open()
	if err != nil {
		slog.Error("open entry", "name", f.Name, "error", err)
		return err
	}
	defer rd.Close()
	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	// a read-only file from an earlier extraction cannot be truncated
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("remove existing", "path", target, "error", err)
		return err
	}
	ofp, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, mode)
	if err != nil {
		slog.Error("open file", "path", target, "error", err)
		return err
	}
	written, err := io.Copy(ofp, rd)
	if cerr := ofp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		slog.Error("copy", "name", f.Name, "path", target, "error", err, "written", written)
		return err
	}
	slog.Debug("extracted", "name", f.Name, "path", target, "written", written)
	if !f.Modified.IsZero() {
		if err := os.Chtimes(target, f.Modified, f.Modified); err != nil {
			slog.Debug("chtimes", "path", target, "error", err)
		}
	}
	return nil
}
