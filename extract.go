package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type ExtractCmd struct {
	Args struct {
		Archive string `positional-arg-name:"archive"`
	} `positional-args:"yes" required:"yes"`

	verbose bool
}

func (cmd *ExtractCmd) Execute(args []string) error {
	runner := NewRunner(NewConsole(os.Stdout, globalOption.Color), globalOption.Progress)
	return runner.Extract(context.Background(), cmd.Args.Archive, cmd.verbose)
}

// ExtractDir is <archive dir>/<archive name without extension>.
func ExtractDir(archive string) string {
	base := filepath.Base(archive)
	return filepath.Join(filepath.Dir(archive), strings.TrimSuffix(base, filepath.Ext(base)))
}

func (r *Runner) Extract(ctx context.Context, archive string, verbose bool) error {
	op := "extract"
	if verbose {
		op = "extract-verbose"
	}
	return r.run(ctx, op, archive, func(ctx context.Context) error {
		return r.extract(ctx, archive, verbose)
	})
}

func (r *Runner) extract(ctx context.Context, archive string, verbose bool) error {
	if err := check_file("Archive", archive); err != nil {
		return err
	}
	zr, err := OpenArchive(ctx, archive)
	if err != nil {
		return err
	}
	defer zr.Close()
	dest := ExtractDir(archive)
	if err = os.MkdirAll(dest, 0o755); err != nil {
		slog.Error("mkdir", "path", dest, "error", err)
		return err
	}
	r.con.Banner("Extracting archive...")
	// the central directory gives the total without a separate pass
	total := 0
	for _, f := range zr.File {
		if !f.FileInfo().IsDir() {
			total++
		}
	}
	var progress ProgressReporter = nopProgress{}
	if verbose && total != 0 {
		progress = NewProgress(r.con, r.progress, total)
	}
	extracted := 0
	for _, f := range zr.File {
		if err = ExtractFile(f, dest); err != nil {
			progress.Finish()
			return fmt.Errorf("%s: %w", f.Name, err)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		extracted++
		progress.Update(extracted, total, BaseName(f.Name))
	}
	progress.Finish()
	slog.Info("archive extracted", "name", archive, "dest", dest, "files", extracted)
	r.con.Success("Extraction completed!")
	r.con.Field("Location", dest)
	r.con.Field("Files extracted", extracted)
	return nil
}
