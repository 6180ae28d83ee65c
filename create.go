package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

type CreateCmd struct {
	Method  string   `short:"m" long:"method" choice:"deflate" choice:"store" choice:"zopfli" choice:"brotli" choice:"zstd" default:"deflate" description:"compression method"`
	Level   int      `short:"l" long:"level" default:"-1" description:"compression level, -1 for method default"`
	Exclude []string `short:"x" long:"exclude" description:"exclude files"`
	Stored  []string `short:"n" long:"stored" description:"non compress patterns"`
	Args    struct {
		Folder string `positional-arg-name:"folder"`
	} `positional-args:"yes" required:"yes"`

	root bool
}

func (cmd *CreateCmd) Execute(args []string) error {
	level := cmd.Level
	if cmd.root && level == -1 && cmd.Method == "deflate" {
		// the root variant packs with best compression
		level = 9
	}
	runner := NewRunner(NewConsole(os.Stdout, globalOption.Color), globalOption.Progress).
		WithCompression(cmd.Method, level).
		WithPatterns(cmd.Exclude, cmd.Stored)
	return runner.Create(context.Background(), cmd.Args.Folder, cmd.root)
}

// archive_name decides the output path and the root entry name for a folder.
func archive_name(folder string) (output string, root string, err error) {
	folder = filepath.Clean(folder)
	root = filepath.Base(folder)
	if root == "." || root == ".." || root == string(filepath.Separator) {
		abs, err := filepath.Abs(folder)
		if err != nil {
			return "", "", err
		}
		folder = abs
		root = filepath.Base(abs)
	}
	return folder + ".zip", root, nil
}

// collect_files lists regular files below folder in lexical order as slash paths.
func collect_files(folder string, exclude []string) ([]string, error) {
	res := make([]string, 0)
	err := filepath.WalkDir(folder, func(path string, info fs.DirEntry, err error) error {
		if err != nil {
			slog.Error("walk", "path", path, "error", err)
			return err
		}
		relpath, err := filepath.Rel(folder, path)
		if err != nil {
			slog.Error("Relpath", "root", folder, "path", path, "error", err)
			return err
		}
		if relpath == "." {
			return nil
		}
		relpath = filepath.ToSlash(relpath)
		if ismatch_path(relpath, exclude) {
			slog.Debug("exclude-match", "path", relpath, "exclude", exclude)
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			slog.Debug("isdir", "root", folder, "path", path)
			return nil
		}
		if st, err := os.Stat(path); err != nil || !st.Mode().IsRegular() {
			slog.Debug("skip irregular", "path", path, "error", err)
			return nil
		}
		res = append(res, relpath)
		return nil
	})
	return res, err
}

func (r *Runner) Create(ctx context.Context, folder string, withRoot bool) error {
	op := "create"
	if withRoot {
		op = "create-with-root"
	}
	return r.run(ctx, op, folder, func(ctx context.Context) error {
		return r.create(folder, withRoot)
	})
}

func (r *Runner) create(folder string, withRoot bool) error {
	if err := check_dir("Folder", folder); err != nil {
		return err
	}
	output, root, err := archive_name(folder)
	if err != nil {
		return err
	}
	files, err := collect_files(folder, r.exclude)
	if err != nil {
		return err
	}
	aw, err := CreateArchive(output, r.method, r.level, r.stored)
	if err != nil {
		return err
	}
	if withRoot {
		r.con.Banner("Creating archive with root folder...")
	} else {
		r.con.Banner("Creating archive...")
	}
	var progress ProgressReporter = nopProgress{}
	if withRoot && len(files) != 0 {
		progress = NewProgress(r.con, r.progress, len(files))
	}
	prefix := ""
	if withRoot {
		prefix = root + "/"
	}
	for i, relpath := range files {
		if err = aw.AddFile(filepath.Join(folder, filepath.FromSlash(relpath)), prefix+relpath); err != nil {
			break
		}
		progress.Update(i+1, len(files), BaseName(relpath))
	}
	progress.Finish()
	if err != nil {
		aw.Abort()
		return err
	}
	if err = aw.Close(); err != nil {
		slog.Error("close archive", "name", output, "error", err)
		if rerr := os.Remove(output); rerr != nil {
			slog.Error("remove partial archive", "name", output, "error", rerr)
		}
		return err
	}
	slog.Info("archive created", "name", output, "files", aw.Files(), "method", r.method)
	r.con.Success("Archive created successfully!")
	r.con.Field("Location", output)
	if withRoot {
		r.con.Field("Root folder", root)
	}
	r.con.Field("Files archived", aw.Files())
	return nil
}
