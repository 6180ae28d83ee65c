package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

type ListCmd struct {
	JSON  bool `long:"json" description:"print the report as json"`
	Watch bool `short:"w" long:"watch" description:"list again whenever the archive changes"`
	Args  struct {
		Archive string `positional-arg-name:"archive"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd *ListCmd) Execute(args []string) error {
	runner := NewRunner(NewConsole(os.Stdout, globalOption.Color), globalOption.Progress)
	ctx := context.Background()
	if err := runner.List(ctx, cmd.Args.Archive, cmd.JSON); err != nil && !cmd.Watch {
		return err
	}
	if !cmd.Watch {
		return nil
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return WatchArchive(ctx, cmd.Args.Archive, func() error {
		// failures are already printed; keep watching
		_ = runner.List(ctx, cmd.Args.Archive, cmd.JSON)
		return nil
	})
}

func (r *Runner) List(ctx context.Context, archive string, asJSON bool) error {
	return r.run(ctx, "list", archive, func(ctx context.Context) error {
		return r.list(ctx, archive, asJSON)
	})
}

func (r *Runner) list(ctx context.Context, archive string, asJSON bool) error {
	if err := check_file("Archive", archive); err != nil {
		return err
	}
	zr, err := OpenArchive(ctx, archive)
	if err != nil {
		return err
	}
	defer zr.Close()
	report := BuildReport(filepath.Base(archive), ReadEntries(&zr.Reader))
	if asJSON {
		return report.WriteJSON(r.con.Writer())
	}
	report.Render(r.con)
	return nil
}
