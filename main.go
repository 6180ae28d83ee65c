package main

import (
	"os"

	"log/slog"

	"github.com/jessevdk/go-flags"
)

var globalOption struct {
	Verbose       bool   `short:"v" long:"verbose" description:"show verbose logs"`
	Quiet         bool   `short:"q" long:"quiet" description:"suppress logs"`
	JsonLog       bool   `long:"json-log" description:"use json format for logging"`
	Color         string `long:"color" choice:"auto" choice:"always" choice:"never" default:"auto" env:"ZIPTOOL_COLOR" description:"colorize output"`
	Progress      string `long:"progress-style" choice:"auto" choice:"line" choice:"bar" choice:"none" default:"auto" env:"ZIPTOOL_PROGRESS" description:"progress display"`
	OpenTelemetry bool   `long:"opentelemetry" description:"export operation traces with otlp"`
}

func init_log() {
	var level slog.Level = slog.LevelInfo
	if globalOption.Verbose {
		level = slog.LevelDebug
	} else if globalOption.Quiet {
		level = slog.LevelWarn
	}
	slog.SetLogLoggerLevel(level)
	if globalOption.JsonLog {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}
}

func execute(command flags.Commander, args []string) error {
	init_log()
	if command == nil {
		return nil
	}
	if globalOption.OpenTelemetry {
		stop, err := init_otel("ziptool")
		if err != nil {
			slog.Warn("opentelemetry initialize failed", "error", err)
		} else {
			defer stop()
		}
	}
	return command.Execute(args)
}

func run(args []string) int {
	parser := flags.NewParser(&globalOption, flags.Default)
	parser.CommandHandler = execute
	commands := []struct {
		name, short, long string
		data              any
	}{
		{"create", "create archive", "create <folder>.zip from the files in a folder", &CreateCmd{}},
		{"create-with-root", "create archive with root folder", "create <folder>.zip with every entry under the folder name", &CreateCmd{root: true}},
		{"extract", "extract archive", "extract into <archive dir>/<archive name>", &ExtractCmd{}},
		{"extract-verbose", "extract archive with progress", "extract into <archive dir>/<archive name> showing progress", &ExtractCmd{verbose: true}},
		{"list", "list archive", "list contents grouped by folder with compression statistics", &ListCmd{}},
		{"version", "show version", "show version", &VersionCmd{}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			slog.Error("addcommand "+c.name, "error", err)
			panic(err)
		}
	}
	if _, err := parser.ParseArgs(args); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return 0
		}
		slog.Error("error exit", "error", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
