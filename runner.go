package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/wtnb75/ziptool")

// InputError reports a missing input before anything is opened.
type InputError struct {
	Kind string
	Path string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
}

func (e *InputError) Unwrap() error {
	return ErrNotFound
}

// Runner performs one archive operation and prints its outcome.
type Runner struct {
	con      *Console
	progress string
	method   string
	level    int
	exclude  []string
	stored   []string
}

func NewRunner(con *Console, progress string) *Runner {
	return &Runner{con: con, progress: progress, method: "deflate", level: -1}
}

func (r *Runner) WithCompression(method string, level int) *Runner {
	r.method = method
	r.level = level
	return r
}

func (r *Runner) WithPatterns(exclude, stored []string) *Runner {
	r.exclude = exclude
	r.stored = stored
	return r
}

// run wraps an operation in a span and prints a failure exactly once.
func (r *Runner) run(ctx context.Context, op string, target string, fn func(context.Context) error) error {
	ctx, span := tracer.Start(ctx, op, trace.WithAttributes(attribute.String("ziptool.path", target)))
	defer span.End()
	err := fn(ctx)
	if err != nil {
		slog.Debug("operation failed", "op", op, "path", target, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.con.Error(err.Error())
		return err
	}
	return nil
}

func check_dir(kind, name string) error {
	if st, err := os.Stat(name); err != nil || !st.IsDir() {
		return &InputError{Kind: kind, Path: name}
	}
	return nil
}

func check_file(kind, name string) error {
	if st, err := os.Stat(name); err != nil || st.IsDir() {
		return &InputError{Kind: kind, Path: name}
	}
	return nil
}
