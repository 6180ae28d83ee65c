package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/schollz/progressbar/v3"
)

const (
	progressBarWidth = 50
	progressLabelMax = 30
	progressLabelCut = 27
)

type ProgressReporter interface {
	Update(current, total int, label string)
	Finish()
}

type ProgressState struct {
	Current int
	Total   int
	Label   string
}

func (s ProgressState) ratio() float64 {
	return float64(s.Current) / float64(s.Total)
}

// Filled is the number of bar cells, truncated.
func (s ProgressState) Filled() int {
	filled := int(progressBarWidth * s.ratio())
	return max(0, min(filled, progressBarWidth))
}

func (s ProgressState) Percent() int {
	return int(math.Round(s.ratio() * 100))
}

func truncate_label(label string) string {
	if uniseg.GraphemeClusterCount(label) <= progressLabelMax {
		return label
	}
	var sb strings.Builder
	gr := uniseg.NewGraphemes(label)
	for i := 0; i < progressLabelCut && gr.Next(); i++ {
		sb.WriteString(gr.Str())
	}
	sb.WriteString("...")
	return sb.String()
}

type lineProgress struct {
	con     *Console
	written bool
}

func (p *lineProgress) Update(current, total int, label string) {
	st := ProgressState{Current: current, Total: total, Label: label}
	filled := st.Filled()
	fmt.Fprintf(p.con.out, "\r  [%s%s] %d%% (%d/%d) - %s%s",
		p.con.green.Sprint(strings.Repeat("#", filled)),
		p.con.gray.Sprint(strings.Repeat("-", progressBarWidth-filled)),
		st.Percent(), st.Current, st.Total, truncate_label(st.Label),
		strings.Repeat(" ", 10))
	p.written = true
}

func (p *lineProgress) Finish() {
	if p.written {
		fmt.Fprintln(p.con.out)
	}
}

type barProgress struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func newBarProgress(out io.Writer, total int) *barProgress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetWidth(progressBarWidth),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "#",
			SaucerPadding: "-",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	return &barProgress{out: out, bar: bar}
}

func (p *barProgress) Update(current, total int, label string) {
	p.bar.Describe(truncate_label(label))
	if err := p.bar.Set(current); err != nil {
		slog.Debug("progressbar", "error", err)
	}
}

func (p *barProgress) Finish() {
	if err := p.bar.Finish(); err != nil {
		slog.Debug("progressbar finish", "error", err)
	}
	fmt.Fprintln(p.out)
}

type nopProgress struct{}

func (nopProgress) Update(current, total int, label string) {}

func (nopProgress) Finish() {}

// NewProgress picks a reporter for the given style. Callers must not use it for empty sets.
func NewProgress(con *Console, style string, total int) ProgressReporter {
	switch style {
	case "none":
		return nopProgress{}
	case "bar":
		return newBarProgress(con.out, total)
	case "line":
		return &lineProgress{con: con}
	default: // "auto"
		if !con.terminal {
			return nopProgress{}
		}
		return &lineProgress{con: con}
	}
}
