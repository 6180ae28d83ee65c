package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const ruleWidth = 100

// Console prints user facing messages. Colors are decided once per console.
type Console struct {
	out      io.Writer
	terminal bool
	yellow   *color.Color
	green    *color.Color
	red      *color.Color
	cyan     *color.Color
	gray     *color.Color
	white    *color.Color
}

func isTerminal(w io.Writer) bool {
	if fp, ok := w.(*os.File); ok {
		return term.IsTerminal(int(fp.Fd()))
	}
	return false
}

func NewConsole(out io.Writer, mode string) *Console {
	c := &Console{
		out:      out,
		terminal: isTerminal(out),
		yellow:   color.New(color.FgYellow),
		green:    color.New(color.FgGreen),
		red:      color.New(color.FgRed),
		cyan:     color.New(color.FgCyan),
		gray:     color.New(color.FgHiBlack),
		white:    color.New(color.FgWhite),
	}
	var colorize bool
	switch mode {
	case "always":
		colorize = true
	case "never":
		colorize = false
	default:
		colorize = c.terminal && !color.NoColor
	}
	for _, col := range []*color.Color{c.yellow, c.green, c.red, c.cyan, c.gray, c.white} {
		if colorize {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

func (c *Console) Writer() io.Writer {
	return c.out
}

// Banner announces the start of an operation.
func (c *Console) Banner(msg string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.yellow.Sprint("  "+msg))
}

func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.green.Sprint("  [SUCCESS] "+msg))
}

func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.red.Sprint("  [ERROR] "+msg))
}

func (c *Console) Field(name string, value any) {
	fmt.Fprintf(c.out, "  %s: %v\n", name, value)
}

func (c *Console) Rule() {
	fmt.Fprintln(c.out, c.cyan.Sprint(strings.Repeat("=", ruleWidth)))
}

func (c *Console) Heading(msg string) {
	c.Rule()
	fmt.Fprintln(c.out, c.cyan.Sprint("  "+msg))
	c.Rule()
}
