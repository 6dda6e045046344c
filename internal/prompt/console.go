// Package prompt implements the interactive terminal UI: line prompts,
// numbered menus, colored notices, tables and the startup banner.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

// Console reads answers from in and writes everything else to out
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console over the given streams
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Input asks a free-text question and returns the answer without its line ending.
// It returns io.EOF once the input is exhausted.
func (c *Console) Input(label string) (string, error) {
	fmt.Fprintf(c.out, "%s %s ", color.CyanString("?"), color.New(color.Bold).Sprint(label))
	return c.readLine()
}

// Pause waits for the user to press enter
func (c *Console) Pause(label string) error {
	_, err := c.Input(label)
	return err
}

// Select shows a numbered list and returns the index of the chosen option.
// Invalid answers are reported and asked again.
func (c *Console) Select(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("select: no options")
	}

	fmt.Fprintf(c.out, "%s %s\n", color.CyanString("?"), color.New(color.Bold).Sprint(label))
	for i, opt := range options {
		fmt.Fprintf(c.out, "  %s %s\n", color.CyanString("%2d)", i+1), opt)
	}

	for {
		fmt.Fprintf(c.out, "  Enter a number [1-%d]: ", len(options))
		answer, err := c.readLine()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		c.Warn("Please enter a number between 1 and %d.", len(options))
	}
}

// Success prints a green notice
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.out, color.GreenString(format, args...))
}

// Info prints a yellow notice
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.out, color.YellowString(format, args...))
}

// Warn prints a yellow notice prefixed with an exclamation mark
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.out, color.YellowString("! "+format, args...))
}

// Error prints a red notice
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.out, color.RedString(format, args...))
}

// Highlight prints s in blue on a line of its own, preceded by a blank line
func (c *Console) Highlight(s string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, color.BlueString("%s", s))
}

// Table renders rows under header, fitted to the terminal width when known
func (c *Console) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)

	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	if !color.NoColor {
		style.Color.Header = text.Colors{text.FgBlue}
	}
	t.SetStyle(style)

	t.AppendHeader(toRow(header))
	for _, r := range rows {
		t.AppendRow(toRow(r))
	}

	if w := c.width(); w > 0 {
		t.SetAllowedRowLength(w)
	}
	t.Render()
}

// Banner prints text as large ASCII art in blue
func (c *Console) Banner(s string) {
	art := figure.NewFigure(s, "", true).String()
	fmt.Fprintln(c.out, color.BlueString("%s", art))
}

// Spin shows a spinner labelled label until the returned stop is called.
// Nothing is drawn when out is not a terminal.
func (c *Console) Spin(label string) (stop func()) {
	f, ok := c.terminal()
	if !ok {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(f),
		spinner.WithSuffix(" "+label),
	)
	s.Start()
	return s.Stop
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// width returns the terminal width, or 0 when out is not a terminal
func (c *Console) width() int {
	f, ok := c.terminal()
	if !ok {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

func (c *Console) terminal() (*os.File, bool) {
	f, ok := c.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}
	return f, true
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, cell := range cells {
		row[i] = cell
	}
	return row
}
