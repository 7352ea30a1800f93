// Package console is the terminal front end: line input, coloured output,
// banners, screen clearing and the bell used as a sound cue.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ErrInputClosed is returned once stdin is exhausted.
var ErrInputClosed = fmt.Errorf("input closed: %w", io.EOF)

type readResult struct {
	line string
	err  error
}

// Console reads player input and writes game screens.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color bool

	start sync.Once
	lines chan readResult
}

// New wraps arbitrary streams. color enables ANSI escapes.
func New(in io.Reader, out io.Writer, color bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, color: color, lines: make(chan readResult)}
}

// NewStd attaches to the process terminal. Colour is used only when stdout is
// a terminal and noColor is false.
func NewStd(noColor bool) *Console {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return New(os.Stdin, colorable.NewColorableStdout(), tty && !noColor)
}

// ReadLine prints prompt and returns the next line without its line ending.
// A final line without a newline is returned normally; after that
// ErrInputClosed is reported. Cancelling ctx returns ctx.Err() at once, even
// while the terminal read is still pending.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.print(prompt)
	c.start.Do(func() { go c.readLoop() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-c.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return r.line, r.err
	}
}

// readLoop owns the input reader. It stops at end of input or on the first
// read error, closing lines.
func (c *Console) readLoop() {
	defer close(c.lines)
	for {
		line, err := c.in.ReadString('\n')
		if line != "" {
			c.lines <- readResult{line: strings.TrimRight(line, "\r\n")}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.lines <- readResult{err: fmt.Errorf("read input: %w", err)}
			}
			return
		}
	}
}

// Wait pauses until Enter is pressed.
func (c *Console) Wait(ctx context.Context) error {
	_, err := c.ReadLine(ctx, "\nPress Enter to continue...")
	return err
}

// Clear wipes the screen when colour (and so ANSI) output is enabled.
func (c *Console) Clear() {
	if c.color {
		c.print("\033[H\033[2J")
	}
}

// Println writes a line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}
