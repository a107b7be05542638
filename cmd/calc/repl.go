package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

// quit is the line that ends a session.
const quit = "."

// repl evaluates lines of input with one evaluator, so that variables carry
// over from line to line.
type repl struct {
	e      *calc.Evaluator
	out    io.Writer
	errs   io.Writer
	format string
	log    zerolog.Logger
	// failed counts lines that did not evaluate.
	failed int
}

// line evaluates and prints one line of input. The result is false if the
// line ends the session.
func (r *repl) line(s string) bool {
	if s == quit {
		return false
	}
	v, err := r.e.EvalString(s)
	if err != nil {
		r.failed++
		r.log.Debug().Str("expr", s).Err(err).Msg("evaluation failed")
		fmt.Fprintln(r.errs, color.RedString("Error:"), err)
		return true
	}
	r.log.Debug().Str("expr", s).Float64("result", v).Msg("evaluated")
	fmt.Fprintf(r.out, "Result: "+r.format+"\n", v)
	return true
}

// args evaluates each argument as a line.
func (r *repl) args(args []string) error {
	for _, arg := range args {
		if !r.line(arg) {
			break
		}
	}
	if r.failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", r.failed, len(args))
	}
	return nil
}

// scan evaluates lines from in until the quit line or the end of the input.
func (r *repl) scan(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if !r.line(sc.Text()) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// interactive evaluates lines edited on the terminal fd, which rw reads and
// writes, until the quit line or ^D.
func (r *repl) interactive(fd int, rw io.ReadWriter, banner, prompt string) error {
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer term.Restore(fd, old)
	t := term.NewTerminal(rw, prompt)
	r.out, r.errs = t, t
	fmt.Fprintln(t, banner)
	for {
		s, err := t.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if !r.line(s) {
			return nil
		}
	}
}
