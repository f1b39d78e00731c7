// Package console implements the line-oriented front-end to the evaluator:
// read an expression per line, print its value or a flat error message.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/evaluator"
)

// Banner is printed once at the start of an interactive session.
const Banner = "Evaluator (+ - * / ^ and parentheses)"

// Prompt is printed before each line of an interactive session.
const Prompt = "Expr: "

// Invalid is the message printed in place of a result for any error.
const Invalid = "Invalid expression"

// Options configures a Console.
type Options struct {
	// Interactive prints the banner and a prompt before each line.
	Interactive bool
	// Format is the fmt verb used to print results. Empty means %g.
	Format string
	// Echo prints the postfix form of each expression before its result.
	Echo bool
	// Verbose appends error details to the invalid expression message.
	Verbose bool
	// Color enables colored results and errors, subject to NO_COLOR and
	// terminal detection.
	Color bool
	// Log receives a debug record for each invalid expression. Nil discards.
	Log *slog.Logger
}

// Console evaluates expressions and writes their results.
type Console struct {
	out  io.Writer
	opts Options
	ok   *color.Color
	bad  *color.Color
	log  *slog.Logger
}

// New creates a console writing to out.
func New(out io.Writer, opts Options) *Console {
	if opts.Format == "" {
		opts.Format = "%g"
	}
	c := &Console{
		out:  out,
		opts: opts,
		ok:   color.New(color.FgGreen),
		bad:  color.New(color.FgRed),
		log:  opts.Log,
	}
	if !opts.Color {
		c.ok.DisableColor()
		c.bad.DisableColor()
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	return c
}

// Eval evaluates one expression and writes its result line. The only errors
// are from writing; invalid expressions are reported in the output.
func (c *Console) Eval(src string) error {
	toks, err := evaluator.Tokenize(src)
	var p evaluator.Postfix
	if err == nil {
		p, err = evaluator.ToPostfix(toks)
	}
	if err == nil && c.opts.Echo {
		if _, err := fmt.Fprintf(c.out, "%v : ", p); err != nil {
			return err
		}
	}
	var r float64
	if err == nil {
		r, err = p.Eval()
	}
	if err != nil {
		return c.invalid(src, err)
	}
	_, err = c.ok.Fprintf(c.out, "= "+c.opts.Format+"\n", r)
	return err
}

func (c *Console) invalid(src string, err error) error {
	attrs := []any{slog.String("expr", src), slog.String("err", err.Error())}
	var ie evaluator.InputError
	if errors.As(err, &ie) {
		attrs = append(attrs, slog.Int("col", ie.Pos()))
	}
	c.log.Debug("invalid expression", attrs...)
	msg := Invalid
	if c.opts.Verbose {
		msg += ": " + err.Error()
	}
	_, werr := c.bad.Fprintln(c.out, msg)
	return werr
}

// Run evaluates each non-blank line of in until EOF.
func (c *Console) Run(in io.Reader) error {
	if c.opts.Interactive {
		if _, err := fmt.Fprintln(c.out, Banner); err != nil {
			return err
		}
	}
	scan := bufio.NewScanner(in)
	for {
		if c.opts.Interactive {
			if _, err := io.WriteString(c.out, Prompt); err != nil {
				return err
			}
		}
		if !scan.Scan() {
			break
		}
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		if err := c.Eval(line); err != nil {
			return err
		}
	}
	if c.opts.Interactive {
		// End the dangling prompt.
		if _, err := fmt.Fprintln(c.out); err != nil {
			return err
		}
	}
	return scan.Err()
}
