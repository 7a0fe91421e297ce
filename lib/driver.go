package lib

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fatih/color"
)

type DriverOptions struct {
	// ShowPostfix prints the reverse polish form before each result.
	ShowPostfix bool
	Color       bool
	// Logger receives per-line diagnostics. Nil disables them.
	Logger *log.Logger
}

// RunLines evaluates every non-empty line of r and writes "result: <value>"
// or "error: <message>" to w. Lines have no length limit. Only I/O errors
// stop it.
func RunLines(r io.Reader, w io.Writer, opts DriverOptions) error {
	d := newDriver(w, opts)
	reader := bufio.NewReader(r)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line != "" {
			err := d.line(line)
			if err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
	}
}

// RunExpressions is RunLines for expressions that are already split, e.g.
// command line arguments. Each one is evaluated whole, newlines included.
func RunExpressions(exprs []string, w io.Writer, opts DriverOptions) error {
	d := newDriver(w, opts)
	for _, expr := range exprs {
		if expr == "" {
			continue
		}
		err := d.line(expr)
		if err != nil {
			return err
		}
	}
	return nil
}

type driver struct {
	w           io.Writer
	opts        DriverOptions
	resultLabel *color.Color
	errorLabel  *color.Color
	infoLabel   *color.Color
}

func newDriver(w io.Writer, opts DriverOptions) *driver {
	d := &driver{
		w:           w,
		opts:        opts,
		resultLabel: color.New(color.FgGreen),
		errorLabel:  color.New(color.FgRed),
		infoLabel:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{d.resultLabel, d.errorLabel, d.infoLabel} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return d
}

func (d *driver) line(expr string) error {
	postfix, err := InfixToPostfix(expr)
	if err != nil {
		return d.fail(expr, err)
	}
	d.logf("%q: postfix [%s]", expr, FormatTokens(postfix))
	if d.opts.ShowPostfix {
		_, err = fmt.Fprintf(d.w, "%s %s\n", d.infoLabel.Sprint("postfix:"), FormatTokens(postfix))
		if err != nil {
			return err
		}
	}

	value, err := EvaluatePostfix(postfix)
	if err != nil {
		return d.fail(expr, err)
	}
	_, err = fmt.Fprintf(d.w, "%s %s\n", d.resultLabel.Sprint("result:"), FormatNumber(value))
	return err
}

func (d *driver) fail(expr string, evalErr error) error {
	d.logf("%q: %v", expr, evalErr)
	_, err := fmt.Fprintf(d.w, "%s %v\n", d.errorLabel.Sprint("error:"), evalErr)
	return err
}

func (d *driver) logf(format string, args ...interface{}) {
	if d.opts.Logger != nil {
		d.opts.Logger.Printf(format, args...)
	}
}
