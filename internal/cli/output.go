package cli

import (
	"fmt"
	"io"
	"os"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
)

// Printer formats user-facing output. It is passed explicitly to every layer
// that reports to the user; there is no package-level printing state.
type Printer struct {
	// NoColor disables ANSI colors.
	NoColor bool
	// Quiet suppresses non-error output.
	Quiet bool
	// Out receives informational output (defaults to stdout).
	Out io.Writer
	// Err receives error output (defaults to stderr).
	Err io.Writer
}

// NewPrinter creates a Printer writing to the process streams.
func NewPrinter(noColor, quiet bool) *Printer {
	return &Printer{
		NoColor: noColor,
		Quiet:   quiet,
		Out:     os.Stdout,
		Err:     os.Stderr,
	}
}

// Infof prints an informational message.
func (p *Printer) Infof(format string, args ...interface{}) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Successf prints a success message.
func (p *Printer) Successf(format string, args ...interface{}) {
	if p.Quiet {
		return
	}
	if p.NoColor {
		fmt.Fprintf(p.Out, "✓ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.Out, "%s✓%s "+format+"\n", append([]interface{}{colorGreen, colorReset}, args...)...)
	}
}

// Warnf prints a warning message.
func (p *Printer) Warnf(format string, args ...interface{}) {
	if p.Quiet {
		return
	}
	if p.NoColor {
		fmt.Fprintf(p.Out, "⚠ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.Out, "%s⚠%s "+format+"\n", append([]interface{}{colorYellow, colorReset}, args...)...)
	}
}

// Errorf prints an error message to the error stream.
func (p *Printer) Errorf(format string, args ...interface{}) {
	if p.NoColor {
		fmt.Fprintf(p.Err, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.Err, "%s✗%s "+format+"\n", append([]interface{}{colorRed, colorReset}, args...)...)
	}
}

// Progressf prints a progress indicator.
func (p *Printer) Progressf(format string, args ...interface{}) {
	if p.Quiet {
		return
	}
	if p.NoColor {
		fmt.Fprintf(p.Out, "→ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.Out, "%s→%s "+format+"\n", append([]interface{}{colorBlue, colorReset}, args...)...)
	}
}
