package ui

import (
	"fmt"
	"io"
)

// Printer writes user-facing messages with a palette.
type Printer struct {
	out     io.Writer
	palette *Palette
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, palette *Palette) *Printer {
	return &Printer{out: out, palette: palette}
}

// Palette returns the printer's palette.
func (pr *Printer) Palette() *Palette {
	return pr.palette
}

// Writer returns the underlying writer.
func (pr *Printer) Writer() io.Writer {
	return pr.out
}

// SuccessMsg prints a success message.
func (pr *Printer) SuccessMsg(format string, args ...interface{}) {
	pr.palette.Success.Fprintf(pr.out, pr.palette.Symbols.Success+" "+format+"\n", args...)
}

// ErrorMsg prints an error message.
func (pr *Printer) ErrorMsg(format string, args ...interface{}) {
	pr.palette.Error.Fprintf(pr.out, pr.palette.Symbols.Error+" "+format+"\n", args...)
}

// WarningMsg prints a warning message.
func (pr *Printer) WarningMsg(format string, args ...interface{}) {
	pr.palette.Warning.Fprintf(pr.out, pr.palette.Symbols.Warning+" "+format+"\n", args...)
}

// InfoMsg prints an info message.
func (pr *Printer) InfoMsg(format string, args ...interface{}) {
	pr.palette.Info.Fprintf(pr.out, pr.palette.Symbols.Info+" "+format+"\n", args...)
}

// HeaderMsg prints a header line prefixed with the arrow symbol.
func (pr *Printer) HeaderMsg(format string, args ...interface{}) {
	pr.palette.Header.Fprint(pr.out, pr.palette.Symbols.Arrow+" ")
	fmt.Fprintf(pr.out, format+"\n", args...)
}

// MutedMsg prints a muted (dim) message.
func (pr *Printer) MutedMsg(format string, args ...interface{}) {
	pr.palette.Muted.Fprintf(pr.out, format+"\n", args...)
}

// Println prints a plain line with formatting.
func (pr *Printer) Println(format string, args ...interface{}) {
	fmt.Fprintf(pr.out, format+"\n", args...)
}
