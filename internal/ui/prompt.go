package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"pacyao/pkg/selection"

	"github.com/manifoldco/promptui"
)

// NewLineReader returns a selection.LineReader reading from in.
// Interactive readers use promptui line editing; others read plain lines,
// which keeps piped input working.
func NewLineReader(in io.Reader, out io.Writer, interactive bool) selection.LineReader {
	if interactive {
		return &promptReader{in: in, out: out}
	}
	return &plainReader{in: bufio.NewReader(in), out: out}
}

// promptReader reads a line through promptui.
type promptReader struct {
	in  io.Reader
	out io.Writer
}

// ReadLine implements selection.LineReader.
func (r *promptReader) ReadLine(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }} ",
			Valid:   "{{ . }} ",
			Invalid: "{{ . }} ",
			Success: "{{ . }} ",
		},
		Stdin:  io.NopCloser(r.in),
		Stdout: nopWriteCloser{r.out},
	}

	result, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
			return "", selection.ErrCancelled
		}
		return "", err
	}

	return result, nil
}

// plainReader reads newline-terminated input without line editing.
type plainReader struct {
	in  *bufio.Reader
	out io.Writer
}

// ReadLine implements selection.LineReader.
func (r *plainReader) ReadLine(label string) (string, error) {
	if label != "" {
		fmt.Fprint(r.out, label+" ")
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		// Accept a final line without a trailing newline
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
