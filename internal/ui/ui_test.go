package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"pacyao/pkg/search"
	"pacyao/pkg/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRecords = []search.Record{
	{
		Repo:        "extra",
		Name:        "gvfs-mtp",
		Version:     "1.30.3-1",
		Group:       "(gnome)",
		Installed:   "[installed]",
		Description: "Virtual filesystem implementation for GIO (MTP backend; Android, media player)",
	},
	{
		Repo:        "aur",
		Name:        "android-studio",
		Version:     "2.2.3.0-1",
		Votes:       "(626, 22.50)",
		Installed:   "[installed]",
		Description: "The official Android IDE (Stable branch)",
	},
}

func TestNewPalette_Disabled(t *testing.T) {
	p := NewPalette(false, true)

	assert.False(t, p.Enabled())
	assert.Equal(t, "plain", p.Name.Sprint("plain"))
	assert.Equal(t, "plain", p.Repo("unknown-repo").Sprint("plain"))
	assert.Equal(t, "plain", p.Bold("plain"))
}

func TestNewPalette_Enabled(t *testing.T) {
	p := NewPalette(true, true)

	assert.True(t, p.Enabled())
	assert.Contains(t, p.Name.Sprint("name"), "\x1b[")
	assert.Contains(t, p.Repo("aur").Sprint("aur"), "\x1b[")
}

func TestPalettesAreIndependent(t *testing.T) {
	colored := NewPalette(true, true)
	plain := NewPalette(false, true)

	assert.Contains(t, colored.Version.Sprint("1.0"), "\x1b[")
	assert.Equal(t, "1.0", plain.Version.Sprint("1.0"))
}

func TestSymbols(t *testing.T) {
	assert.Equal(t, "✓", NewPalette(false, true).Symbols.Success)
	assert.Equal(t, "[OK]", NewPalette(false, false).Symbols.Success)
	assert.Equal(t, "#", NewPalette(false, false).Symbols.Number)
}

func TestFormatRecord(t *testing.T) {
	p := NewPalette(false, true)

	assert.Equal(t,
		"1 extra/gvfs-mtp 1.30.3-1 (gnome) [installed]\n"+
			"    Virtual filesystem implementation for GIO (MTP backend; Android, media player)",
		FormatRecord(p, 1, 1, sampleRecords[0]))

	assert.Equal(t,
		" 2 aur/android-studio 2.2.3.0-1 (626, 22.50) [installed]\n"+
			"     The official Android IDE (Stable branch)",
		FormatRecord(p, 2, 2, sampleRecords[1]))
}

func TestFormatRecord_NoOptionalFields(t *testing.T) {
	p := NewPalette(false, true)
	r := search.Record{Repo: "core", Name: "bash", Version: "5.1-1", Description: "The GNU Bourne Again shell"}

	assert.Equal(t, "3 core/bash 5.1-1\n    The GNU Bourne Again shell", FormatRecord(p, 3, 1, r))
}

func TestPrintRecords(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf, NewPalette(false, true))

	pr.PrintRecords(sampleRecords)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "1 extra/gvfs-mtp"))
	assert.True(t, strings.HasPrefix(lines[2], "2 aur/android-studio"))
}

func TestPrinterMessages(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf, NewPalette(false, false))

	pr.InfoMsg("searching %s", "vim")
	pr.WarningMsg("careful")
	pr.ErrorMsg("failed: %d", 2)
	pr.SuccessMsg("done")
	pr.MutedMsg("quiet")
	pr.HeaderMsg("header")
	pr.Println("plain %s", "line")

	assert.Equal(t,
		"-> searching vim\n"+
			"[WARN] careful\n"+
			"[ERROR] failed: 2\n"+
			"[OK] done\n"+
			"quiet\n"+
			"==> header\n"+
			"plain line\n",
		buf.String())
}

func TestPrintSelectionHelp(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf, NewPalette(false, true))

	pr.PrintSelectionHelp()

	assert.Contains(t, buf.String(), "==> Enter n° of packages to be installed (ex: 1 2 3 or 1-3)")
	assert.Equal(t, "==>", pr.SelectionLabel())
}

func TestPlainReader(t *testing.T) {
	var out bytes.Buffer
	r := NewLineReader(strings.NewReader("1 2\r\n3-4"), &out, false)

	line, err := r.ReadLine("==>")
	require.NoError(t, err)
	assert.Equal(t, "1 2", line)

	line, err = r.ReadLine("==>")
	require.NoError(t, err)
	assert.Equal(t, "3-4", line)

	_, err = r.ReadLine("==>")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "==> ==> ==> ", out.String())
}

func TestPlainReaderWithPromptLoop(t *testing.T) {
	r := NewLineReader(strings.NewReader("1-2\n"), io.Discard, false)

	indices, err := selection.Prompt(t.Context(), r, selection.PromptOptions{Label: "==>"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, indices)
}

func TestPlainReaderEOFCancels(t *testing.T) {
	r := NewLineReader(strings.NewReader(""), io.Discard, false)

	_, err := selection.Prompt(t.Context(), r, selection.PromptOptions{})
	assert.ErrorIs(t, err, selection.ErrCancelled)
}

func TestDisabledSpinner(t *testing.T) {
	var buf bytes.Buffer
	sp := NewSpinner("Searching", &buf, NewPalette(false, true), false)

	sp.Start()
	sp.Stop()
	assert.Empty(t, buf.String())

	called := false
	err := WithSpinner("Searching", &buf, NewPalette(false, true), false, func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))
}
