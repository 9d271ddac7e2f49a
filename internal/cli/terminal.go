package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/file-translator/file-translator/internal/encode"
)

// terminalInteraction reports a run on the terminal and writes the artifact
// into outDir.
type terminalInteraction struct {
	out     io.Writer
	errOut  io.Writer
	outDir  string
	spinner *spinner.Spinner
	written string
}

func newTerminalInteraction(out, errOut io.Writer, outDir string, animate bool) *terminalInteraction {
	t := &terminalInteraction{out: out, errOut: errOut, outDir: outDir}
	if animate {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Writer = errOut
		t.spinner = s
	}
	return t
}

func (t *terminalInteraction) stopSpinner() {
	if t.spinner != nil && t.spinner.Active() {
		t.spinner.Stop()
	}
}

func (t *terminalInteraction) Info(msg string) {
	if t.spinner != nil {
		t.spinner.Suffix = " " + msg
		t.spinner.Start()
		return
	}
	fmt.Fprintf(t.out, "ℹ %s\n", msg)
}

func (t *terminalInteraction) Warn(msg string) {
	t.stopSpinner()
	fmt.Fprintln(t.out, color.YellowString("⚠ %s", msg))
}

func (t *terminalInteraction) Error(msg string) {
	t.stopSpinner()
	fmt.Fprintln(t.errOut, color.RedString("✗ %s", msg))
}

func (t *terminalInteraction) Success(msg string) {
	t.stopSpinner()
	fmt.Fprintln(t.out, color.GreenString("✓ %s", msg))
	if t.written != "" {
		fmt.Fprintf(t.out, "  %s\n", t.written)
	}
}

func (t *terminalInteraction) Offer(a *encode.Artifact) error {
	t.stopSpinner()
	if err := os.MkdirAll(t.outDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(t.outDir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0644); err != nil {
		return err
	}
	t.written = path
	return nil
}
