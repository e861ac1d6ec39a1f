package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/diffstory/editscript"
	"github.com/fwojciec/diffstory/enginediff"
	"github.com/fwojciec/diffstory/lineindex"
	"github.com/fwojciec/diffstory/patchfmt"
)

// ErrNoChanges is returned by App.Run when the two inputs are identical.
var ErrNoChanges = errors.New("no changes")

// App computes and formats a diff between two files, the way the `diff`
// command line tool does: read both sides, build an edit script, then
// emit it as a context or unified patch.
type App struct {
	File0Path string
	File1Path string

	Style   patchfmt.Style
	Context int

	Output io.Writer
}

// Run reads File0Path and File1Path, diffs them, and writes the
// formatted patch to Output. It returns ErrNoChanges if the files are
// identical.
func (a *App) Run() error {
	data0, err := os.ReadFile(a.File0Path)
	if err != nil {
		return fmt.Errorf("diffstory: read %s: %w", a.File0Path, err)
	}
	data1, err := os.ReadFile(a.File1Path)
	if err != nil {
		return fmt.Errorf("diffstory: read %s: %w", a.File1Path, err)
	}

	script := enginediff.Diff(string(data0), string(data1))
	if script.Head == nil {
		return ErrNoChanges
	}

	info0, err := os.Stat(a.File0Path)
	if err != nil {
		return fmt.Errorf("diffstory: stat %s: %w", a.File0Path, err)
	}
	info1, err := os.Stat(a.File1Path)
	if err != nil {
		return fmt.Errorf("diffstory: stat %s: %w", a.File1Path, err)
	}

	view0 := fileView(data0, a.File0Path, info0.ModTime().Unix())
	view1 := fileView(data1, a.File1Path, info1.ModTime().Unix())

	cfg := patchfmt.Config{ContextLines: a.Context}

	return safeEmit(a.Output, a.Style, view0, view1, script, cfg)
}

// safeEmit calls patchfmt.Emit and recovers editscript.InvariantError,
// turning the one fatal edit-script defect editscript.InvariantError's
// own comment calls "not recoverable" into a plain returned error instead of a raw
// panic — so a corrupt edit script surfaces as a diagnostic at this
// boundary (App.Run, and transitively each per-pair goroutine in
// batch.go) rather than crashing the process or the whole batch. Any
// other panic is not ours to interpret and is re-raised unchanged.
func safeEmit(w io.Writer, style patchfmt.Style, f0, f1 patchfmt.FileView, script *editscript.Script, cfg patchfmt.Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(editscript.InvariantError); ok {
				err = fmt.Errorf("diffstory: %w", ie)
				return
			}
			panic(r)
		}
	}()
	return patchfmt.Emit(w, style, f0, f1, script, cfg)
}

// fileView splits data into lines and wraps it as a patchfmt.FileView,
// recording whether the final line lacks a trailing newline.
func fileView(data []byte, name string, modSeconds int64) *lineindex.LineIndex {
	lines, missingNewline := splitLines(data)
	li := lineindex.New(lines, 0, name, modSeconds, 0)
	li.SetMissingNewline(missingNewline)
	return li
}

// splitLines splits data on "\n", dropping the terminating newline from
// each line and reporting whether the final line had none.
func splitLines(data []byte) ([][]byte, bool) {
	if len(data) == 0 {
		return nil, false
	}

	missingNewline := data[len(data)-1] != '\n'
	raw := bytes.Split(data, []byte("\n"))
	if !missingNewline {
		raw = raw[:len(raw)-1]
	}
	return raw, missingNewline
}
