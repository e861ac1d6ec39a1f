package patchfmt

import (
	"io"

	"github.com/fwojciec/diffstory/editscript"
)

// Style selects which of the two formatters Emit drives.
type Style int

const (
	Unified Style = iota
	Context
)

// Emit writes a complete header+body diff for script over
// file0/file1 in the given Style, per spec.md §6. A nil script
// produces no output at all, matching the "no diff means no output"
// convention both formatters share for these two styles.
func Emit(w io.Writer, style Style, file0, file1 FileView, script *editscript.Script, cfg Config) error {
	if script == nil || script.Head == nil {
		return nil
	}

	switch style {
	case Context:
		if err := WriteContextHeader(w, cfg, file0, file1); err != nil {
			return err
		}
		return EmitContext(w, file0, file1, script, cfg)
	default:
		if err := WriteUnifiedHeader(w, cfg, file0, file1); err != nil {
			return err
		}
		return EmitUnified(w, file0, file1, script, cfg)
	}
}
