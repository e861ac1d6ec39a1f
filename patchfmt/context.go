package patchfmt

import (
	"fmt"
	"io"

	"github.com/fwojciec/diffstory/editscript"
)

// EmitContext writes the classic context-diff body for script over
// file0/file1 per spec.md §4.4. It does not write the header (see
// WriteContextHeader); callers typically emit the header once, then
// EmitContext for the body. A nil or empty script produces no output.
func EmitContext(w io.Writer, file0, file1 FileView, script *editscript.Script, cfg Config) error {
	if script == nil || script.Head == nil {
		return nil
	}

	ecfg := cfg.editConfig()
	editscript.PrepareScript(script, ecfg, file0, file1)
	ignorable := editscript.NewIgnorable(ecfg, file0, file1)
	ff := editscript.NewFunctionFinder(cfg.FunctionRegex, file0.PrefixLines())

	return forEachHunk(script, ecfg, ignorable, func(start, end *editscript.Change, result editscript.Result) error {
		if result.Kind == editscript.Unchanged {
			return nil
		}

		first0 := max(result.First0-cfg.ContextLines, -file0.PrefixLines())
		first1 := max(result.First1-cfg.ContextLines, -file1.PrefixLines())
		last0 := min(result.Last0+cfg.ContextLines, file0.LineCount()-1)
		last1 := min(result.Last1+cfg.ContextLines, file1.LineCount()-1)

		label := ""
		if cfg.FunctionRegex != nil {
			if line, ok := ff.Find(file0, first0); ok {
				label = editscript.FormatLabel(line)
			}
		}

		if _, err := fmt.Fprintf(w, "***************%s\n", label); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "*** %s ****\n", contextRange(file0, first0, last0)); err != nil {
			return err
		}

		if result.Kind == editscript.Old || result.Kind == editscript.Changed {
			if err := emitContextSide(w, cfg, file0, first0, last0, start, true); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "--- %s ----\n", contextRange(file1, first1, last1)); err != nil {
			return err
		}

		if result.Kind == editscript.New || result.Kind == editscript.Changed {
			if err := emitContextSide(w, cfg, file1, first1, last1, start, false); err != nil {
				return err
			}
		}

		return nil
	})
}

// emitContextSide prints the [first, last] window of one side of a
// context hunk, walking the change chain (rooted at hunkStart) in
// lockstep to pick the right prefix character for each line.
func emitContextSide(w io.Writer, cfg Config, fv FileView, first, last int, hunkStart *editscript.Change, side0 bool) error {
	cur := hunkStart
	for i := first; i <= last; i++ {
		for cur != nil {
			begin, end := changeSpan(cur, side0)
			if i >= end && cur.Next != nil {
				cur = cur.Next
				continue
			}
			_ = begin
			break
		}

		marker := byte(' ')
		if cur != nil {
			begin, end := changeSpan(cur, side0)
			if i >= begin && i < end {
				switch {
				case cur.Deleted > 0 && cur.Inserted > 0:
					marker = '!'
				case side0:
					marker = '-'
				default:
					marker = '+'
				}
			}
		}

		line := fv.Line(i)
		prefix := string(marker) + " "
		missingNL := fv.MissingNewline() && i == fv.LineCount()-1
		if err := print1Line(w, cfg, prefix, line, missingNL); err != nil {
			return err
		}
	}
	return nil
}

func changeSpan(c *editscript.Change, side0 bool) (begin, end int) {
	if side0 {
		return c.Line0, c.Line0 + c.Deleted
	}
	return c.Line1, c.Line1 + c.Inserted
}
