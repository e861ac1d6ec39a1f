package patchfmt

import (
	"fmt"
	"io"

	"github.com/fwojciec/diffstory/editscript"
)

// EmitUnified writes the unified-diff body for script over
// file0/file1 per spec.md §4.6. It does not write the header (see
// WriteUnifiedHeader). A nil or empty script produces no output.
func EmitUnified(w io.Writer, file0, file1 FileView, script *editscript.Script, cfg Config) error {
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

		if _, err := fmt.Fprintf(w, "@@ -%s +%s @@%s\n",
			unifiedRange(file0, first0, last0), unifiedRange(file1, first1, last1), label); err != nil {
			return err
		}

		return interleaveUnified(w, cfg, file0, file1, start, first0, last0, first1, last1)
	})
}

// interleaveUnified performs the §4.6 step-5 loop: walk cursors i
// (file 0) and j (file 1) alongside the change chain rooted at start,
// emitting context lines where no change applies and delete/insert
// runs where one does.
func interleaveUnified(w io.Writer, cfg Config, file0, file1 FileView, start *editscript.Change, first0, last0, first1, last1 int) error {
	i, j := first0, first1
	cur := start

	for i <= last0 || j <= last1 {
		if cur == nil || i < cur.Line0 {
			line := file0.Line(i)
			prefix := unifiedContextPrefix(cfg, line)
			missingNL := file0.MissingNewline() && i == file0.LineCount()-1
			if err := print1Line(w, cfg, prefix, line, missingNL); err != nil {
				return err
			}
			i++
			j++
			continue
		}

		for k := 0; k < cur.Deleted; k++ {
			line := file0.Line(i)
			prefix := unifiedChangePrefix(cfg, '-', line)
			missingNL := file0.MissingNewline() && i == file0.LineCount()-1
			if err := print1Line(w, cfg, prefix, line, missingNL); err != nil {
				return err
			}
			i++
		}
		for k := 0; k < cur.Inserted; k++ {
			line := file1.Line(j)
			prefix := unifiedChangePrefix(cfg, '+', line)
			missingNL := file1.MissingNewline() && j == file1.LineCount()-1
			if err := print1Line(w, cfg, prefix, line, missingNL); err != nil {
				return err
			}
			j++
		}
		cur = cur.Next
	}

	return nil
}
