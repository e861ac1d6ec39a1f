package patchfmt

import (
	"bytes"
	"fmt"
	"io"
)

// noNewlineMarker is spec.md §4.8's sentinel line, emitted after any
// line flagged as lacking a final newline.
const noNewlineMarker = "\\ No newline at end of file\n"

// print1Line writes prefix (if non-empty) followed by line's bytes and
// a terminating newline, honoring Config.ExpandTabs/TabSize. line must
// not itself contain a trailing newline — lineindex.LineIndex.Line
// returns line content without one. If missingNewline is true, the
// "\ No newline..." sentinel line is written after that newline.
func print1Line(w io.Writer, cfg Config, prefix string, line []byte, missingNewline bool) error {
	if prefix != "" {
		if _, err := io.WriteString(w, prefix); err != nil {
			return err
		}
	}

	out := line
	if cfg.ExpandTabs {
		out = expandTabs(line, cfg.TabSize)
	}
	if _, err := w.Write(out); err != nil {
		return err
	}

	if missingNewline {
		_, err := io.WriteString(w, "\n"+noNewlineMarker)
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// expandTabs replaces tab bytes with spaces up to the next tabsize
// column boundary.
func expandTabs(line []byte, tabsize int) []byte {
	if tabsize <= 0 {
		tabsize = 8
	}
	if !bytes.ContainsRune(line, '\t') {
		return line
	}

	var buf bytes.Buffer
	col := 0
	for _, b := range line {
		if b == '\t' {
			spaces := tabsize - (col % tabsize)
			for i := 0; i < spaces; i++ {
				buf.WriteByte(' ')
			}
			col += spaces
			continue
		}
		buf.WriteByte(b)
		col++
	}
	return buf.Bytes()
}

// unifiedContextPrefix is the prefix for an unchanged line interleaved
// into a unified hunk, per spec.md §4.6: a tab when initial_tab is
// set, a space otherwise, suppressed entirely for a blank line when
// suppress_blank_empty is set.
func unifiedContextPrefix(cfg Config, line []byte) string {
	if cfg.SuppressBlankEmpty && len(line) == 0 {
		return ""
	}
	if cfg.InitialTab {
		return "\t"
	}
	return " "
}

// unifiedChangePrefix is the prefix for a deleted/inserted line in a
// unified hunk: the marker character, plus a tab when initial_tab is
// set and the line is not a suppressed blank line.
func unifiedChangePrefix(cfg Config, marker byte, line []byte) string {
	if cfg.InitialTab && !(cfg.SuppressBlankEmpty && len(line) == 0) {
		return fmt.Sprintf("%c\t", marker)
	}
	return fmt.Sprintf("%c", marker)
}
