// Package lineindex provides read-only, origin-0 random access to a
// file's lines, translating internal line numbers to the origin-1
// "real" numbers downstream patch tools expect.
package lineindex

// LineIndex is the FileView spec.md §3 describes: a read-only view
// over a file's lines, addressable by internal index in
// [-PrefixLines, LineCount), with translation to real (origin-1)
// numbers.
type LineIndex struct {
	lines          [][]byte
	prefixLines    int
	name           string
	label          string
	modSeconds     int64
	modNanos       int64
	missingNewline bool
}

// New builds a LineIndex over lines, where lines[0] corresponds to
// internal index -prefixLines. name identifies the file for headers;
// SetLabel overrides it, and SetMissingNewline marks that the file's
// final line has no trailing newline (spec.md §4.8).
func New(lines [][]byte, prefixLines int, name string, modSeconds, modNanos int64) *LineIndex {
	return &LineIndex{
		lines:       lines,
		prefixLines: prefixLines,
		name:        name,
		modSeconds:  modSeconds,
		modNanos:    modNanos,
	}
}

// SetLabel overrides the name used in headers.
func (li *LineIndex) SetLabel(label string) { li.label = label }

// SetMissingNewline marks that the file's last line lacks a trailing
// newline.
func (li *LineIndex) SetMissingNewline(v bool) { li.missingNewline = v }

// Line returns the bytes of the line at internal index i, which must
// be in [-PrefixLines, LineCount).
func (li *LineIndex) Line(i int) []byte {
	return li.lines[i+li.prefixLines]
}

// LineCount is the number of lines at non-negative internal indices.
func (li *LineIndex) LineCount() int {
	return len(li.lines) - li.prefixLines
}

// PrefixLines is the count of untracked leading identical lines.
func (li *LineIndex) PrefixLines() int { return li.prefixLines }

// Name returns the label override if set, otherwise the file's name.
func (li *LineIndex) Name() string {
	if li.label != "" {
		return li.label
	}
	return li.name
}

// HasLabel reports whether a label override is active.
func (li *LineIndex) HasLabel() bool { return li.label != "" }

// ModTime returns the file's modification time as seconds and
// nanoseconds.
func (li *LineIndex) ModTime() (seconds, nanos int64) { return li.modSeconds, li.modNanos }

// MissingNewline reports whether the file's final line lacks a
// trailing newline.
func (li *LineIndex) MissingNewline() bool { return li.missingNewline }

// Translate converts an internal [a, b] range to real (origin-1) line
// numbers, per spec.md §4.5. Internal index 0 is the first line after
// the PrefixLines untracked leading lines, so the real line number
// carries that offset too: real = internal + prefixLines + 1, matching
// GNU diffutils' translate_line_number (original_source/src/diff.h).
func (li *LineIndex) Translate(a, b int) (realA, realB int) {
	return a + li.prefixLines + 1, b + li.prefixLines + 1
}
