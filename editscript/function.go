package editscript

import "bytes"

// FunctionFinder labels a hunk with the nearest enclosing function
// header per spec.md §4.7. It carries the lastSearch/lastMatch cursors
// as emitter-local fields, per spec.md §5 and §9 — never as package
// state — so a FunctionFinder must be constructed fresh for each
// top-level emit pass and discarded afterward.
type FunctionFinder struct {
	regex      Matcher
	lastSearch int
	lastMatch  int
	hasMatch   bool
}

// NewFunctionFinder returns a FunctionFinder scoped to a single emit
// pass over a file whose common prefix is prefixLines lines long. The
// search cursor starts at -prefixLines, matching spec.md §5's
// reinitialization rule.
func NewFunctionFinder(regex Matcher, prefixLines int) *FunctionFinder {
	return &FunctionFinder{regex: regex, lastSearch: -prefixLines}
}

// Find scans file downward from linenum (exclusive) looking for the
// nearest preceding line matching the function regex, per spec.md
// §4.7. It returns the matching line's bytes and true, or nil and
// false if no function header has ever matched during this pass.
func (f *FunctionFinder) Find(file LineSource, linenum int) ([]byte, bool) {
	if f.regex == nil {
		return nil, false
	}

	previous := f.lastSearch
	f.lastSearch = linenum

	for i := linenum - 1; i >= previous; i-- {
		line := file.Line(i)
		if f.regex.Search(line, 0, len(line)) >= 0 {
			f.lastMatch = i
			f.hasMatch = true
			return line, true
		}
	}

	if f.hasMatch {
		return file.Line(f.lastMatch), true
	}
	return nil, false
}

// FormatLabel renders a function header line per spec.md §4.7's caller
// contract: a leading space, leading whitespace skipped, at most 40
// bytes up to the first newline, right-trimmed.
func FormatLabel(line []byte) string {
	const maxLen = 40

	i := 0
	for i < len(line) {
		switch line[i] {
		case ' ', '\t':
			i++
			continue
		}
		break
	}
	line = line[i:]

	if nl := bytes.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	if len(line) > maxLen {
		line = line[:maxLen]
	}

	end := len(line)
	for end > 0 {
		switch line[end-1] {
		case ' ', '\t', '\r', '\v', '\f':
			end--
			continue
		}
		break
	}
	line = line[:end]

	return " " + string(line)
}
