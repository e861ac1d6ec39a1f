// Package patchfmt implements the classic context-diff and unified-diff
// hunk formatters: the two concrete emitters that walk a
// editscript.Script and a pair of FileViews and write a byte stream
// following the POSIX context/unified conventions.
package patchfmt

import "github.com/fwojciec/diffstory/editscript"

// FileView is the read-only line-indexed view the emitters read
// through; lineindex.LineIndex satisfies it.
type FileView interface {
	Line(i int) []byte
	LineCount() int
	PrefixLines() int
	Name() string
	HasLabel() bool
	ModTime() (seconds, nanos int64)
	MissingNewline() bool
	Translate(a, b int) (realA, realB int)
}

// TimeFormatter formats a modification time for the header line. It
// returns false on formatting failure, in which case the caller falls
// back to a decimal "seconds.nanoseconds" rendering (spec.md §4.9,
// §7.3).
type TimeFormatter interface {
	FormatTime(format string, seconds, nanos int64) (string, bool)
}

// Config is spec.md §3's ConfigOptions.
type Config struct {
	ContextLines       int
	IgnoreBlankLines   bool
	IgnoreRegex        editscript.Matcher
	FunctionRegex      editscript.Matcher
	InitialTab         bool
	SuppressBlankEmpty bool
	TabSize            int
	ExpandTabs         bool
	TimeFormat         string
	FileLabels         [2]string
	Time               TimeFormatter
}

func (c Config) editConfig() editscript.Config {
	return editscript.Config{
		ContextLines:     c.ContextLines,
		IgnoreBlankLines: c.IgnoreBlankLines,
		IgnoreRegex:      c.IgnoreRegex,
	}
}
