package editscript

// Matcher is a compiled regex collaborator per spec.md §6: Search
// returns a non-negative offset on a match within data[offset:offset+length],
// or a negative number when there is no match. A nil Matcher is always
// "absent" (never matches), matching the ConfigOptions convention that
// presence of a Matcher means the feature is active.
type Matcher interface {
	Search(data []byte, offset, length int) int
}

// LineSource hands IgnorePolicy and FunctionFinder read access to a
// file's raw line bytes (without the trailing newline) by internal
// index. It is the minimal slice of lineindex.LineIndex's contract
// these two components need.
type LineSource interface {
	Line(i int) []byte
}

// Config carries the subset of ConfigOptions (spec.md §3) that
// IgnorePolicy and HunkGrouper consult.
type Config struct {
	ContextLines     int
	IgnoreBlankLines bool
	IgnoreRegex      Matcher
}

// isBlank reports whether line consists solely of whitespace.
func isBlank(line []byte) bool {
	for _, b := range line {
		switch b {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			continue
		default:
			return false
		}
	}
	return true
}

// lineIgnorable implements the predicate from spec.md §4.2: a line is
// ignorable iff it is blank and ignore_blank_lines is on, or
// ignore_regex is present and matches it.
func lineIgnorable(cfg Config, line []byte) bool {
	if cfg.IgnoreBlankLines && isBlank(line) {
		return true
	}
	if cfg.IgnoreRegex != nil && cfg.IgnoreRegex.Search(line, 0, len(line)) >= 0 {
		return true
	}
	return false
}

// NewIgnorable builds the Ignorable predicate Analyze needs, backed by
// the two LineSources (file 0 and file 1) and the active Config.
func NewIgnorable(cfg Config, file0, file1 LineSource) Ignorable {
	return func(file int, index int) bool {
		var src LineSource
		if file == 0 {
			src = file0
		} else {
			src = file1
		}
		return lineIgnorable(cfg, src.Line(index))
	}
}

// PrepareScript pre-marks every Change's Ignore flag per spec.md §4.2.
// When neither ignore_blank_lines nor ignore_regex is active, every
// Change is marked significant (Ignore = false) without inspecting any
// line. Otherwise each Change is analyzed in isolation — the
// detach/reattach idiom spec.md §9 describes is realized here as a
// one-element AnalyzeRun call per Change. The Change is flagged Ignore
// before that call so that only its lines decide the outcome: it keeps
// Ignore = true exactly when Analyze reports Unchanged.
func PrepareScript(script *Script, cfg Config, file0, file1 LineSource) {
	active := cfg.IgnoreBlankLines || cfg.IgnoreRegex != nil
	if !active {
		for c := script.Head; c != nil; c = c.Next {
			c.Ignore = false
		}
		return
	}

	ignorable := NewIgnorable(cfg, file0, file1)
	for c := script.Head; c != nil; c = c.Next {
		c.Ignore = true
		result := AnalyzeRun(c, c, ignorable)
		c.Ignore = result.Kind == Unchanged
	}
}
