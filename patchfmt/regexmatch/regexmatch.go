// Package regexmatch adapts github.com/dlclark/regexp2 to the
// editscript.Matcher contract (spec.md §6): Search returns the match
// offset within data[offset:offset+length], or a negative number on
// no match. regexp2 is already pulled in transitively by this
// module's chroma lexer dependency; this package promotes it to a
// direct, exercised dependency rather than leaving it dead weight.
package regexmatch

import "github.com/dlclark/regexp2"

// Matcher wraps a compiled regexp2.Regexp.
type Matcher struct {
	re *regexp2.Regexp
}

// Compile compiles pattern with default regexp2 options.
func Compile(pattern string) (*Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}
	return &Matcher{re: re}, nil
}

// MustCompile is Compile, panicking on error.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Search implements editscript.Matcher. Per spec.md §7.2, a search
// failure (an engine error from regexp2) is treated as "no match", not
// surfaced.
func (m *Matcher) Search(data []byte, offset, length int) int {
	if m == nil || m.re == nil {
		return -1
	}
	end := offset + length
	if end > len(data) {
		end = len(data)
	}
	if offset < 0 || offset > len(data) {
		return -1
	}

	match, err := m.re.FindStringMatch(string(data[offset:end]))
	if err != nil || match == nil {
		return -1
	}
	return offset + match.Index
}
