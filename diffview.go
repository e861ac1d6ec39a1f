// Package diffview provides domain types for parsing and viewing diffs.
package diffview

import "io/fs"

// Diff represents a complete diff containing one or more file changes.
type Diff struct {
	Files []FileDiff
}

// FileDiff represents changes to a single file.
type FileDiff struct {
	OldPath   string      // "file.go" (no "a/" prefix) or empty for new files
	NewPath   string      // "file.go" (no "b/" prefix) or empty for deleted files
	Operation FileOp      // Added, Deleted, Modified, Renamed, Copied
	IsBinary  bool        // Binary files have no hunks
	OldMode   fs.FileMode // 0 if unchanged
	NewMode   fs.FileMode // For permission changes
	Hunks     []Hunk
	Extended  []string // Raw extended headers for passthrough
}

// FileOp represents the type of operation performed on a file.
type FileOp int

// File operation types.
const (
	FileModified FileOp = iota
	FileAdded
	FileDeleted
	FileRenamed
	FileCopied
)

// Hunk represents a contiguous block of changes within a file.
type Hunk struct {
	OldStart int    // From @@ -X,...
	OldCount int    // From @@ -X,Y ...
	NewStart int    // From @@ ...,+X
	NewCount int    // From @@ ...,+X,Y
	Section  string // Optional function name after @@ ... @@
	Lines    []Line
}

// Line represents a single line within a hunk.
type Line struct {
	Type       LineType
	Content    string
	OldLineNum int  // 0 if line is Added
	NewLineNum int  // 0 if line is Deleted
	NoNewline  bool // "\ No newline at end of file" marker
}

// LineType represents the type of a diff line.
type LineType int

// Line types.
const (
	LineContext LineType = iota
	LineAdded
	LineDeleted
)

// Style describes the visual presentation of a token.
type Style struct {
	Foreground string
	Bold       bool
}

// Token is a lexical unit of source code carrying a display style.
type Token struct {
	Text  string
	Style Style
}

// Tokenizer extracts syntax tokens from source code for display.
type Tokenizer interface {
	// Tokenize splits source into styled tokens for the given language.
	// Returns nil if the language is not supported.
	Tokenize(language, source string) []Token
}

// LanguageDetector infers a syntax-highlighting language from a file path.
type LanguageDetector interface {
	// Detect returns the language identifier for path, or "" if unknown.
	Detect(path string) string
}

// Segment is a span of text within a line, marked as changed or unchanged
// relative to the line it is paired with in a word-level diff.
type Segment struct {
	Text    string
	Changed bool
}

// WordDiffer computes a word/character-level diff between two lines,
// used to highlight the precise change within a replaced line.
type WordDiffer interface {
	// Diff returns the segments of old and new that differ.
	Diff(old, new string) (oldSegments, newSegments []Segment)
}
