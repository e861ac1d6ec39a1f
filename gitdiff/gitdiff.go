// Package gitdiff parses unified git diffs into diffview domain types
// using github.com/bluekeyes/go-gitdiff.
package gitdiff

import (
	"io"
	"io/fs"
	"strings"

	upstream "github.com/bluekeyes/go-gitdiff/gitdiff"
	diffview "github.com/fwojciec/diffstory"
)

// Compile-time interface verification.
var _ diffview.Parser = (*Parser)(nil)

// Parser parses git-formatted unified diffs.
type Parser struct{}

// NewParser creates a new git diff parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a git unified diff and converts it into diffview domain types.
func (p *Parser) Parse(r io.Reader) (*diffview.Diff, error) {
	files, _, err := upstream.Parse(r)
	if err != nil {
		return nil, err
	}

	diff := &diffview.Diff{Files: make([]diffview.FileDiff, 0, len(files))}
	for _, f := range files {
		diff.Files = append(diff.Files, convertFile(f))
	}

	return diff, nil
}

func convertFile(f *upstream.File) diffview.FileDiff {
	fd := diffview.FileDiff{
		OldPath:   f.OldName,
		NewPath:   f.NewName,
		Operation: fileOp(f),
		IsBinary:  f.IsBinary,
		OldMode:   fs.FileMode(f.OldMode),
		NewMode:   fs.FileMode(f.NewMode),
		Hunks:     make([]diffview.Hunk, 0, len(f.TextFragments)),
	}

	for _, frag := range f.TextFragments {
		fd.Hunks = append(fd.Hunks, convertFragment(frag))
	}

	return fd
}

func fileOp(f *upstream.File) diffview.FileOp {
	switch {
	case f.IsNew:
		return diffview.FileAdded
	case f.IsDelete:
		return diffview.FileDeleted
	case f.IsRename:
		return diffview.FileRenamed
	case f.IsCopy:
		return diffview.FileCopied
	default:
		return diffview.FileModified
	}
}

func convertFragment(frag *upstream.TextFragment) diffview.Hunk {
	hunk := diffview.Hunk{
		OldStart: int(frag.OldPosition),
		OldCount: int(frag.OldLines),
		NewStart: int(frag.NewPosition),
		NewCount: int(frag.NewLines),
		Section:  frag.Comment,
		Lines:    make([]diffview.Line, 0, len(frag.Lines)),
	}

	oldLine := int(frag.OldPosition)
	newLine := int(frag.NewPosition)

	for _, line := range frag.Lines {
		hadNewline := strings.HasSuffix(line.Line, "\n")
		dl := diffview.Line{Content: strings.TrimSuffix(line.Line, "\n")}

		switch line.Op {
		case upstream.OpContext:
			dl.Type = diffview.LineContext
			dl.OldLineNum = oldLine
			dl.NewLineNum = newLine
			oldLine++
			newLine++
		case upstream.OpDelete:
			dl.Type = diffview.LineDeleted
			dl.OldLineNum = oldLine
			oldLine++
		case upstream.OpAdd:
			dl.Type = diffview.LineAdded
			dl.NewLineNum = newLine
			newLine++
		}

		// go-gitdiff strips the "\ No newline at end of file" marker
		// line and leaves the missing newline on the line it followed
		// as the only trace of it; that can be the old side's last
		// line, the new side's last line, or both.
		if !hadNewline {
			dl.NoNewline = true
		}

		hunk.Lines = append(hunk.Lines, dl)
	}

	return hunk
}
