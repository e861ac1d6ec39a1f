// Package enginediff is the out-of-scope "diff engine" collaborator
// spec.md assumes is handed to the CORE as a prebuilt ChangeScript. It
// wraps github.com/sergi/go-diff/diffmatchpatch's line-mode diff, the
// same way other_examples/Spencerx-cli__diff.go wraps it: encode each
// line as one rune via DiffLinesToRunes, run the Myers diff over the
// runes, then walk the result into editscript.Change records.
package enginediff

import (
	"unicode/utf8"

	"github.com/fwojciec/diffstory/editscript"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes a ChangeScript transforming text0 into text1, treating
// each line (as split by "\n", trailing newline included) as one
// indivisible unit.
func Diff(text0, text1 string) *editscript.Script {
	dmp := diffmatchpatch.New()

	runes0, runes1, _ := dmp.DiffLinesToRunes(text0, text1)
	diffs := dmp.DiffMainRunes(runes0, runes1, false)

	return &editscript.Script{Head: buildChangeChain(diffs)}
}

func buildChangeChain(diffs []diffmatchpatch.Diff) *editscript.Change {
	var head, tail *editscript.Change
	line0, line1 := 0, 0

	push := func(c *editscript.Change) {
		if head == nil {
			head = c
		} else {
			tail.Next = c
		}
		tail = c
	}

	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		n := utf8.RuneCountInString(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffEqual:
			line0 += n
			line1 += n

		case diffmatchpatch.DiffDelete:
			c := &editscript.Change{Line0: line0, Line1: line1, Deleted: n}
			line0 += n
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
				i++
				c.Inserted = utf8.RuneCountInString(diffs[i].Text)
				line1 += c.Inserted
			}
			push(c)

		case diffmatchpatch.DiffInsert:
			c := &editscript.Change{Line0: line0, Line1: line1, Inserted: n}
			line1 += n
			push(c)
		}
	}

	return head
}
