package patchfmt

import "github.com/fwojciec/diffstory/editscript"

// hunkFunc processes one grouped hunk: the inclusive [start, end]
// sub-run of the script, already detached from the rest of the chain
// for the duration of the call, plus its precomputed Analyze result.
type hunkFunc func(start, end *editscript.Change, result editscript.Result) error

// forEachHunk walks script grouping adjacent changes into hunks via
// editscript.NextHunkEnd, and invokes fn once per hunk with the chain
// temporarily truncated at end — the detach/reattach idiom spec.md §9
// describes, realized here via the exported Change.Next field rather
// than a separate detach primitive.
func forEachHunk(script *editscript.Script, cfg editscript.Config, ignorable editscript.Ignorable, fn hunkFunc) error {
	cur := script.Head
	for cur != nil {
		end := editscript.NextHunkEnd(cur, cfg)
		saved := end.Next
		end.Next = nil

		result := editscript.Analyze(cur, ignorable)
		err := fn(cur, end, result)

		end.Next = saved
		if err != nil {
			return err
		}
		cur = saved
	}
	return nil
}
