// Package editscript models the edit script that drives every diff
// output style: an ordered chain of atomic delete/insert operations
// between two line-indexed files.
package editscript

// Change is one atomic edit: delete Deleted lines from file 0 starting
// at Line0, insert Inserted lines into file 1 starting at Line1. Line
// numbers are internal, origin-0, and may be negative (see
// lineindex.LineIndex). Deleted+Inserted must be > 0.
//
// Changes form a singly-linked chain via Next and are strictly
// increasing and non-overlapping in Line0. Ignore is the only mutable
// field; everything else is set once by the producer of the script.
type Change struct {
	Line0    int
	Line1    int
	Deleted  int
	Inserted int
	Ignore   bool
	Next     *Change
}

// Script is the head of a Change chain, or nil for "files are
// identical".
type Script struct {
	Head *Change
}

// Len returns the number of Change records in the script.
func (s *Script) Len() int {
	n := 0
	for c := s.Head; c != nil; c = c.Next {
		n++
	}
	return n
}

// detach temporarily severs c from its successor, returning the
// successor so the caller can reattach it with reattach. This mirrors
// the "set next to null" idiom the original C implementation uses to
// hand HunkAnalyzer a bounded sub-run without allocating.
func detach(c *Change) *Change {
	next := c.Next
	c.Next = nil
	return next
}

func reattach(c *Change, next *Change) {
	c.Next = next
}
