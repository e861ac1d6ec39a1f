package editscript

// Kind classifies a run of Change records.
type Kind int

const (
	// Unchanged means every line this run touches is ignorable; the
	// hunk carrying it must be suppressed entirely.
	Unchanged Kind = iota
	// Old means only deletions are materially significant.
	Old
	// New means only insertions are materially significant.
	New
	// Changed means both deletions and insertions are significant.
	Changed
)

// Result is the outcome of analyzing a Change run.
type Result struct {
	Kind                         Kind
	First0, Last0, First1, Last1 int
}

// Ignorable reports whether a line in the given file (0 or 1) at
// internal index i satisfies the ignore predicate threaded through
// from IgnorePolicy. It is supplied by the caller so Analyze stays a
// pure function of the Change chain plus this one classifier, matching
// spec.md's "engine's line-equivalence classifier" indirection.
type Ignorable func(file int, index int) bool

// Analyze walks the chain starting at start (stopping at nil) and
// computes the window it spans and its Kind.
//
// When ignorable is nil, no line counts as ignorable, so every Change
// is treated as materially significant and the kind is never
// Unchanged, whatever the Change.Ignore flags say.
func Analyze(start *Change, ignorable Ignorable) Result {
	if start == nil {
		return Result{}
	}

	r := Result{
		First0: start.Line0,
		First1: start.Line1,
	}

	allIgnore := true
	anyDelete := false
	anyInsert := false
	allDeletesIgnorable := true
	allInsertsIgnorable := true

	last := start
	for c := start; c != nil; c = c.Next {
		last = c
		if !c.Ignore {
			allIgnore = false
		}
		if c.Deleted > 0 {
			anyDelete = true
			if ignorable != nil {
				for i := 0; i < c.Deleted; i++ {
					if !ignorable(0, c.Line0+i) {
						allDeletesIgnorable = false
						break
					}
				}
			} else {
				allDeletesIgnorable = false
			}
		}
		if c.Inserted > 0 {
			anyInsert = true
			if ignorable != nil {
				for i := 0; i < c.Inserted; i++ {
					if !ignorable(1, c.Line1+i) {
						allInsertsIgnorable = false
						break
					}
				}
			} else {
				allInsertsIgnorable = false
			}
		}
	}

	r.Last0 = last.Line0 + last.Deleted - 1
	r.Last1 = last.Line1 + last.Inserted - 1

	switch {
	case allIgnore && (!anyDelete || allDeletesIgnorable) && (!anyInsert || allInsertsIgnorable):
		r.Kind = Unchanged
	case anyDelete && anyInsert:
		r.Kind = Changed
	case anyDelete:
		r.Kind = Old
	default:
		r.Kind = New
	}

	return r
}

// AnalyzeRun is Analyze over a bounded sub-run [start, end] inclusive,
// replacing the detach/reattach idiom with an explicit range: the
// caller need not mutate the chain to inspect a prefix of it.
func AnalyzeRun(start, end *Change, ignorable Ignorable) Result {
	if start == nil {
		return Result{}
	}
	saved := detachAfter(end)
	r := Analyze(start, ignorable)
	reattachAfter(end, saved)
	return r
}

func detachAfter(end *Change) *Change {
	if end == nil {
		return nil
	}
	return detach(end)
}

func reattachAfter(end *Change, saved *Change) {
	if end == nil {
		return
	}
	reattach(end, saved)
}
