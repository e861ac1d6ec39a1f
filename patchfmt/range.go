package patchfmt

import "fmt"

// contextRange renders a context-style range per spec.md §4.5: given
// internal [a, b], translate to real numbers and print "tb" when
// tb <= ta, else "ta,tb".
func contextRange(fv FileView, a, b int) string {
	ta, tb := fv.Translate(a, b)
	if tb <= ta {
		return fmt.Sprintf("%d", tb)
	}
	return fmt.Sprintf("%d,%d", ta, tb)
}

// unifiedRange renders a unified-style range per spec.md §4.5: given
// internal [a, b], translate to real numbers. When tb <= ta, print
// "tb,0" if tb < ta (empty range), else "tb" (single line). Otherwise
// print "ta,tb-ta+1" (start, length).
func unifiedRange(fv FileView, a, b int) string {
	ta, tb := fv.Translate(a, b)
	if tb <= ta {
		if tb < ta {
			return fmt.Sprintf("%d,0", tb)
		}
		return fmt.Sprintf("%d", tb)
	}
	return fmt.Sprintf("%d,%d", ta, tb-ta+1)
}
