package editscript_test

import (
	"testing"

	"github.com/fwojciec/diffstory/editscript"
	"github.com/stretchr/testify/assert"
)

func TestNextHunkEnd_Coalescence(t *testing.T) {
	t.Parallel()

	t.Run("gap below threshold coalesces", func(t *testing.T) {
		t.Parallel()
		// context=2: threshold = 2*2+1 = 5; gap = 14-(10+1) = 3 < 5
		c1 := &editscript.Change{Line0: 10, Line1: 10, Deleted: 1, Inserted: 1}
		c2 := &editscript.Change{Line0: 14, Line1: 14, Deleted: 1, Inserted: 1}
		c1.Next = c2

		end := editscript.NextHunkEnd(c1, editscript.Config{ContextLines: 2})
		assert.Same(t, c2, end)
	})

	t.Run("gap at or above threshold splits", func(t *testing.T) {
		t.Parallel()
		// context=1: threshold = 2*1+1 = 3; gap = 14-(10+1) = 3, not < 3
		c1 := &editscript.Change{Line0: 10, Line1: 10, Deleted: 1, Inserted: 1}
		c2 := &editscript.Change{Line0: 14, Line1: 14, Deleted: 1, Inserted: 1}
		c1.Next = c2

		end := editscript.NextHunkEnd(c1, editscript.Config{ContextLines: 1})
		assert.Same(t, c1, end)
	})

	t.Run("ignorable neighbor uses smaller threshold", func(t *testing.T) {
		t.Parallel()
		// context=2: ignorable threshold = 2; gap = 3, not < 2 -> splits
		c1 := &editscript.Change{Line0: 10, Line1: 10, Deleted: 1, Inserted: 1}
		c2 := &editscript.Change{Line0: 14, Line1: 14, Deleted: 1, Inserted: 1, Ignore: true}
		c1.Next = c2

		end := editscript.NextHunkEnd(c1, editscript.Config{ContextLines: 2})
		assert.Same(t, c1, end)
	})
}

func TestNextHunkEnd_InconsistentGapPanics(t *testing.T) {
	t.Parallel()

	c1 := &editscript.Change{Line0: 10, Line1: 10, Deleted: 1, Inserted: 1}
	c2 := &editscript.Change{Line0: 14, Line1: 20, Deleted: 1, Inserted: 1}
	c1.Next = c2

	assert.Panics(t, func() {
		editscript.NextHunkEnd(c1, editscript.Config{ContextLines: 2})
	})
}

func TestNextHunkEnd_StopsAtEndOfChain(t *testing.T) {
	t.Parallel()

	c1 := &editscript.Change{Line0: 10, Line1: 10, Deleted: 1, Inserted: 1}
	end := editscript.NextHunkEnd(c1, editscript.Config{ContextLines: 2})
	assert.Same(t, c1, end)
}
