package editscript_test

import (
	"testing"

	"github.com/fwojciec/diffstory/editscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_SingleChange(t *testing.T) {
	t.Parallel()

	t.Run("deletion only is Old", func(t *testing.T) {
		t.Parallel()
		c := &editscript.Change{Line0: 2, Line1: 2, Deleted: 1, Inserted: 0}
		r := editscript.Analyze(c, nil)
		assert.Equal(t, editscript.Old, r.Kind)
		assert.Equal(t, 2, r.First0)
		assert.Equal(t, 2, r.Last0)
		assert.Equal(t, 2, r.First1)
		assert.Equal(t, 1, r.Last1) // empty range: first-1
	})

	t.Run("insertion only is New", func(t *testing.T) {
		t.Parallel()
		c := &editscript.Change{Line0: 2, Line1: 2, Deleted: 0, Inserted: 1}
		r := editscript.Analyze(c, nil)
		assert.Equal(t, editscript.New, r.Kind)
		assert.Equal(t, 1, r.Last0) // empty range: first-1
		assert.Equal(t, 2, r.Last1)
	})

	t.Run("mixed is Changed", func(t *testing.T) {
		t.Parallel()
		c := &editscript.Change{Line0: 2, Line1: 2, Deleted: 1, Inserted: 1}
		r := editscript.Analyze(c, nil)
		assert.Equal(t, editscript.Changed, r.Kind)
	})
}

func TestAnalyze_Run(t *testing.T) {
	t.Parallel()

	c1 := &editscript.Change{Line0: 2, Line1: 2, Deleted: 1, Inserted: 0}
	c2 := &editscript.Change{Line0: 5, Line1: 4, Deleted: 0, Inserted: 1}
	c1.Next = c2

	r := editscript.Analyze(c1, nil)
	require.Equal(t, 2, r.First0)
	require.Equal(t, 2, r.First1)
	assert.Equal(t, 4, r.Last0) // c2 deletes nothing: 5+0-1
	assert.Equal(t, 4, r.Last1) // 4+1-1
	assert.Equal(t, editscript.Changed, r.Kind)
}

type fakeFile struct {
	lines map[int][]byte
}

func (f fakeFile) Line(i int) []byte { return f.lines[i] }

func TestAnalyze_UnchangedWhenAllIgnorable(t *testing.T) {
	t.Parallel()

	c := &editscript.Change{Line0: 0, Line1: 0, Deleted: 1, Inserted: 1, Ignore: true}
	file0 := fakeFile{lines: map[int][]byte{0: []byte("")}}
	file1 := fakeFile{lines: map[int][]byte{0: []byte("")}}
	cfg := editscript.Config{IgnoreBlankLines: true}
	ignorable := editscript.NewIgnorable(cfg, file0, file1)

	r := editscript.Analyze(c, ignorable)
	assert.Equal(t, editscript.Unchanged, r.Kind)
}

func TestAnalyze_NotUnchangedWhenIgnoreFlagFalse(t *testing.T) {
	t.Parallel()

	c := &editscript.Change{Line0: 0, Line1: 0, Deleted: 1, Inserted: 1, Ignore: false}
	file0 := fakeFile{lines: map[int][]byte{0: []byte("")}}
	file1 := fakeFile{lines: map[int][]byte{0: []byte("")}}
	cfg := editscript.Config{IgnoreBlankLines: true}
	ignorable := editscript.NewIgnorable(cfg, file0, file1)

	r := editscript.Analyze(c, ignorable)
	assert.NotEqual(t, editscript.Unchanged, r.Kind)
}
