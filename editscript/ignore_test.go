package editscript_test

import (
	"testing"

	"github.com/fwojciec/diffstory/editscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type regexMatcher struct {
	match func(data []byte) int
}

func (m regexMatcher) Search(data []byte, offset, length int) int {
	end := offset + length
	return m.match(data[offset:end])
}

func containsMatcher(sub string) regexMatcher {
	return regexMatcher{match: func(data []byte) int {
		s := string(data)
		for i := 0; i+len(sub) <= len(s); i++ {
			if s[i:i+len(sub)] == sub {
				return i
			}
		}
		return -1
	}}
}

func TestPrepareScript_NoPredicatesActive(t *testing.T) {
	t.Parallel()

	c1 := &editscript.Change{Line0: 0, Line1: 0, Deleted: 1, Inserted: 0, Ignore: true}
	script := &editscript.Script{Head: c1}
	file0 := fakeFile{lines: map[int][]byte{0: []byte("")}}
	file1 := fakeFile{lines: map[int][]byte{}}

	editscript.PrepareScript(script, editscript.Config{}, file0, file1)

	assert.False(t, c1.Ignore)
}

func TestPrepareScript_MarksBlankOnlyChangesIgnored(t *testing.T) {
	t.Parallel()

	blank := &editscript.Change{Line0: 0, Line1: 0, Deleted: 1, Inserted: 0}
	real := &editscript.Change{Line0: 2, Line1: 1, Deleted: 1, Inserted: 0}
	blank.Next = real

	script := &editscript.Script{Head: blank}
	file0 := fakeFile{lines: map[int][]byte{0: []byte(""), 2: []byte("x")}}
	file1 := fakeFile{lines: map[int][]byte{}}

	editscript.PrepareScript(script, editscript.Config{IgnoreBlankLines: true}, file0, file1)

	assert.True(t, blank.Ignore)
	assert.False(t, real.Ignore)
}

func TestPrepareScript_Idempotent(t *testing.T) {
	t.Parallel()

	c1 := &editscript.Change{Line0: 0, Line1: 0, Deleted: 1, Inserted: 0}
	script := &editscript.Script{Head: c1}
	file0 := fakeFile{lines: map[int][]byte{0: []byte("TODO: x")}}
	file1 := fakeFile{lines: map[int][]byte{}}
	cfg := editscript.Config{IgnoreRegex: containsMatcher("TODO")}

	editscript.PrepareScript(script, cfg, file0, file1)
	first := c1.Ignore
	editscript.PrepareScript(script, cfg, file0, file1)

	require.Equal(t, first, c1.Ignore)
	assert.True(t, c1.Ignore)
}
