package enginediff_test

import (
	"testing"

	"github.com/fwojciec/diffstory/enginediff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_SingleLineDeletion(t *testing.T) {
	t.Parallel()

	script := enginediff.Diff("a\nb\nc\nd\ne\n", "a\nb\nd\ne\n")
	require.NotNil(t, script.Head)
	c := script.Head
	assert.Equal(t, 2, c.Line0)
	assert.Equal(t, 1, c.Deleted)
	assert.Equal(t, 0, c.Inserted)
	assert.Nil(t, c.Next)
}

func TestDiff_Replacement(t *testing.T) {
	t.Parallel()

	script := enginediff.Diff("1\n2\n3\n4\n5\n", "1\n2\nX\n4\n5\n")
	require.NotNil(t, script.Head)
	c := script.Head
	assert.Equal(t, 2, c.Line0)
	assert.Equal(t, 1, c.Deleted)
	assert.Equal(t, 2, c.Line1)
	assert.Equal(t, 1, c.Inserted)
}

func TestDiff_IdenticalFilesProduceNilScript(t *testing.T) {
	t.Parallel()

	script := enginediff.Diff("a\nb\n", "a\nb\n")
	assert.Nil(t, script.Head)
}
