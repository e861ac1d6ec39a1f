package chroma_test

import (
	"testing"

	diffview "github.com/fwojciec/diffstory"
	"github.com/fwojciec/diffstory/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizer_Tokenize(t *testing.T) {
	t.Parallel()

	t.Run("tokenizes Go code", func(t *testing.T) {
		t.Parallel()

		tokenizer := chroma.NewTokenizer()
		tokens := tokenizer.Tokenize("go", `package main`)

		require.NotEmpty(t, tokens, "expected tokens for valid Go code")

		var reconstructed string
		for _, tok := range tokens {
			reconstructed += tok.Text
		}
		assert.Equal(t, "package main", reconstructed)

		var foundPackageKeyword bool
		for _, tok := range tokens {
			if tok.Text == "package" {
				foundPackageKeyword = true
				assert.NotEmpty(t, tok.Style.Foreground, "keyword should have foreground color")
				assert.True(t, tok.Style.Bold, "keyword should be bold")
			}
		}
		assert.True(t, foundPackageKeyword, "should find 'package' keyword token")
	})

	t.Run("returns nil for unsupported language", func(t *testing.T) {
		t.Parallel()

		tokenizer := chroma.NewTokenizer()
		tokens := tokenizer.Tokenize("nonexistent-language-xyz", "some code")

		assert.Nil(t, tokens)
	})

	t.Run("returns empty slice for empty source", func(t *testing.T) {
		t.Parallel()

		tokenizer := chroma.NewTokenizer()
		tokens := tokenizer.Tokenize("go", "")

		assert.Empty(t, tokens)
	})

	t.Run("styles function names", func(t *testing.T) {
		t.Parallel()

		tokenizer := chroma.NewTokenizer()
		tokens := tokenizer.Tokenize("go", `func foo() {}`)

		require.NotEmpty(t, tokens)

		var fooStyle diffview.Style
		var found bool
		for _, tok := range tokens {
			if tok.Text == "foo" {
				fooStyle = tok.Style
				found = true
				break
			}
		}

		require.True(t, found, "expected to find identifier 'foo' among tokens")
		assert.NotEmpty(t, fooStyle.Foreground, "function name should have color")
	})

	t.Run("styles string literals", func(t *testing.T) {
		t.Parallel()

		tokenizer := chroma.NewTokenizer()
		tokens := tokenizer.Tokenize("go", `var s = "hi"`)

		require.NotEmpty(t, tokens)

		var foundString bool
		for _, tok := range tokens {
			if tok.Text == `"hi"` {
				foundString = true
				assert.NotEmpty(t, tok.Style.Foreground)
			}
		}
		assert.True(t, foundString, "should find the string literal token")
	})

	t.Run("implements diffview.Tokenizer", func(t *testing.T) {
		t.Parallel()

		var _ diffview.Tokenizer = chroma.NewTokenizer()
	})
}

func TestTokenizer_TokenizeLines(t *testing.T) {
	t.Parallel()

	t.Run("tokenizes multi-line comments correctly", func(t *testing.T) {
		t.Parallel()

		tokenizer := chroma.NewTokenizer()
		source := "/**\n * Config options\n */"
		lineTokens := tokenizer.TokenizeLines("javascript", source)

		require.Len(t, lineTokens, 3, "should have tokens for 3 lines")
		for lineNum, tokens := range lineTokens {
			assert.NotEmpty(t, tokens, "line %d should have tokens", lineNum)
		}
	})

	t.Run("handles single line correctly", func(t *testing.T) {
		t.Parallel()

		tokenizer := chroma.NewTokenizer()
		source := "const x = 1"
		lineTokens := tokenizer.TokenizeLines("javascript", source)

		require.Len(t, lineTokens, 1)
		require.NotEmpty(t, lineTokens[0])

		var reconstructed string
		for _, tok := range lineTokens[0] {
			reconstructed += tok.Text
		}
		assert.Equal(t, "const x = 1", reconstructed)
	})

	t.Run("handles empty source", func(t *testing.T) {
		t.Parallel()

		tokenizer := chroma.NewTokenizer()
		lineTokens := tokenizer.TokenizeLines("go", "")
		assert.Empty(t, lineTokens)
	})

	t.Run("returns nil for unsupported language", func(t *testing.T) {
		t.Parallel()

		tokenizer := chroma.NewTokenizer()
		lineTokens := tokenizer.TokenizeLines("nonexistent-language-xyz", "some code")
		assert.Nil(t, lineTokens)
	})

	t.Run("single-line comment still works", func(t *testing.T) {
		t.Parallel()

		tokenizer := chroma.NewTokenizer()
		source := "// single line comment"
		lineTokens := tokenizer.TokenizeLines("javascript", source)

		require.Len(t, lineTokens, 1)
		require.NotEmpty(t, lineTokens[0])
	})
}
