package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "", ""},
		{"already a slug", "my-post_1", "my-post_1"},
		{"lowercases", "MyPost", "mypost"},
		{"trims surrounding whitespace", "  hello  ", "hello"},
		{"punctuation becomes hyphens one-to-one", "Hello, World!", "hello--world-"},
		{"no collapsing of inner runs", "a  b", "a--b"},
		{"keeps underscores and digits", "tag_42", "tag_42"},
		{"multibyte runes become single hyphens", "café", "caf-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	inputs := []string{"my-post", "hello--world-", "tag_42", "a-b-c"}

	for _, in := range inputs {
		assert.Equal(t, GenerateSlug(in), GenerateSlug(GenerateSlug(in)))
	}
}

func TestMakeUnique(t *testing.T) {
	t.Run("returns base when free", func(t *testing.T) {
		got := MakeUnique("post", func(string) bool { return false })
		assert.Equal(t, "post", got)
	})

	t.Run("suffixes the original base starting at 2", func(t *testing.T) {
		taken := map[string]bool{"post": true, "post-2": true}

		got := MakeUnique("post", func(c string) bool { return taken[c] })
		assert.Equal(t, "post-3", got)
	})

	t.Run("never returns a taken candidate", func(t *testing.T) {
		taken := map[string]bool{}
		for i := 0; i < 25; i++ {
			got := MakeUnique("post", func(c string) bool { return taken[c] })
			require.False(t, taken[got])
			taken[got] = true
		}
	})
}
