package pathtoken

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
	}{
		{"", nil},
		{".", nil},
		{"title", []string{"title"}},
		{"content.heading", []string{"content", "heading"}},
		{"<content.heading", []string{"content", "heading"}},
		{"items[].title", []string{"items", "[]", "title"}},
		{"items[0].title", []string{"items", "[0]", "title"}},
		{"items[-1]", []string{"items", "[-1]"}},
		{"matrix[0][1]", []string{"matrix", "[0]", "[1]"}},
		{"[0].id", []string{"[0]", "id"}},
		{"^.title", []string{"^", "title"}},
		{"^^.meta.id", []string{"^^", "meta", "id"}},
		{"^^meta", []string{"^^", "meta"}},
		{"^[0]", []string{"^", "[0]"}},
		{"a..b", []string{"a", "b"}},
		{`a\.b.c`, []string{"a.b", "c"}},
		{`a\b`, []string{`a\b`}},
		{`trailing\`, []string{`trailing\`}},

		// Malformed brackets stay literal
		{"name[abc]", []string{"name[abc]"}},
		{"name[0", []string{"name[0"}},
		{"name[0]x", []string{"name[0]x"}},

		// Set paths are prefixed and reversed
		{">title", []string{">title"}},
		{">meta.writer.username", []string{">username", ">writer", ">meta"}},
		{">items[].title", []string{">title", ">[]", ">items"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.path))
		})
	}
}

func TestSplit_Pure(t *testing.T) {
	paths := []string{"a.b[0].c", ">x.y[]", `^^.a\.b`, "", "weird[[.]]"}

	for _, p := range paths {
		assert.Equal(t, Split(p), Split(p), p)
	}
}

func TestSplit_SetMirrorsGet(t *testing.T) {
	paths := []string{"title", "meta.writer.username", "items[].title", "a[0][1].b", "^^.x"}

	for _, p := range paths {
		get := Split(p)
		set := Split(SetPrefix + p)

		stripped := make([]string, len(set))
		for i, tok := range set {
			assert.True(t, IsSet(tok))
			stripped[i] = Strip(tok)
		}

		slices.Reverse(stripped)
		assert.Equal(t, get, stripped, p)
	}
}

func TestTokenHelpers(t *testing.T) {
	assert.Equal(t, ">a", Invert("a"))
	assert.Equal(t, "a", Invert(">a"))
	assert.True(t, IsParent(">^"))
	assert.True(t, IsRoot("^^"))
	assert.False(t, IsRoot("^"))
	assert.True(t, IsArray(">[]"))

	n, ok := Index(">[3]")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = Index("[-2]")
	assert.True(t, ok)
	assert.Equal(t, -2, n)

	_, ok = Index("[]")
	assert.False(t, ok)

	_, ok = Index("name")
	assert.False(t, ok)
}
