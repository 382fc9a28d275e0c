package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation collapses to one separator", "Hello, World!", "hello-world"},
		{"already lowercase", "my first post", "my-first-post"},
		{"mixed punctuation runs", "Go -- the good parts!?", "go-the-good-parts"},
		{"leading and trailing separators trimmed", "  ...Spaced Out...  ", "spaced-out"},
		{"digits survive", "Top 10 Tips for 2026", "top-10-tips-for-2026"},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreateSlug(tt.title))
		})
	}
}

func TestCreateSlugIsDeterministic(t *testing.T) {
	// Same title must always derive the same slug: the slug is the public
	// identifier and the unique constraint is the only collision guard.
	first := CreateSlug("How to Write Go")
	second := CreateSlug("How to Write Go")

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestCreateSlugCollidingTitles(t *testing.T) {
	// Two titles that normalize identically produce the same slug; inserting
	// the second article is expected to fail with ErrDuplicatedSlug.
	assert.Equal(t, CreateSlug("Hello World"), CreateSlug("Hello, World!"))
}
