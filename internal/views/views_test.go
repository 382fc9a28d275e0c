package views

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/realworld-apps/conduit/internal/auth"
	"github.com/realworld-apps/conduit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestNewProfileDefaults(t *testing.T) {
	profile := NewProfile(&auth.User{Username: "jake"})

	assert.Equal(t, "jake", profile.Username)
	assert.Equal(t, "No bio yet", profile.Bio)
	assert.Equal(t, "/assets/profile-default.png", profile.Image)
}

func TestNewProfileKeepsPresentFields(t *testing.T) {
	profile := NewProfile(&auth.User{
		Username: "jake",
		Bio:      strPtr("I work at statefarm"),
		Image:    strPtr("https://example.com/jake.png"),
	})

	assert.Equal(t, "I work at statefarm", profile.Bio)
	assert.Equal(t, "https://example.com/jake.png", profile.Image)
}

func TestNewArticle(t *testing.T) {
	now := time.Now()
	article := &models.Article{
		Slug:        "how-to-train-your-dragon",
		Title:       "How to train your dragon",
		Description: strPtr("Ever wonder how?"),
		Body:        "Very carefully.",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	view := NewArticle(article, Profile{Username: "jake"})

	assert.Equal(t, "how-to-train-your-dragon", view.Slug)
	assert.Equal(t, "Ever wonder how?", view.Description)
	assert.Equal(t, "Very carefully.", view.Body)
	assert.Equal(t, "jake", view.Author.Username)
	assert.Empty(t, view.TagList)
	assert.False(t, view.Favorited)
	assert.Zero(t, view.FavoritesCount)
}

func TestNewArticleDefaultsDescription(t *testing.T) {
	view := NewArticle(&models.Article{Slug: "a", Title: "A", Body: "b"}, Profile{})

	assert.Equal(t, "No description", view.Description)
}

func TestCompactArticleOmitsBody(t *testing.T) {
	article := &models.Article{
		Slug:  "hello-world",
		Title: "Hello World",
		Body:  "the body",
	}

	js, err := json.Marshal(NewCompactArticle(article, Profile{Username: "jake"}))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(js, &fields))

	// The compact shape must not carry the field at all, not serialize it
	// as null or empty.
	_, hasBody := fields["body"]
	assert.False(t, hasBody)
	assert.Equal(t, "hello-world", fields["slug"])
}

func TestFullArticleKeepsBody(t *testing.T) {
	article := &models.Article{
		Slug:  "hello-world",
		Title: "Hello World",
		Body:  "the body",
	}

	js, err := json.Marshal(NewArticle(article, Profile{}))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(js, &fields))

	assert.Equal(t, "the body", fields["body"])
}

func TestTagListSerializesAsEmptyList(t *testing.T) {
	js, err := json.Marshal(NewCompactArticle(&models.Article{}, Profile{}))
	require.NoError(t, err)

	assert.Contains(t, string(js), `"tagList":[]`)
}
