// Package views holds the pure projections from stored records to the
// API-facing response shapes. Every view is built fresh per response and
// never persisted.
package views

import (
	"time"

	"github.com/realworld-apps/conduit/internal/auth"
	"github.com/realworld-apps/conduit/models"
)

const (
	DefaultBio         = "No bio yet"
	DefaultImage       = "/assets/profile-default.png"
	DefaultDescription = "No description"
)

type Profile struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// CompactArticle is the list-response shape: the article body is not a field
// at all, so it can never serialize as null or empty.
type CompactArticle struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int64     `json:"favoritesCount"`
	Author         Profile   `json:"author"`
}

// Article is the single-article shape: CompactArticle plus the body.
type Article struct {
	CompactArticle
	Body string `json:"body"`
}

func NewProfile(user *auth.User) Profile {
	profile := Profile{
		Username: user.Username,
		Bio:      DefaultBio,
		Image:    DefaultImage,
	}

	if user.Bio != nil {
		profile.Bio = *user.Bio
	}
	if user.Image != nil {
		profile.Image = *user.Image
	}

	return profile
}

func NewCompactArticle(article *models.Article, author Profile) CompactArticle {
	description := DefaultDescription
	if article.Description != nil {
		description = *article.Description
	}

	return CompactArticle{
		Slug:           article.Slug,
		Title:          article.Title,
		Description:    description,
		TagList:        []string{},
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
		Favorited:      false,
		FavoritesCount: 0,
		Author:         author,
	}
}

func NewArticle(article *models.Article, author Profile) Article {
	return Article{
		CompactArticle: NewCompactArticle(article, author),
		Body:           article.Body,
	}
}
