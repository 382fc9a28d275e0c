package models

import "time"

type Article struct {
	ID          int64
	AuthorID    int64
	Slug        string
	Title       string
	Description *string
	Body        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
