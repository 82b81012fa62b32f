package models

import (
	"time"
)

// ArticleStatus represents the lifecycle state of an article
type ArticleStatus string

const (
	StatusDrafted   ArticleStatus = "Drafted"
	StatusPublished ArticleStatus = "Published"
)

// Article represents an article in the system
type Article struct {
	ID          string        `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	Body        string        `json:"body" db:"body"`
	Tags        []string      `json:"tags" db:"tags"`
	ReadingTime string        `json:"reading_time" db:"reading_time"`
	Status      ArticleStatus `json:"status" db:"status"`
	ReadCount   int           `json:"read_count" db:"read_count"`
	AuthorID    string        `json:"author_id" db:"author_id"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// ValidStatuses defines allowed article statuses
var ValidStatuses = map[ArticleStatus]bool{
	StatusDrafted:   true,
	StatusPublished: true,
}

// IsPublished reports whether the article has reached the published state
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

// ArticleWithAuthor joins an article with its author's display fields
// for the public article page
type ArticleWithAuthor struct {
	Article
	AuthorFirstName string `json:"author_first_name" db:"author_first_name"`
	AuthorLastName  string `json:"author_last_name" db:"author_last_name"`
}

// AuthorName returns the display name of the article's author
func (a *ArticleWithAuthor) AuthorName() string {
	return a.AuthorFirstName + " " + a.AuthorLastName
}
