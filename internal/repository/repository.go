package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blogging-platform/internal/database"
	"github.com/blogging-platform/internal/models"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint
var ErrDuplicate = errors.New("record already exists")

// AuthorRepository defines the interface for author data operations
type AuthorRepository interface {
	Create(ctx context.Context, author *models.Author) error
	GetByID(ctx context.Context, id string) (*models.Author, error)
	GetByEmail(ctx context.Context, email string) (*models.Author, error)
	IdentityExists(ctx context.Context, username, email string) (bool, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetByIDWithAuthor(ctx context.Context, id string) (*models.ArticleWithAuthor, error)
	UpdateContent(ctx context.Context, article *models.Article) error
	Publish(ctx context.Context, id string, publishedAt time.Time) error
	Delete(ctx context.Context, id string) error
	IncrementReadCount(ctx context.Context, id string) (*models.Article, error)
	ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*models.Article, error)
	CountByAuthor(ctx context.Context, authorID string) (int, error)
	ListPublished(ctx context.Context, limit, offset int) ([]*models.Article, error)
	CountPublished(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Author  AuthorRepository
	Article ArticleRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Author:  NewAuthorRepo(db),
		Article: NewArticleRepo(db),
	}
}
