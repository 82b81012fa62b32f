package service

import (
	"context"

	"github.com/blogging-platform/internal/auth"
	"github.com/blogging-platform/internal/config"
	"github.com/blogging-platform/internal/models"
	"github.com/blogging-platform/internal/repository"
	"github.com/blogging-platform/internal/validation"
	"github.com/rs/zerolog"
)

// AuthorService defines the interface for registration and login
type AuthorService interface {
	Register(ctx context.Context, in *validation.SignUpInput) (*models.Author, error)
	Login(ctx context.Context, in *validation.SignInInput) (string, error)
}

// ArticleService defines the interface for the article lifecycle and feeds
type ArticleService interface {
	Create(ctx context.Context, authorID string, in *validation.ArticleInput) (*models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Update(ctx context.Context, id string, in *validation.ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) error
	View(ctx context.Context, id string) (*models.ArticleWithAuthor, error)
	AuthorFeed(ctx context.Context, authorID string, page int) (*Feed, error)
	PublicFeed(ctx context.Context, page int) (*Feed, error)
}

// Feed is one page of an ordered article listing. The boundary flags are
// computed from the total count, not the slice length.
type Feed struct {
	Articles    []*models.Article
	CurrentPage int
	NextPage    int
	PrevPage    int
	HasNextPage bool
	HasPrevPage bool
	TotalCount  int
}

// Services holds all service interfaces
type Services struct {
	Author  AuthorService
	Article ArticleService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, codec *auth.TokenCodec, cfg *config.Config, log zerolog.Logger) *Services {
	validator := validation.NewValidator()

	return &Services{
		Author:  newAuthorService(repos.Author, codec, validator, log),
		Article: newArticleService(repos.Article, validator, cfg.Feed.PageSize, log),
	}
}

// newFeed assembles a feed page. Pages are 1-indexed; the caller has
// already clamped page to at least 1.
func newFeed(articles []*models.Article, page, pageSize, total int) *Feed {
	totalPages := (total + pageSize - 1) / pageSize

	feed := &Feed{
		Articles:    articles,
		CurrentPage: page,
		TotalCount:  total,
		HasNextPage: page+1 <= totalPages,
		HasPrevPage: page-1 >= 1,
	}
	if feed.HasNextPage {
		feed.NextPage = page + 1
	}
	if feed.HasPrevPage {
		feed.PrevPage = page - 1
	}
	return feed
}
