package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogging-platform/internal/models"
	"github.com/blogging-platform/internal/repository"
	"github.com/blogging-platform/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// articleService implements ArticleService
type articleService struct {
	repo      repository.ArticleRepository
	validator *validation.Validator
	pageSize  int
	log       zerolog.Logger
}

func newArticleService(repo repository.ArticleRepository, validator *validation.Validator, pageSize int, log zerolog.Logger) ArticleService {
	return &articleService{
		repo:      repo,
		validator: validator,
		pageSize:  pageSize,
		log:       log.With().Str("service", "article").Logger(),
	}
}

// Create validates the payload and persists a new drafted article owned
// by the authenticated author
func (s *articleService) Create(ctx context.Context, authorID string, in *validation.ArticleInput) (*models.Article, error) {
	if err := s.validator.ValidateArticle(in); err != nil {
		return nil, err
	}

	now := time.Now()
	article := &models.Article{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		Tags:        in.Tags,
		ReadingTime: in.ReadingTime,
		Status:      models.StatusDrafted,
		ReadCount:   0,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("creating article: %w", err)
	}

	s.log.Info().Str("article_id", article.ID).Str("author_id", authorID).Msg("Article created")
	return article, nil
}

// Get retrieves an article by ID, returning ErrNotFound when absent
func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// Update validates the payload and overwrites the article's content
// fields, bumping updated_at. Status is never touched by edit.
func (s *articleService) Update(ctx context.Context, id string, in *validation.ArticleInput) (*models.Article, error) {
	if err := s.validator.ValidateArticle(in); err != nil {
		return nil, err
	}

	article := &models.Article{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		Tags:        in.Tags,
		ReadingTime: in.ReadingTime,
	}

	if err := s.repo.UpdateContent(ctx, article); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating article: %w", err)
	}

	s.log.Info().Str("article_id", id).Msg("Article updated")
	return article, nil
}

// Delete removes an article by ID. Deleting an already-gone article is
// not an error.
func (s *articleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}
	s.log.Info().Str("article_id", id).Msg("Article deleted")
	return nil
}

// Publish transitions a drafted article to published. The publish instant
// replaces both timestamps so newly published items surface first in the
// public feed. Publishing an already-published article is a no-op
// reported as ErrAlreadyPublished; a concurrent double publish is a
// harmless double-write to the same terminal state.
func (s *articleService) Publish(ctx context.Context, id string) error {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching article: %w", err)
	}
	if article == nil {
		return ErrNotFound
	}
	if article.IsPublished() {
		return ErrAlreadyPublished
	}

	if err := s.repo.Publish(ctx, id, time.Now()); err != nil {
		return fmt.Errorf("publishing article: %w", err)
	}

	s.log.Info().Str("article_id", id).Msg("Article published")
	return nil
}

// View atomically increments the article's read count and returns it
// joined with the author's display name, or ErrNotFound when absent
func (s *articleService) View(ctx context.Context, id string) (*models.ArticleWithAuthor, error) {
	article, err := s.repo.IncrementReadCount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("incrementing read count: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}

	withAuthor, err := s.repo.GetByIDWithAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching article with author: %w", err)
	}
	if withAuthor == nil {
		return nil, ErrNotFound
	}
	return withAuthor, nil
}

// AuthorFeed returns one page of the author's own articles in all
// statuses, newest first
func (s *articleService) AuthorFeed(ctx context.Context, authorID string, page int) (*Feed, error) {
	page = clampPage(page)

	articles, err := s.repo.ListByAuthor(ctx, authorID, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("listing author articles: %w", err)
	}
	count, err := s.repo.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("counting author articles: %w", err)
	}

	return newFeed(articles, page, s.pageSize, count), nil
}

// PublicFeed returns one page of published articles, newest first
func (s *articleService) PublicFeed(ctx context.Context, page int) (*Feed, error) {
	page = clampPage(page)

	articles, err := s.repo.ListPublished(ctx, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("listing published articles: %w", err)
	}
	count, err := s.repo.CountPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting published articles: %w", err)
	}

	return newFeed(articles, page, s.pageSize, count), nil
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
