package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/blogging-platform/internal/mocks"
	"github.com/blogging-platform/internal/models"
	"github.com/blogging-platform/internal/validation"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArticleService(repo *mocks.MockArticleRepository) ArticleService {
	return newArticleService(repo, validation.NewValidator(), 10, zerolog.Nop())
}

func articleInput() *validation.ArticleInput {
	return &validation.ArticleInput{
		Title:       "A Title",
		Description: "A short description",
		Body:        "This body is long enough.",
		Tags:        []string{"go", "web"},
		ReadingTime: "5 min",
	}
}

func TestCreateArticleStartsDrafted(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	svc := newTestArticleService(repo)

	article, err := svc.Create(context.Background(), "author-1", articleInput())
	require.NoError(t, err)

	assert.Equal(t, models.StatusDrafted, article.Status)
	assert.Equal(t, 0, article.ReadCount)
	assert.Equal(t, "author-1", article.AuthorID)
	assert.Len(t, repo.Articles, 1)
}

func TestCreateArticleValidationError(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	svc := newTestArticleService(repo)

	in := articleInput()
	in.Title = ""
	_, err := svc.Create(context.Background(), "author-1", in)

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please provide a title", vErr.Message)
	assert.Empty(t, repo.Articles)
}

func TestUpdateArticleLeavesStatusAlone(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	svc := newTestArticleService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "author-1", articleInput())
	require.NoError(t, err)
	require.NoError(t, svc.Publish(ctx, created.ID))

	in := articleInput()
	in.Title = "Revised Title"
	_, err = svc.Update(ctx, created.ID, in)
	require.NoError(t, err)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Revised Title", stored.Title)
	assert.Equal(t, models.StatusPublished, stored.Status, "edit must not touch status")
}

func TestUpdateArticleNotFound(t *testing.T) {
	svc := newTestArticleService(mocks.NewMockArticleRepository())

	_, err := svc.Update(context.Background(), "missing", articleInput())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteArticleIdempotent(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	svc := newTestArticleService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "author-1", articleInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, repo.Articles)

	// Deleting an already-gone article must not fail
	require.NoError(t, svc.Delete(ctx, created.ID))
}

func TestPublishLifecycle(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	svc := newTestArticleService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "author-1", articleInput())
	require.NoError(t, err)

	before := repo.Articles[created.ID].CreatedAt

	require.NoError(t, svc.Publish(ctx, created.ID))

	published := repo.Articles[created.ID]
	assert.Equal(t, models.StatusPublished, published.Status)
	assert.False(t, published.CreatedAt.Before(before), "publish instant becomes the freshness timestamp")

	firstPublish := published.UpdatedAt

	// Second publish is an informational no-op
	err = svc.Publish(ctx, created.ID)
	assert.ErrorIs(t, err, ErrAlreadyPublished)
	assert.Equal(t, firstPublish, repo.Articles[created.ID].UpdatedAt, "no-op must not bump updated_at")
}

func TestPublishNotFound(t *testing.T) {
	svc := newTestArticleService(mocks.NewMockArticleRepository())

	err := svc.Publish(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewIncrementsReadCount(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	repo.Authors["author-1"] = &models.Author{ID: "author-1", FirstName: "Ada", LastName: "Lovelace"}
	svc := newTestArticleService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "author-1", articleInput())
	require.NoError(t, err)
	require.NoError(t, svc.Publish(ctx, created.ID))

	for i := 1; i <= 3; i++ {
		viewed, err := svc.View(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, i, viewed.ReadCount)
	}

	viewed, err := svc.View(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", viewed.AuthorName())
	assert.Equal(t, 4, viewed.ReadCount)
}

func TestViewNotFound(t *testing.T) {
	svc := newTestArticleService(mocks.NewMockArticleRepository())

	_, err := svc.View(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func seedPublished(t *testing.T, repo *mocks.MockArticleRepository, n int) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("article-%02d", i)
		repo.Articles[id] = &models.Article{
			ID:        id,
			Title:     fmt.Sprintf("Article %02d", i),
			Status:    models.StatusPublished,
			AuthorID:  "author-1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
}

func TestPublicFeedPagination(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	seedPublished(t, repo, 15)
	svc := newTestArticleService(repo)
	ctx := context.Background()

	page1, err := svc.PublicFeed(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page1.Articles, 10)
	assert.True(t, page1.HasNextPage)
	assert.False(t, page1.HasPrevPage)
	assert.Equal(t, 2, page1.NextPage)

	page2, err := svc.PublicFeed(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Articles, 5)
	assert.False(t, page2.HasNextPage)
	assert.True(t, page2.HasPrevPage)
	assert.Equal(t, 1, page2.PrevPage)
	assert.Equal(t, 15, page2.TotalCount)
}

func TestPublicFeedEmpty(t *testing.T) {
	svc := newTestArticleService(mocks.NewMockArticleRepository())

	feed, err := svc.PublicFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, feed.Articles)
	assert.False(t, feed.HasNextPage)
	assert.False(t, feed.HasPrevPage)
}

func TestPublicFeedNewestFirst(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	seedPublished(t, repo, 3)
	svc := newTestArticleService(repo)

	feed, err := svc.PublicFeed(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, feed.Articles, 3)
	assert.Equal(t, "article-02", feed.Articles[0].ID)
	assert.Equal(t, "article-00", feed.Articles[2].ID)
}

func TestAuthorFeedAllStatuses(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	svc := newTestArticleService(repo)
	ctx := context.Background()

	draft, err := svc.Create(ctx, "author-1", articleInput())
	require.NoError(t, err)
	published, err := svc.Create(ctx, "author-1", articleInput())
	require.NoError(t, err)
	require.NoError(t, svc.Publish(ctx, published.ID))

	_, err = svc.Create(ctx, "author-2", articleInput())
	require.NoError(t, err)

	feed, err := svc.AuthorFeed(ctx, "author-1", 1)
	require.NoError(t, err)
	assert.Len(t, feed.Articles, 2, "own feed shows drafts and published, own articles only")

	ids := []string{feed.Articles[0].ID, feed.Articles[1].ID}
	assert.Contains(t, ids, draft.ID)
	assert.Contains(t, ids, published.ID)
}

func TestFeedPageDefaultsToOne(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	seedPublished(t, repo, 5)
	svc := newTestArticleService(repo)

	feed, err := svc.PublicFeed(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, feed.CurrentPage)
	assert.Len(t, feed.Articles, 5)
}
