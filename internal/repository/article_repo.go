package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/blogging-platform/internal/database"
	"github.com/blogging-platform/internal/models"
	"github.com/lib/pq"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `id, title, description, body, tags, reading_time, status, read_count, author_id, created_at, updated_at`

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Description, article.Body,
		pq.Array(article.Tags), article.ReadingTime, article.Status,
		article.ReadCount, article.AuthorID, article.CreatedAt, article.UpdatedAt,
	)
	return err
}

// GetByID retrieves an article by ID, returning nil when absent
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// GetByIDWithAuthor retrieves an article joined with its author's display
// name for the public article page, returning nil when absent
func (r *articleRepo) GetByIDWithAuthor(ctx context.Context, id string) (*models.ArticleWithAuthor, error) {
	query := `
		SELECT a.id, a.title, a.description, a.body, a.tags, a.reading_time,
		       a.status, a.read_count, a.author_id, a.created_at, a.updated_at,
		       au.first_name, au.last_name
		FROM articles a
		JOIN authors au ON au.id = a.author_id
		WHERE a.id = $1
	`

	var article models.ArticleWithAuthor
	var tags pq.StringArray
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID, &article.Title, &article.Description, &article.Body,
		&tags, &article.ReadingTime, &article.Status, &article.ReadCount,
		&article.AuthorID, &article.CreatedAt, &article.UpdatedAt,
		&article.AuthorFirstName, &article.AuthorLastName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	article.Tags = tags
	return &article, nil
}

// UpdateContent overwrites the article's content fields and bumps
// updated_at. Status is untouched. Returns sql.ErrNoRows when absent.
func (r *articleRepo) UpdateContent(ctx context.Context, article *models.Article) error {
	query := `
		UPDATE articles
		SET title = $2, description = $3, body = $4, tags = $5, reading_time = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Description, article.Body,
		pq.Array(article.Tags), article.ReadingTime, time.Now(),
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Publish transitions the article to Published and resets both timestamps
// to the publish instant, which becomes the feed-ordering timestamp
func (r *articleRepo) Publish(ctx context.Context, id string, publishedAt time.Time) error {
	query := `
		UPDATE articles
		SET status = $2, created_at = $3, updated_at = $3
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, models.StatusPublished, publishedAt)
	return err
}

// Delete removes an article by ID. Deleting an absent ID is a no-op.
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	return err
}

// IncrementReadCount atomically bumps the read count by one and returns
// the updated article, or nil when absent. Concurrent views never lose
// increments; atomicity is delegated to the database.
func (r *articleRepo) IncrementReadCount(ctx context.Context, id string) (*models.Article, error) {
	query := `
		UPDATE articles
		SET read_count = read_count + 1
		WHERE id = $1
		RETURNING ` + articleColumns

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// ListByAuthor retrieves a page of the author's articles in all statuses,
// newest first
func (r *articleRepo) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*models.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles WHERE author_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, authorID, limit, offset)
}

// CountByAuthor returns the total number of the author's articles
func (r *articleRepo) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles WHERE author_id = $1", authorID).Scan(&count)
	return count, err
}

// ListPublished retrieves a page of published articles, newest first
func (r *articleRepo) ListPublished(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, string(models.StatusPublished), limit, offset)
}

// CountPublished returns the total number of published articles
func (r *articleRepo) CountPublished(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles WHERE status = $1", models.StatusPublished).Scan(&count)
	return count, err
}

func (r *articleRepo) list(ctx context.Context, query string, filter string, limit, offset int) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// rowScanner abstracts sql.Row and sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var tags pq.StringArray

	err := row.Scan(
		&article.ID, &article.Title, &article.Description, &article.Body,
		&tags, &article.ReadingTime, &article.Status, &article.ReadCount,
		&article.AuthorID, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	article.Tags = tags
	return &article, nil
}
