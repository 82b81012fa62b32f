package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/blogging-platform/internal/database"
	"github.com/blogging-platform/internal/models"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// authorRepo is the concrete implementation of AuthorRepository
type authorRepo struct {
	db *database.DB
}

// NewAuthorRepo creates a new author repository
func NewAuthorRepo(db *database.DB) AuthorRepository {
	return &authorRepo{db: db}
}

// Create inserts a new author. A concurrent registration racing on the
// username or email unique indexes surfaces as ErrDuplicate.
func (r *authorRepo) Create(ctx context.Context, author *models.Author) error {
	query := `
		INSERT INTO authors (id, first_name, last_name, username, email, password_hash, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		author.ID, author.FirstName, author.LastName, author.Username,
		author.Email, author.PasswordHash, author.Bio, now, now,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}

// GetByID retrieves an author by ID, returning nil when absent
func (r *authorRepo) GetByID(ctx context.Context, id string) (*models.Author, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail retrieves an author by email, returning nil when absent
func (r *authorRepo) GetByEmail(ctx context.Context, email string) (*models.Author, error) {
	return r.getBy(ctx, "email", email)
}

func (r *authorRepo) getBy(ctx context.Context, column, value string) (*models.Author, error) {
	query := `
		SELECT id, first_name, last_name, username, email, password_hash, bio, created_at, updated_at
		FROM authors WHERE ` + column + ` = $1
	`

	var author models.Author
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&author.ID, &author.FirstName, &author.LastName, &author.Username,
		&author.Email, &author.PasswordHash, &author.Bio,
		&author.CreatedAt, &author.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &author, nil
}

// IdentityExists checks whether the username or the email is already taken
func (r *authorRepo) IdentityExists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM authors WHERE username = $1 OR email = $2)",
		username, email,
	).Scan(&exists)
	return exists, err
}
