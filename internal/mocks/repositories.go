package mocks

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/blogging-platform/internal/models"
	"github.com/blogging-platform/internal/repository"
)

// MockAuthorRepository is a mock implementation of AuthorRepository
type MockAuthorRepository struct {
	Authors       map[string]*models.Author
	EmailToAuthor map[string]*models.Author
	CreateError   error
	LookupError   error
}

func NewMockAuthorRepository() *MockAuthorRepository {
	return &MockAuthorRepository{
		Authors:       make(map[string]*models.Author),
		EmailToAuthor: make(map[string]*models.Author),
	}
}

func (m *MockAuthorRepository) Create(ctx context.Context, author *models.Author) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	for _, a := range m.Authors {
		if a.Username == author.Username || a.Email == author.Email {
			return repository.ErrDuplicate
		}
	}
	m.Authors[author.ID] = author
	m.EmailToAuthor[author.Email] = author
	return nil
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, id string) (*models.Author, error) {
	if m.LookupError != nil {
		return nil, m.LookupError
	}
	return m.Authors[id], nil
}

func (m *MockAuthorRepository) GetByEmail(ctx context.Context, email string) (*models.Author, error) {
	if m.LookupError != nil {
		return nil, m.LookupError
	}
	return m.EmailToAuthor[email], nil
}

func (m *MockAuthorRepository) IdentityExists(ctx context.Context, username, email string) (bool, error) {
	if m.LookupError != nil {
		return false, m.LookupError
	}
	for _, a := range m.Authors {
		if a.Username == username || a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    map[string]*models.Article
	Authors     map[string]*models.Author
	CreateError error
	LookupError error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
		Authors:  make(map[string]*models.Author),
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	stored := *article
	m.Articles[article.ID] = &stored
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if m.LookupError != nil {
		return nil, m.LookupError
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) GetByIDWithAuthor(ctx context.Context, id string) (*models.ArticleWithAuthor, error) {
	article, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	result := &models.ArticleWithAuthor{Article: *article}
	if author, ok := m.Authors[article.AuthorID]; ok {
		result.AuthorFirstName = author.FirstName
		result.AuthorLastName = author.LastName
	}
	return result, nil
}

func (m *MockArticleRepository) UpdateContent(ctx context.Context, article *models.Article) error {
	stored, ok := m.Articles[article.ID]
	if !ok {
		return sql.ErrNoRows
	}
	stored.Title = article.Title
	stored.Description = article.Description
	stored.Body = article.Body
	stored.Tags = article.Tags
	stored.ReadingTime = article.ReadingTime
	stored.UpdatedAt = time.Now()
	return nil
}

func (m *MockArticleRepository) Publish(ctx context.Context, id string, publishedAt time.Time) error {
	stored, ok := m.Articles[id]
	if !ok {
		return nil
	}
	stored.Status = models.StatusPublished
	stored.CreatedAt = publishedAt
	stored.UpdatedAt = publishedAt
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) IncrementReadCount(ctx context.Context, id string) (*models.Article, error) {
	stored, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	stored.ReadCount++
	copied := *stored
	return &copied, nil
}

func (m *MockArticleRepository) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*models.Article, error) {
	var matched []*models.Article
	for _, a := range m.Articles {
		if a.AuthorID == authorID {
			matched = append(matched, a)
		}
	}
	return pageOf(matched, limit, offset), nil
}

func (m *MockArticleRepository) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	count := 0
	for _, a := range m.Articles {
		if a.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (m *MockArticleRepository) ListPublished(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	var matched []*models.Article
	for _, a := range m.Articles {
		if a.Status == models.StatusPublished {
			matched = append(matched, a)
		}
	}
	return pageOf(matched, limit, offset), nil
}

func (m *MockArticleRepository) CountPublished(ctx context.Context) (int, error) {
	count := 0
	for _, a := range m.Articles {
		if a.Status == models.StatusPublished {
			count++
		}
	}
	return count, nil
}

// pageOf sorts newest first and slices out one page, like the SQL repos
func pageOf(articles []*models.Article, limit, offset int) []*models.Article {
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	if offset >= len(articles) {
		return nil
	}
	end := offset + limit
	if end > len(articles) {
		end = len(articles)
	}
	return articles[offset:end]
}
