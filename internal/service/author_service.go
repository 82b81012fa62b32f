package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogging-platform/internal/auth"
	"github.com/blogging-platform/internal/models"
	"github.com/blogging-platform/internal/repository"
	"github.com/blogging-platform/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// authorService implements AuthorService
type authorService struct {
	repo      repository.AuthorRepository
	codec     *auth.TokenCodec
	validator *validation.Validator
	log       zerolog.Logger
}

func newAuthorService(repo repository.AuthorRepository, codec *auth.TokenCodec, validator *validation.Validator, log zerolog.Logger) AuthorService {
	return &authorService{
		repo:      repo,
		codec:     codec,
		validator: validator,
		log:       log.With().Str("service", "author").Logger(),
	}
}

// Register validates the sign-up payload, checks username/email
// uniqueness, hashes the password and persists the author. A uniqueness
// race during persistence surfaces as ErrConflict, not a crash.
func (s *authorService) Register(ctx context.Context, in *validation.SignUpInput) (*models.Author, error) {
	if err := s.validator.ValidateSignUp(in); err != nil {
		return nil, err
	}

	taken, err := s.repo.IdentityExists(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("checking identity uniqueness: %w", err)
	}
	if taken {
		return nil, ErrConflict
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	author := &models.Author{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Bio:          in.Bio,
	}

	if err := s.repo.Create(ctx, author); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("creating author: %w", err)
	}

	s.log.Info().Str("author_id", author.ID).Str("username", author.Username).Msg("Author registered")
	return author, nil
}

// Login validates the sign-in payload, verifies the credentials and
// issues a session token. Unknown email and wrong password are
// indistinguishable: both return ErrInvalidCredentials.
func (s *authorService) Login(ctx context.Context, in *validation.SignInInput) (string, error) {
	if err := s.validator.ValidateSignIn(in); err != nil {
		return "", err
	}

	author, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", fmt.Errorf("looking up author: %w", err)
	}
	if author == nil {
		return "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(in.Password, author.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.codec.Issue(author.ID, author.Email)
	if err != nil {
		return "", fmt.Errorf("issuing session token: %w", err)
	}

	s.log.Info().Str("author_id", author.ID).Msg("Author logged in")
	return token, nil
}
