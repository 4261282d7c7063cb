package service

import (
	"context"
	"errors"
	"fmt"

	"go-cms-auth/internal/model"
	"go-cms-auth/internal/password"
	"go-cms-auth/internal/token"
)

// UserStore is the persistence contract this service consumes. The pgx
// repository satisfies it; tests substitute an in-memory fake.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	Insert(ctx context.Context, username string, passwordHash string) (int64, error)
}

type AuthService struct {
	store  UserStore
	issuer *token.Issuer
}

func NewAuthService(store UserStore, issuer *token.Issuer) *AuthService {
	return &AuthService{store: store, issuer: issuer}
}

// Register checks username availability, hashes the password and persists
// the new record. The existence check is advisory; the store's unique
// constraint settles concurrent registrations and also reports
// ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username string, plaintext string) error {
	_, err := s.store.FindByUsername(ctx, username)
	if err == nil {
		return model.ErrUsernameTaken
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return err
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return err
	}

	affected, err := s.store.Insert(ctx, username, hash)
	if err != nil {
		return err
	}
	if affected != 1 {
		return model.ErrRegistrationFailed
	}

	return nil
}

// Login verifies the credentials and returns a scheme-prefixed signed
// token. Unknown usernames and wrong passwords produce the same
// ErrLoginFailed on purpose.
func (s *AuthService) Login(ctx context.Context, username string, plaintext string) (string, error) {
	user, err := s.store.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return "", model.ErrLoginFailed
	}
	if err != nil {
		return "", err
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return "", model.ErrLoginFailed
	}

	signed, err := s.issuer.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue login token: %w", err)
	}

	return token.BearerPrefix + signed, nil
}

// Profile loads the redacted record for an authenticated identity.
func (s *AuthService) Profile(ctx context.Context, id int64) (model.Profile, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return model.Profile{}, err
	}
	return user.Profile(), nil
}
