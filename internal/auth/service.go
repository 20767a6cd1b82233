package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/melodex/melodex/internal/shared"
)

// Hasher is the one-way password hashing capability.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// BcryptHasher implements Hasher with bcrypt.
type BcryptHasher struct{}

func (BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hashed), nil
}

func (BcryptHasher) Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// Service wraps registration and credential verification.
type Service struct {
	repo   Repository
	hasher Hasher
}

// NewService constructs a new Service.
func NewService(repo Repository, hasher Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Register hashes the password and persists a new account. Input format is
// validated upstream; uniqueness is enforced by the store and propagated as
// shared.ErrEmailTaken.
func (s *Service) Register(ctx context.Context, email, nickname, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, email, nickname, hash)
}

// Authenticate verifies credentials and returns the resolved principal.
// Unknown email and wrong password are indistinguishable to the caller. After
// verification the identity is loaded again; a record vanishing between the
// two steps reports shared.ErrNotFound rather than being assumed impossible.
func (s *Service) Authenticate(ctx context.Context, email, password string) (shared.Principal, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.Principal{}, shared.ErrInvalidCredentials
		}
		return shared.Principal{}, err
	}
	if err := s.hasher.Verify(user.PasswordHash, password); err != nil {
		return shared.Principal{}, shared.ErrInvalidCredentials
	}

	loaded, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return shared.Principal{}, err
	}
	return shared.Principal{ID: loaded.ID, Email: loaded.Email, Roles: []string{RoleUser}}, nil
}
