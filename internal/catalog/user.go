package catalog

import (
	"context"
	"errors"

	"catalog-service/internal/model"
	"catalog-service/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// ListUsers returns the operator accounts, used by the surface to populate
// the created_by / updated_by filter values.
func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Authenticate verifies an operator's credentials and returns the account.
func (s *Service) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return model.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}
