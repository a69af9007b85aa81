package repository

import (
	"context"
	"errors"

	"github.com/gaienhofen/user-onboarding/internal/domain/entity"
)

// ErrEmailTaken is returned by Save when another record already owns the email.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines the interface for user-related database operations.
// FindByEmail returns (nil, nil) when no record matches.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
