package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gaienhofen/user-onboarding/internal/domain/entity"
	"github.com/gaienhofen/user-onboarding/internal/domain/repository"
)

// UserRepository keeps users in process memory for tests and local runs.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]entity.User)}
}

// Save assigns identity and timestamps to u and stores a copy.
func (r *UserRepository) Save(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[u.Email]; exists {
		return repository.ErrEmailTaken
	}
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.byEmail[u.Email] = *u
	return nil
}

// FindByEmail returns a copy of the stored record, or nil when absent.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
