package event

import (
	"time"

	"github.com/gaienhofen/user-onboarding/internal/domain/entity"
)

// TypeUserCreated is the routing name for UserCreated messages.
const TypeUserCreated = "user.created"

// UserCreated is published once a canonical user record has been stored.
// It never carries password material.
type UserCreated struct {
	Type      string    `json:"type"`
	UserID    string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserCreated(u *entity.User) UserCreated {
	return UserCreated{
		Type:      TypeUserCreated,
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.UTC(),
	}
}
