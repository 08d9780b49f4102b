// Package directory holds the standalone user directory: a flat list of
// names and emails kept in a key-value store, unrelated to inventory.
package directory

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// User is one directory entry. IDs are uuids minted at creation.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a directory entry with validation
func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, shared.ErrInvalidInput.WithMessage("Name is required")
	}
	if email == "" {
		return nil, shared.ErrInvalidInput.WithMessage("Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, shared.ErrInvalidInput.WithMessage("Email is not a valid address")
	}

	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}, nil
}

// UserRepository defines the key-value persistence contract for users
type UserRepository interface {
	// Save stores or replaces the user
	Save(ctx context.Context, user *User) error
	// FindByID returns the user or ErrNotFound
	FindByID(ctx context.Context, id string) (*User, error)
	// FindAll returns every user, ordered by name ascending
	FindAll(ctx context.Context) ([]*User, error)
	// Delete removes the user; ErrNotFound when absent
	Delete(ctx context.Context, id string) error
}
