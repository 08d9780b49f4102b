package directory

import (
	"time"

	"github.com/stocktrack/backend/internal/domain/directory"
)

// CreateUserInput carries the fields for creating a directory entry
type CreateUserInput struct {
	Name  string
	Email string
}

// UserResponse is the API representation of a directory entry
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse maps a domain user
func ToUserResponse(user *directory.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserResponses maps a slice of domain users
func ToUserResponses(users []*directory.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return responses
}
