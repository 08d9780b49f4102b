package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"github.com/stocktrack/backend/internal/domain/directory"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// userHashKey is the Redis hash holding all directory entries, one field
// per user id with a JSON-encoded value.
const userHashKey = "directory:users"

// RedisUserRepository implements UserRepository over a single Redis hash.
// The directory is small and read-heavy, so whole-hash reads keep the
// access pattern to one round trip per operation.
type RedisUserRepository struct {
	client *redis.Client
}

// NewRedisUserRepository creates a new RedisUserRepository
func NewRedisUserRepository(client *redis.Client) *RedisUserRepository {
	return &RedisUserRepository{client: client}
}

// Save stores a user under its id field
func (r *RedisUserRepository) Save(ctx context.Context, user *directory.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := r.client.HSet(ctx, userHashKey, user.ID, payload).Err(); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}
	return nil
}

// FindByID returns the user or ErrNotFound
func (r *RedisUserRepository) FindByID(ctx context.Context, id string) (*directory.User, error) {
	payload, err := r.client.HGet(ctx, userHashKey, id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	var user directory.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", id, err)
	}
	return &user, nil
}

// FindAll returns every user ordered by name ascending
func (r *RedisUserRepository) FindAll(ctx context.Context) ([]*directory.User, error) {
	payloads, err := r.client.HVals(ctx, userHashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*directory.User, 0, len(payloads))
	for _, payload := range payloads {
		var user directory.User
		if err := json.Unmarshal([]byte(payload), &user); err != nil {
			return nil, fmt.Errorf("failed to decode user entry: %w", err)
		}
		users = append(users, &user)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

// Delete removes the user or fails with ErrNotFound
func (r *RedisUserRepository) Delete(ctx context.Context, id string) error {
	removed, err := r.client.HDel(ctx, userHashKey, id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if removed == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure RedisUserRepository implements UserRepository
var _ directory.UserRepository = (*RedisUserRepository)(nil)
