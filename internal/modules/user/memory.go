package user

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]User
	byEmail map[string]uuid.UUID
}

// NewMemoryRepository creates a process-local user repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:    make(map[uuid.UUID]User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *memoryRepository) CreateUser(ctx context.Context, user *User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := normalizeEmail(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return fmt.Errorf("%s: %w", user.Email, ErrEmailTaken)
	}
	r.byID[user.ID] = *user
	r.byEmail[key] = user.ID
	return nil
}

func (r *memoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", email, ErrUserNotFound)
	}
	u := r.byID[id]
	return &u, nil
}

func (r *memoryRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, ErrUserNotFound)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[parsedID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrUserNotFound)
	}
	return &u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
