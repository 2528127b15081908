package user

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service defines the interface for user-related business logic.
type Service interface {
	RegisterUser(ctx context.Context, profile Profile) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo Repository
	cost int
	now  func() time.Time
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo, cost: bcrypt.DefaultCost, now: time.Now}
}

func (s *service) RegisterUser(ctx context.Context, profile Profile) (*User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(profile.Password), s.cost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:             uuid.New(),
		Email:          strings.TrimSpace(profile.Email),
		PasswordHash:   string(hashedPassword),
		FullName:       strings.TrimSpace(profile.FullName),
		Role:           profile.Role,
		Age:            profile.Age,
		PrimarySport:   profile.PrimarySport,
		SportIntensity: profile.SportIntensity,
		Diet:           profile.Diet,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}
