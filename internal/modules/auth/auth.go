package auth

import (
	"context"
	"time"

	"github.com/georgemunganga/zenith-zap/internal/modules/user"
)

// FailureReason says why a login did not succeed.
type FailureReason string

const (
	// ReasonInvalidCredentials covers both an unknown email and a wrong
	// password so the response does not reveal which accounts exist.
	ReasonInvalidCredentials FailureReason = "invalid_credentials"
)

// Result is the outcome of an authentication attempt. Infrastructure
// failures are reported as errors, never as a Result.
type Result struct {
	OK        bool          `json:"ok"`
	Reason    FailureReason `json:"reason,omitempty"`
	Token     string        `json:"token,omitempty"`
	ExpiresAt *time.Time    `json:"expires_at,omitempty"`
	User      *user.User    `json:"user,omitempty"`
}

// Authenticator checks credentials against an identity store.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string, ttl time.Duration) (*Result, error)
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, form LoginForm) (*Result, error)
	Signup(ctx context.Context, form SignupForm) (*user.User, error)
}
