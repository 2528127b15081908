package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// Role distinguishes athletes from the coaches who manage them.
type Role string

const (
	RolePlayer Role = "player"
	RoleCoach  Role = "coach"
)

// Intensity is how hard the user trains.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// User represents a registered storefront account.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FullName       string    `json:"full_name"`
	Role           Role      `json:"role"`
	Age            int       `json:"age"`
	PrimarySport   string    `json:"primary_sport"`
	SportIntensity Intensity `json:"sport_intensity"`
	Diet           string    `json:"diet"`
	CreatedAt      time.Time `json:"created_at"`
}

// Profile is the registration data collected by the signup form.
type Profile struct {
	FullName       string
	Email          string
	Password       string
	Role           Role
	Age            int
	PrimarySport   string
	SportIntensity Intensity
	Diet           string
}
