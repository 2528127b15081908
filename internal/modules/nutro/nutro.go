package nutro

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/georgemunganga/zenith-zap/internal/platform/validation"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var ErrInvalidEmail = errors.New("valid email is required")

// Feature is one card of the assistant preview.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Page is the "Coming Soon" placeholder for the Nutro AI assistant.
type Page struct {
	Title    string    `json:"title"`
	Tagline  string    `json:"tagline"`
	Status   string    `json:"status"`
	Message  string    `json:"message"`
	Features []Feature `json:"features"`
}

var page = Page{
	Title:   "Nutro AI Assistant",
	Tagline: "Your personal hydration and performance coach",
	Status:  "Coming Soon",
	Message: "Scan this QR code with your smartphone to be notified when our AI hydration assistant launches. " +
		"Get personalized recommendations and track your performance in real-time.",
	Features: []Feature{
		{Title: "Personalized Plans", Description: "AI-powered hydration schedules based on your training intensity and goals"},
		{Title: "Real-time Tracking", Description: "Monitor your hydration status and performance metrics throughout the day"},
		{Title: "Smart Recommendations", Description: "Receive product suggestions based on your unique athletic profile"},
	},
}

// Subscription is the outcome of a waiting-list signup.
type Subscription struct {
	Email             string    `json:"email"`
	AlreadySubscribed bool      `json:"already_subscribed"`
	SubscribedAt      time.Time `json:"subscribed_at"`
}

type Service interface {
	Page() Page
	Subscribe(ctx context.Context, email string) (*Subscription, error)
	Subscribers() int
}

// WaitlistRequest is the body posted by the "Join the Waiting List" form.
type WaitlistRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type service struct {
	mu       sync.RWMutex
	list     map[string]time.Time
	now      func() time.Time
	validate *validator.Validate
	logger   logrus.FieldLogger
}

// NewService keeps the waiting list in process memory.
func NewService(logger logrus.FieldLogger) Service {
	return &service{
		list:     map[string]time.Time{},
		now:      time.Now,
		validate: validation.New(),
		logger:   logger,
	}
}

func (s *service) Page() Page {
	p := page
	p.Features = append([]Feature(nil), page.Features...)
	return p
}

// Subscribe adds email to the waiting list. Subscribing twice is not an
// error; the second call reports the original signup time.
func (s *service) Subscribe(ctx context.Context, email string) (*Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := WaitlistRequest{Email: strings.ToLower(strings.TrimSpace(email))}
	if err := s.validate.Struct(req); err != nil {
		return nil, ErrInvalidEmail
	}
	email = req.Email

	s.mu.Lock()
	defer s.mu.Unlock()
	if at, ok := s.list[email]; ok {
		return &Subscription{Email: email, AlreadySubscribed: true, SubscribedAt: at}, nil
	}
	at := s.now()
	s.list[email] = at
	s.logger.WithField("email", email).Info("Joined Nutro waiting list")
	return &Subscription{Email: email, SubscribedAt: at}, nil
}

func (s *service) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}
