package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/georgemunganga/zenith-zap/internal/modules/user"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// rememberMeTTL replaces the configured token lifetime when the user ticks
// "Remember me".
const rememberMeTTL = 30 * 24 * time.Hour

type passwordAuthenticator struct {
	userRepo user.Repository
	jwtKey   []byte
	now      func() time.Time
}

// NewPasswordAuthenticator checks bcrypt hashes from userRepo and signs an
// HS256 token with jwtKey on success.
func NewPasswordAuthenticator(userRepo user.Repository, jwtKey []byte) Authenticator {
	return &passwordAuthenticator{userRepo: userRepo, jwtKey: jwtKey, now: time.Now}
}

func (a *passwordAuthenticator) Authenticate(ctx context.Context, email, password string, ttl time.Duration) (*Result, error) {
	u, err := a.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, user.ErrUserNotFound) {
		return &Result{Reason: ReasonInvalidCredentials}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return &Result{Reason: ReasonInvalidCredentials}, nil
	}

	expirationTime := a.now().Add(ttl)
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  a.now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.jwtKey)
	if err != nil {
		return nil, err
	}

	expiresAt := expirationTime.UTC()
	return &Result{OK: true, Token: tokenString, ExpiresAt: &expiresAt, User: u}, nil
}

// Options tunes the auth service.
type Options struct {
	// TokenTTL is the lifetime of a login token.
	TokenTTL time.Duration
	// LoginDelay is waited before credentials are checked. Zero disables it.
	LoginDelay time.Duration
}

type service struct {
	authn  Authenticator
	users  user.Service
	opts   Options
	logger logrus.FieldLogger
}

// NewService creates a new auth service.
func NewService(authn Authenticator, users user.Service, opts Options, logger logrus.FieldLogger) Service {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	return &service{authn: authn, users: users, opts: opts, logger: logger}
}

func (s *service) Login(ctx context.Context, form LoginForm) (*Result, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	if s.opts.LoginDelay > 0 {
		timer := time.NewTimer(s.opts.LoginDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	ttl := s.opts.TokenTTL
	if form.RememberMe {
		ttl = rememberMeTTL
	}
	res, err := s.authn.Authenticate(ctx, form.Email, form.Password, ttl)
	if err != nil {
		return nil, err
	}

	entry := s.logger.WithFields(logrus.Fields{
		"email":       form.Email,
		"remember_me": form.RememberMe,
	})
	if res.OK {
		entry.Info("Login successful")
	} else {
		entry.WithField("reason", res.Reason).Warn("Login rejected")
	}
	return res, nil
}

func (s *service) Signup(ctx context.Context, form SignupForm) (*user.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.RegisterUser(ctx, form.Profile())
	if errors.Is(err, user.ErrEmailTaken) {
		return nil, ValidationErrors{"email": "An account with this email already exists"}
	}
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":       u.ID,
		"email":         u.Email,
		"role":          u.Role,
		"primary_sport": u.PrimarySport,
	}).Info("Account created")
	return u, nil
}
