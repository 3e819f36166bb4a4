package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campulse/campulse-api/internal/core/domain"
	"github.com/campulse/campulse-api/internal/core/ports"
	"github.com/campulse/campulse-api/internal/pkg/latency"
	"github.com/campulse/campulse-api/internal/pkg/metrics"
)

// AuthService holds the current session and validates credentials against the
// persisted credential set.
type AuthService struct {
	creds     ports.CredentialRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	delay     latency.Simulator
	log       zerolog.Logger

	mu      sync.RWMutex
	current *domain.User
	ready   bool
}

func NewAuthService(
	creds ports.CredentialRepository,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
	delay latency.Simulator,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		creds:     creds,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		delay:     delay,
		log:       log,
	}
}

// Restore loads the persisted session snapshot. A corrupt snapshot is
// discarded. The service is marked ready on every path.
func (s *AuthService) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.ready = true }()

	user, err := s.sessions.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrCorruptSession):
		s.log.Warn().Err(err).Msg("discarding corrupt session snapshot")
		if clearErr := s.sessions.Clear(ctx); clearErr != nil {
			s.log.Warn().Err(clearErr).Msg("failed to clear corrupt session")
		}
	case err != nil:
		s.log.Error().Err(err).Msg("failed to load session snapshot")
	case user != nil:
		s.current = user
		s.log.Info().Str("user_id", user.ID).Msg("session restored")
	}
}

// Login matches email and password against the credential set, falling back
// to the demo account. On success the sanitized user becomes the session.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.creds.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	var user *domain.User
	for _, c := range creds {
		if c.Email == email && bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil {
			u := c.User()
			user = &u
			break
		}
	}
	if user == nil && email == domain.DemoEmail && password == domain.DemoPassword {
		demo := domain.DemoUser()
		user = &demo
	}
	if user == nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.activate(ctx, *user)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "ok").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// Signup registers a new account and starts a session for it. E-mail
// uniqueness is an exact, case-sensitive comparison.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (string, *domain.User, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.creds.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("signup: %w", err)
	}
	for _, c := range creds {
		if c.Email == in.Email {
			metrics.AuthAttemptsTotal.WithLabelValues("signup", "rejected").Inc()
			return "", nil, domain.ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("signup: hash password: %w", err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", nil, fmt.Errorf("signup: generate id: %w", err)
	}

	now := time.Now().UTC()
	cred := domain.Credential{
		ID:           id.String(),
		FullName:     in.FullName,
		Email:        in.Email,
		School:       in.School,
		Department:   in.Department,
		Level:        in.Level,
		CreatedAt:    &now,
		PasswordHash: string(hash),
	}

	if err := s.creds.Save(ctx, append(creds, cred)); err != nil {
		return "", nil, fmt.Errorf("signup: %w", err)
	}

	user := cred.User()
	token, err := s.activate(ctx, user)
	if err != nil {
		// Undo the append so a retry with the same e-mail is not rejected.
		if rbErr := s.creds.Save(ctx, creds); rbErr != nil {
			s.log.Error().Err(rbErr).Str("email", in.Email).Msg("failed to roll back credential after signup error")
		}
		return "", nil, fmt.Errorf("signup: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", "ok").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return token, &user, nil
}

// Logout ends the session and removes its snapshot.
func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Current returns a copy of the session user.
func (s *AuthService) Current() (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, false
	}
	u := *s.current
	return &u, true
}

func (s *AuthService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// activate signs a token, persists the snapshot and only then replaces the
// in-memory session. Caller holds s.mu.
func (s *AuthService) activate(ctx context.Context, user domain.User) (string, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Save(ctx, user); err != nil {
		return "", err
	}
	s.current = &user
	return token, nil
}

func (s *AuthService) generateToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
