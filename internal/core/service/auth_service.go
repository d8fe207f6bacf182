package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vilinga/supermercado-api/internal/core/domain"
	"github.com/vilinga/supermercado-api/internal/core/ports"
	"github.com/vilinga/supermercado-api/internal/metrics"
)

// AuthService implements admin registration and login.
type AuthService struct {
	registrar
	tokens  ports.TokenIssuer
	limiter ports.LoginLimiter
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewAuthService wires the service. limiter may be nil, in which case login
// attempts are not throttled.
func NewAuthService(
	repo ports.UserRepository,
	tokens ports.TokenIssuer,
	limiter ports.LoginLimiter,
	bcryptCost int,
	m *metrics.Metrics,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		registrar: newRegistrar(repo, bcryptCost),
		tokens:    tokens,
		limiter:   limiter,
		metrics:   m,
		log:       log,
	}
}

func (s *AuthService) RegisterAdmin(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	user, err := s.register(ctx, in, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.metrics.Registration(string(domain.RoleAdmin))
	s.log.Info().Str("user_id", user.ID).Msg("admin registered")
	return user, nil
}

// Login returns a signed token. Unknown email and wrong password are
// reported as distinct errors; the transport layer renders both identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domain.ErrMissingFields
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
		} else if !allowed {
			s.metrics.Login("throttled")
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.metrics.Login("not_found")
			s.log.Info().Msg("login failed: unknown email")
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.metrics.Login("bad_password")
		s.log.Info().Str("user_id", user.ID).Msg("login failed: bad password")
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login attempts")
		}
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", err
	}

	s.metrics.Login("success")
	return token, nil
}
