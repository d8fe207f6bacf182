package ports

import (
	"context"

	"github.com/vilinga/supermercado-api/internal/core/domain"
)

// RegisterInput carries the fields shared by admin and clerk registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Claims is the decoded content of a bearer token.
type Claims struct {
	UserID string
	Role   domain.Role
}

type AuthService interface {
	RegisterAdmin(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenIssuer signs tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID string, role domain.Role) (string, error)
}

// TokenVerifier validates a raw bearer token and returns its claims.
type TokenVerifier interface {
	Verify(raw string) (*Claims, error)
}

// LoginLimiter throttles repeated login attempts for the same email.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
	Reset(ctx context.Context, email string) error
}
