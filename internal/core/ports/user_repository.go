package ports

import (
	"context"

	"github.com/vilinga/supermercado-api/internal/core/domain"
)

// UserRepository defines persistence operations for the usuarios collection.
type UserRepository interface {
	// Create inserts the user and returns it with the store-assigned ID.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no user with the given id
	// and role exists, including when id is not a well-formed identifier.
	FindByID(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
