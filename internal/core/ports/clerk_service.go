package ports

import (
	"context"

	"github.com/vilinga/supermercado-api/internal/core/domain"
)

type ClerkService interface {
	Create(ctx context.Context, in RegisterInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
