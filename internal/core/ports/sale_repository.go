package ports

import (
	"context"

	"github.com/vilinga/supermercado-api/internal/core/domain"
)

// SaleRepository defines persistence operations for the vendas collection.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (string, error)
	List(ctx context.Context) ([]*domain.Sale, error)
}
