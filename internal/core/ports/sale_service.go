package ports

import (
	"context"

	"github.com/vilinga/supermercado-api/internal/core/domain"
)

// LineItemInput is a product line as received from the transport layer.
type LineItemInput struct {
	Name      string
	UnitPrice float64
	Quantity  float64
}

// RecordSaleInput carries everything needed to record a sale.
// ClerkID comes from the token, never from the request body.
type RecordSaleInput struct {
	ClerkID  string
	Customer string
	Items    []LineItemInput
}

// SaleResult is returned once a sale has been persisted.
type SaleResult struct {
	ID    string
	Total float64
}

type SaleService interface {
	Record(ctx context.Context, in RecordSaleInput) (*SaleResult, error)
	List(ctx context.Context) ([]*domain.Sale, error)
}
