package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a single product entry of a sale.
type LineItem struct {
	Name      string  `json:"nome" bson:"nome"`
	UnitPrice float64 `json:"preco" bson:"preco"`
	Quantity  float64 `json:"quantidade" bson:"quantidade"`
}

// Sale is an immutable record of a checkout performed by a clerk.
type Sale struct {
	ID         string     `json:"id"`
	Customer   string     `json:"cliente"`
	LineItems  []LineItem `json:"produtos"`
	Total      float64    `json:"total"`
	RecordedBy string     `json:"registrado_por"`
	RecordedAt time.Time  `json:"data"`
}

// Validate checks the invariants a sale must hold before it is stored.
// Prices and quantities must be strictly positive.
func (s *Sale) Validate() error {
	if s.Customer == "" {
		return fmt.Errorf("%w: cliente is required", ErrInvalidSale)
	}
	if len(s.LineItems) == 0 {
		return fmt.Errorf("%w: at least one product is required", ErrInvalidSale)
	}
	for i, it := range s.LineItems {
		switch {
		case it.Name == "":
			return fmt.Errorf("%w: produtos[%d].nome is required", ErrInvalidSale, i)
		case it.UnitPrice <= 0:
			return fmt.Errorf("%w: produtos[%d].preco must be greater than 0", ErrInvalidSale, i)
		case it.Quantity <= 0:
			return fmt.Errorf("%w: produtos[%d].quantidade must be greater than 0", ErrInvalidSale, i)
		}
	}
	return nil
}

// ComputeTotal returns Σ(preco × quantidade) using decimal arithmetic so that
// binary float error does not accumulate across line items. A total that does
// not fit in a float64 is rejected with ErrInvalidSale.
func ComputeTotal(items []LineItem) (float64, error) {
	total := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromFloat(it.Quantity))
		total = total.Add(line)
	}
	f := total.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: total is out of range", ErrInvalidSale)
	}
	return f, nil
}
