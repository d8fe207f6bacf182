package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vilinga/supermercado-api/internal/core/domain"
	"github.com/vilinga/supermercado-api/internal/core/ports"
	"github.com/vilinga/supermercado-api/internal/metrics"
)

type SaleService struct {
	repo    ports.SaleRepository
	metrics *metrics.Metrics
	log     zerolog.Logger
	now     func() time.Time
}

func NewSaleService(repo ports.SaleRepository, m *metrics.Metrics, log zerolog.Logger) *SaleService {
	return &SaleService{repo: repo, metrics: m, log: log, now: time.Now}
}

// Record validates the sale, computes its total once and stores it.
func (s *SaleService) Record(ctx context.Context, in ports.RecordSaleInput) (*ports.SaleResult, error) {
	sale := &domain.Sale{
		Customer:   strings.TrimSpace(in.Customer),
		LineItems:  make([]domain.LineItem, 0, len(in.Items)),
		RecordedBy: in.ClerkID,
		RecordedAt: s.now().UTC(),
	}
	for _, it := range in.Items {
		sale.LineItems = append(sale.LineItems, domain.LineItem{
			Name:      strings.TrimSpace(it.Name),
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	if err := sale.Validate(); err != nil {
		return nil, err
	}
	total, err := domain.ComputeTotal(sale.LineItems)
	if err != nil {
		return nil, err
	}
	sale.Total = total

	id, err := s.repo.Create(ctx, sale)
	if err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}

	s.metrics.SaleRecorded(sale.Total)
	s.log.Info().
		Str("sale_id", id).
		Str("clerk_id", in.ClerkID).
		Int("items", len(sale.LineItems)).
		Float64("total", sale.Total).
		Msg("sale recorded")

	return &ports.SaleResult{ID: id, Total: sale.Total}, nil
}

func (s *SaleService) List(ctx context.Context) ([]*domain.Sale, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}
