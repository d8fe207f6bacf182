package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vilinga/supermercado-api/internal/core/domain"
	"github.com/vilinga/supermercado-api/internal/core/ports"
	"github.com/vilinga/supermercado-api/internal/metrics"
)

// ClerkService manages BALCONISTA accounts on behalf of administrators.
type ClerkService struct {
	registrar
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewClerkService(repo ports.UserRepository, bcryptCost int, m *metrics.Metrics, log zerolog.Logger) *ClerkService {
	return &ClerkService{registrar: newRegistrar(repo, bcryptCost), metrics: m, log: log}
}

func (s *ClerkService) Create(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	user, err := s.register(ctx, in, domain.RoleClerk)
	if err != nil {
		return nil, err
	}

	s.metrics.Registration(string(domain.RoleClerk))
	s.log.Info().Str("user_id", user.ID).Msg("clerk created")
	return user, nil
}

func (s *ClerkService) List(ctx context.Context) ([]*domain.User, error) {
	clerks, err := s.repo.ListByRole(ctx, domain.RoleClerk)
	if err != nil {
		return nil, fmt.Errorf("list clerks: %w", err)
	}
	return clerks, nil
}

// Delete removes a clerk. Sales recorded by the clerk keep their
// registrado_por reference.
func (s *ClerkService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id, domain.RoleClerk); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete clerk: %w", err)
	}

	s.metrics.ClerkDeleted()
	s.log.Info().Str("user_id", id).Msg("clerk deleted")
	return nil
}
