package professional

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, log: logger}
}

func (s *Service) Create(ctx context.Context, p *Professional) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	p.Active = true
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Professional, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Professional) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Update(ctx, p)
}

// Deactivate marks a professional inactive instead of deleting the row, so
// their appointment history stays intact.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*Professional, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Active = false
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*Professional, int, error) {
	return s.repo.List(ctx, activeOnly, limit, offset)
}
