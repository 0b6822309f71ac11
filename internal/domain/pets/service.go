package pets

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, fmt.Errorf("get pet %d: %w", id, err)
	}
	return p, nil
}

// ListByOwner nunca devuelve nil para que los callers puedan usar len() sin más.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pets of owner %d: %w", ownerID, err)
	}
	if items == nil {
		items = []Pet{}
	}
	return items, nil
}
