package owners

import (
	"context"
	"fmt"

	"pet-owner-directory/internal/domain/pets"
)

// PetLister es lo único que owners necesita de pets.
// Owner.pets no se guarda: se calcula en cada lectura desde pets.owner_id.
type PetLister interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error)
}

type Service struct {
	repo Repository
	pets PetLister
}

func NewService(repo Repository, petLister PetLister) *Service {
	return &Service{
		repo: repo,
		pets: petLister,
	}
}

// Detail agrupa al dueño con sus mascotas actuales.
type Detail struct {
	Owner Owner
	Pets  []pets.Pet
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	if id <= 0 {
		return Owner{}, ErrNotFound
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, fmt.Errorf("get owner %d: %w", id, err)
	}
	return o, nil
}

func (s *Service) GetDetail(ctx context.Context, id int64) (Detail, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	items, err := s.pets.ListByOwner(ctx, o.ID)
	if err != nil {
		return Detail{}, err
	}

	return Detail{Owner: o, Pets: items}, nil
}
