package memory

import (
	"context"

	"pet-owner-directory/internal/domain/owners"
	"pet-owner-directory/internal/domain/pets"
)

type ownerRepo struct {
	store *Store
}

func NewOwnerRepo(store *Store) owners.Repository {
	return &ownerRepo{store: store}
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	return r.store.getOwner(id)
}

type petRepo struct {
	store *Store
}

func NewPetRepo(store *Store) pets.Repository {
	return &petRepo{store: store}
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	return r.store.getPet(id)
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	return r.store.listPetsByOwner(ownerID), nil
}
