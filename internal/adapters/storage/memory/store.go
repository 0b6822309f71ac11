package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"pet-owner-directory/internal/domain/owners"
	"pet-owner-directory/internal/domain/pets"
	"pet-owner-directory/internal/seed"
)

var ErrOwnerMissing = errors.New("owner does not exist")

type petRow struct {
	id      int64
	name    string
	species string
	ownerID *int64
}

// Store guarda dueños y mascotas en memoria. Es la contraparte de las tablas
// owners/pets de los adapters SQL, incluida la FK pets.owner_id.
type Store struct {
	mu sync.RWMutex

	owners map[int64]owners.Owner
	pets   map[int64]petRow

	nextOwnerID int64
	nextPetID   int64
}

func NewStore() *Store {
	return &Store{
		owners:      make(map[int64]owners.Owner),
		pets:        make(map[int64]petRow),
		nextOwnerID: 1,
		nextPetID:   1,
	}
}

// Reseed implementa seed.Store. Los ids vuelven a empezar en 1, igual que una
// tabla SQLite con INTEGER PRIMARY KEY que se vacía y se vuelve a llenar.
func (s *Store) Reseed(ctx context.Context, f seed.Fixture) error {
	if err := f.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Se arma aparte y se publica al final: si algo falla el store queda intacto.
	next := NewStore()

	ownerIDs := make([]int64, 0, len(f.Owners))
	for _, o := range f.Owners {
		ownerIDs = append(ownerIDs, next.insertOwnerLocked(o.Name))
	}

	for _, p := range f.Pets {
		ownerID, err := p.ResolveOwner(ownerIDs)
		if err != nil {
			return err
		}
		if _, err := next.insertPetLocked(p.Name, p.Species, ownerID); err != nil {
			return err
		}
	}

	s.owners = next.owners
	s.pets = next.pets
	s.nextOwnerID = next.nextOwnerID
	s.nextPetID = next.nextPetID
	return nil
}

func (s *Store) insertOwnerLocked(name string) int64 {
	id := s.nextOwnerID
	s.nextOwnerID++
	s.owners[id] = owners.Owner{ID: id, Name: name}
	return id
}

func (s *Store) insertPetLocked(name string, species pets.Species, ownerID *int64) (int64, error) {
	if ownerID != nil {
		if _, ok := s.owners[*ownerID]; !ok {
			return 0, fmt.Errorf("%w: %d", ErrOwnerMissing, *ownerID)
		}
		v := *ownerID
		ownerID = &v
	}

	id := s.nextPetID
	s.nextPetID++
	s.pets[id] = petRow{id: id, name: name, species: string(species), ownerID: ownerID}
	return id, nil
}

func (s *Store) getOwner(id int64) (owners.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.owners[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (s *Store) getPet(id int64) (pets.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}

	p := row.toPet()
	if row.ownerID != nil {
		if o, ok := s.owners[*row.ownerID]; ok {
			p.Owner = &pets.OwnerRef{ID: o.ID, Name: o.Name}
		}
	}
	return p, nil
}

func (s *Store) listPetsByOwner(ownerID int64) []pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, row := range s.pets {
		if row.ownerID != nil && *row.ownerID == ownerID {
			out = append(out, row.toPet())
		}
	}

	// mismo orden que los adapters SQL (ORDER BY id)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

func (r petRow) toPet() pets.Pet {
	p := pets.Pet{
		ID:      r.id,
		Name:    r.name,
		Species: pets.Species(r.species),
	}
	if r.ownerID != nil {
		v := *r.ownerID
		p.OwnerID = &v
	}
	return p
}
