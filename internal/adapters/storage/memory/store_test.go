package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-owner-directory/internal/domain/owners"
	"pet-owner-directory/internal/domain/pets"
	"pet-owner-directory/internal/seed"
)

func createOwner(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertOwnerLocked(name)
}

func createPet(s *Store, name string, species pets.Species, ownerID *int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertPetLocked(name, species, ownerID)
}

func TestStore_PetResolvesOwner(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	oid := createOwner(t, s, "Ben")
	pid, err := createPet(s, "Ben", pets.SpeciesDog, &oid)
	require.NoError(t, err)

	p, err := NewPetRepo(s).GetByID(ctx, pid)
	require.NoError(t, err)
	require.NotNil(t, p.Owner)
	assert.Equal(t, "Ben", p.Owner.Name)
	assert.Equal(t, oid, *p.OwnerID)
}

func TestStore_PetWithoutOwner(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	pid, err := createPet(s, "Stray", pets.SpeciesTurtle, nil)
	require.NoError(t, err)

	p, err := NewPetRepo(s).GetByID(ctx, pid)
	require.NoError(t, err)
	assert.Nil(t, p.OwnerID)
	assert.False(t, p.HasOwner())
}

func TestStore_RejectsUnknownOwner(t *testing.T) {
	missing := int64(99)
	_, err := createPet(NewStore(), "Rex", pets.SpeciesDog, &missing)
	assert.ErrorIs(t, err, ErrOwnerMissing)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := NewPetRepo(s).GetByID(ctx, 1)
	assert.ErrorIs(t, err, pets.ErrNotFound)

	_, err = NewOwnerRepo(s).GetByID(ctx, 1)
	assert.ErrorIs(t, err, owners.ErrNotFound)
}

func TestStore_ListByOwnerOrderedByID(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	a := createOwner(t, s, "A")
	b := createOwner(t, s, "B")
	for _, name := range []string{"p1", "p2", "p3", "p4", "p5"} {
		owner := a
		if name == "p3" {
			owner = b
		}
		_, err := createPet(s, name, pets.SpeciesCat, &owner)
		require.NoError(t, err)
	}

	items, err := NewPetRepo(s).ListByOwner(ctx, a)
	require.NoError(t, err)
	require.Len(t, items, 4)
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].ID, items[i].ID)
	}

	none, err := NewPetRepo(s).ListByOwner(ctx, 1234)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_ReseedReplacesEverything(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	createOwner(t, s, "Old")
	oldOwner := createOwner(t, s, "Old 2")
	_, err := createPet(s, "OldPet", pets.SpeciesDog, &oldOwner)
	require.NoError(t, err)

	require.NoError(t, s.Reseed(ctx, seed.Fixture{
		Owners: []seed.OwnerFixture{{Name: "New"}},
		Pets: []seed.PetFixture{
			{Name: "A", Species: pets.SpeciesCat, OwnerIndex: 0},
			{Name: "B", Species: pets.SpeciesHamster, OwnerIndex: seed.NoOwner},
		},
	}))

	_, err = NewOwnerRepo(s).GetByID(ctx, oldOwner)
	assert.ErrorIs(t, err, owners.ErrNotFound)

	o, err := NewOwnerRepo(s).GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "New", o.Name)

	items, err := NewPetRepo(s).ListByOwner(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Name)

	_, err = NewPetRepo(s).GetByID(ctx, 3)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestStore_ReseedRestartsIDs(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	f := seed.Fixture{
		Owners: []seed.OwnerFixture{{Name: "Ben"}, {Name: "Alice"}},
		Pets:   []seed.PetFixture{{Name: "Ben", Species: pets.SpeciesDog, OwnerIndex: 0}},
	}

	for range 3 {
		require.NoError(t, s.Reseed(ctx, f))

		p, err := NewPetRepo(s).GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Ben", p.Name)
		require.NotNil(t, p.Owner)
		assert.Equal(t, int64(1), p.Owner.ID)

		o, err := NewOwnerRepo(s).GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Alice", o.Name)
	}
}

func TestStore_ReseedInvalidFixtureKeepsData(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	oid := createOwner(t, s, "Keep")

	err := s.Reseed(ctx, seed.Fixture{Pets: []seed.PetFixture{{Name: "X", OwnerIndex: 0}}})
	assert.ErrorIs(t, err, seed.ErrInvalidFixture)

	o, err := NewOwnerRepo(s).GetByID(ctx, oid)
	require.NoError(t, err)
	assert.Equal(t, "Keep", o.Name)
}

func TestStore_OwnerPetsReflectCurrentState(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := NewPetRepo(s)

	oid := createOwner(t, s, "Ben")
	items, _ := repo.ListByOwner(ctx, oid)
	assert.Empty(t, items)

	_, err := createPet(s, "Rex", pets.SpeciesDog, &oid)
	require.NoError(t, err)
	items, _ = repo.ListByOwner(ctx, oid)
	assert.Len(t, items, 1)
}
