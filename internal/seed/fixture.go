package seed

import (
	"errors"
	"fmt"

	"pet-owner-directory/internal/domain/pets"
)

var ErrInvalidFixture = errors.New("invalid fixture")

// NoOwner marca una mascota sin dueño en PetFixture.OwnerIndex.
const NoOwner = -1

// Fixture es el set completo de datos que reemplaza al contenido del store.
// Los ids los asigna el store; las mascotas referencian dueños por posición.
type Fixture struct {
	Owners []OwnerFixture
	Pets   []PetFixture
}

type OwnerFixture struct {
	Name string
}

type PetFixture struct {
	Name       string
	Species    pets.Species
	OwnerIndex int
}

// Validate revisa que cada OwnerIndex apunte a un dueño del fixture.
func (f Fixture) Validate() error {
	for i, p := range f.Pets {
		if p.OwnerIndex == NoOwner {
			continue
		}
		if p.OwnerIndex < 0 || p.OwnerIndex >= len(f.Owners) {
			return fmt.Errorf("%w: pet %d references owner index %d (have %d owners)",
				ErrInvalidFixture, i, p.OwnerIndex, len(f.Owners))
		}
	}
	return nil
}

// ResolveOwner traduce OwnerIndex al id asignado por el store.
// ownerIDs[i] es el id del dueño f.Owners[i].
func (p PetFixture) ResolveOwner(ownerIDs []int64) (*int64, error) {
	if p.OwnerIndex == NoOwner {
		return nil, nil
	}
	if p.OwnerIndex < 0 || p.OwnerIndex >= len(ownerIDs) {
		return nil, fmt.Errorf("%w: owner index %d out of range", ErrInvalidFixture, p.OwnerIndex)
	}
	id := ownerIDs[p.OwnerIndex]
	return &id, nil
}
