package seed

import (
	"github.com/brianvoe/gofakeit/v7"

	"pet-owner-directory/internal/domain/pets"
)

const (
	DefaultOwners = 50
	DefaultPets   = 100
)

type Options struct {
	Owners int
	Pets   int
}

// Generate arma un fixture aleatorio: N dueños con nombre completo y M mascotas
// con nombre de pila, especie de pets.AllSpecies y un dueño al azar.
// Con un faker creado con la misma semilla el resultado es idéntico.
func Generate(fake *gofakeit.Faker, opts Options) Fixture {
	if opts.Owners < 0 {
		opts.Owners = 0
	}
	if opts.Pets < 0 {
		opts.Pets = 0
	}

	f := Fixture{
		Owners: make([]OwnerFixture, 0, opts.Owners),
		Pets:   make([]PetFixture, 0, opts.Pets),
	}

	for range opts.Owners {
		f.Owners = append(f.Owners, OwnerFixture{Name: fake.Name()})
	}

	for range opts.Pets {
		owner := NoOwner
		if len(f.Owners) > 0 {
			owner = fake.Number(0, len(f.Owners)-1)
		}
		f.Pets = append(f.Pets, PetFixture{
			Name:       fake.FirstName(),
			Species:    pets.AllSpecies[fake.Number(0, len(pets.AllSpecies)-1)],
			OwnerIndex: owner,
		})
	}

	return f
}
