package pets

// Species define las especies que usa el seed.
// El modelo no las restringe: species es texto libre.
type Species string

const (
	SpeciesDog     Species = "Dog"
	SpeciesCat     Species = "Cat"
	SpeciesChicken Species = "Chicken"
	SpeciesHamster Species = "Hamster"
	SpeciesTurtle  Species = "Turtle"
)

// AllSpecies es la lista fija de la que el seed elige.
var AllSpecies = []Species{
	SpeciesDog,
	SpeciesCat,
	SpeciesChicken,
	SpeciesHamster,
	SpeciesTurtle,
}

// OwnerRef es la referencia (ya resuelta) al dueño de una mascota.
type OwnerRef struct {
	ID   int64
	Name string
}

// Pet representa una mascota del directorio.
type Pet struct {
	ID      int64
	Name    string
	Species Species

	// OwnerID es la única fuente de verdad de la relación; nil = sin dueño.
	OwnerID *int64

	// Owner lo resuelve el repositorio en GetByID (join). Nil si no hay dueño.
	Owner *OwnerRef
}

// HasOwner indica si la mascota tiene un dueño resuelto.
func (p Pet) HasOwner() bool {
	return p.Owner != nil
}
