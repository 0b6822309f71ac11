package pets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("pet not found")

type Repository interface {
	// GetByID devuelve la mascota con Owner resuelto, o ErrNotFound.
	GetByID(ctx context.Context, id int64) (Pet, error)

	// ListByOwner devuelve las mascotas del dueño ordenadas por id asc.
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
}
