package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-owner-directory/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// GetByID resuelve el dueño con LEFT JOIN: una mascota sin dueño sale con Owner nil.
func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			p.id, p.name, p.species, p.owner_id,
			o.name
		FROM pets p
		LEFT JOIN owners o ON o.id = p.owner_id
		WHERE p.id = $1
	`, id)

	var (
		p         pets.Pet
		ownerID   sql.NullInt64
		ownerName sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Species, &ownerID, &ownerName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, mapPostgresError(err)
	}

	if ownerID.Valid {
		v := ownerID.Int64
		p.OwnerID = &v
		if ownerName.Valid {
			p.Owner = &pets.OwnerRef{ID: v, Name: ownerName.String}
		}
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, species
		FROM pets
		WHERE owner_id = $1
		ORDER BY id ASC
	`, ownerID)
	if err != nil {
		return nil, mapPostgresError(err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Species); err != nil {
			return nil, err
		}
		oid := ownerID
		p.OwnerID = &oid
		out = append(out, p)
	}

	return out, rows.Err()
}
