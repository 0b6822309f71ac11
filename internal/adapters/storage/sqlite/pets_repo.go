package sqlite

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

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT p.id, p.name, p.species, p.owner_id, o.name
		FROM pets p
		LEFT JOIN owners o ON o.id = p.owner_id
		WHERE p.id = ?
	`, id)

	var (
		p         pets.Pet
		species   string
		ownerID   sql.NullInt64
		ownerName sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &species, &ownerID, &ownerName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	p.Species = pets.Species(species)

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
		WHERE owner_id = ?
		ORDER BY id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var (
			p       pets.Pet
			species string
		)
		if err := rows.Scan(&p.ID, &p.Name, &species); err != nil {
			return nil, err
		}
		p.Species = pets.Species(species)
		oid := ownerID
		p.OwnerID = &oid
		out = append(out, p)
	}

	return out, rows.Err()
}
