package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-owner-directory/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	var o owners.Owner
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM owners
		WHERE id = $1
	`, id).Scan(&o.ID, &o.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, mapPostgresError(err)
	}
	return o, nil
}
