package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pet-owner-directory/internal/seed"
)

type FixturesRepo struct {
	db *sql.DB
}

func NewFixturesRepo(db *sql.DB) *FixturesRepo {
	return &FixturesRepo{db: db}
}

// Reseed vacía ambas tablas reiniciando las secuencias (los ids vuelven a
// empezar en 1) e inserta el fixture en una sola transacción.
func (r *FixturesRepo) Reseed(ctx context.Context, f seed.Fixture) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapPostgresError(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `TRUNCATE pets, owners RESTART IDENTITY`); err != nil {
		return mapPostgresError(err)
	}

	ownerIDs := make([]int64, 0, len(f.Owners))
	for i, o := range f.Owners {
		var id int64
		if err = tx.QueryRowContext(ctx, `
			INSERT INTO owners (name) VALUES ($1) RETURNING id
		`, o.Name).Scan(&id); err != nil {
			return fmt.Errorf("insert owner %d: %w", i, mapPostgresError(err))
		}
		ownerIDs = append(ownerIDs, id)
	}

	for i, p := range f.Pets {
		var ownerID *int64
		ownerID, err = p.ResolveOwner(ownerIDs)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO pets (name, species, owner_id) VALUES ($1, $2, $3)
		`, p.Name, string(p.Species), toNullInt64(ownerID)); err != nil {
			return fmt.Errorf("insert pet %d: %w", i, mapPostgresError(err))
		}
	}

	if err = tx.Commit(); err != nil {
		return mapPostgresError(err)
	}
	return nil
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
