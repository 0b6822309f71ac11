package sqlite

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

// Reseed borra pets y owners e inserta el fixture en una transacción. Con
// INTEGER PRIMARY KEY (sin AUTOINCREMENT) los ids vuelven a empezar en 1.
func (r *FixturesRepo) Reseed(ctx context.Context, f seed.Fixture) error {
	if err := f.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op tras Commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM pets`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM owners`); err != nil {
		return err
	}

	ownerIDs := make([]int64, 0, len(f.Owners))
	for i, o := range f.Owners {
		res, err := tx.ExecContext(ctx, `INSERT INTO owners (name) VALUES (?)`, o.Name)
		if err != nil {
			return fmt.Errorf("insert owner %d: %w", i, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert owner %d: %w", i, err)
		}
		ownerIDs = append(ownerIDs, id)
	}

	for i, p := range f.Pets {
		ownerID, err := p.ResolveOwner(ownerIDs)
		if err != nil {
			return err
		}
		var owner any
		if ownerID != nil {
			owner = *ownerID
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pets (name, species, owner_id) VALUES (?, ?, ?)
		`, p.Name, string(p.Species), owner); err != nil {
			return fmt.Errorf("insert pet %d: %w", i, err)
		}
	}

	return tx.Commit()
}
