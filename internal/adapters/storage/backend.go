// Package storage elige el adapter según la config (memory, sqlite o postgres).
package storage

import (
	"context"
	"database/sql"
	"fmt"

	mem "pet-owner-directory/internal/adapters/storage/memory"
	pg "pet-owner-directory/internal/adapters/storage/postgres"
	"pet-owner-directory/internal/adapters/storage/sqlite"
	"pet-owner-directory/internal/domain/owners"
	"pet-owner-directory/internal/domain/pets"
	"pet-owner-directory/internal/platform/config"
	"pet-owner-directory/internal/seed"
)

// Backend agrupa los repos de un mismo store. Una instancia por proceso.
type Backend struct {
	Owners   owners.Repository
	Pets     pets.Repository
	Fixtures seed.Store

	db *sql.DB
}

func Open(ctx context.Context, cfg config.Storage) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		store := mem.NewStore()
		return &Backend{
			Owners:   mem.NewOwnerRepo(store),
			Pets:     mem.NewPetRepo(store),
			Fixtures: store,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return &Backend{
			Owners:   sqlite.NewOwnersRepo(db),
			Pets:     sqlite.NewPetsRepo(db),
			Fixtures: sqlite.NewFixturesRepo(db),
			db:       db,
		}, nil

	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return &Backend{
			Owners:   pg.NewOwnersRepo(db),
			Pets:     pg.NewPetsRepo(db),
			Fixtures: pg.NewFixturesRepo(db),
			db:       db,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}
