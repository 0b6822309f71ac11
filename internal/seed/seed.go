package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Store reemplaza todo el contenido (mascotas primero, luego dueños) por el
// fixture, en una sola transacción.
type Store interface {
	Reseed(ctx context.Context, f Fixture) error
}

func Run(ctx context.Context, store Store, f Fixture, log zerolog.Logger) error {
	if err := f.Validate(); err != nil {
		return err
	}

	started := time.Now()
	if err := store.Reseed(ctx, f); err != nil {
		return fmt.Errorf("reseed: %w", err)
	}

	log.Info().
		Int("owners", len(f.Owners)).
		Int("pets", len(f.Pets)).
		Dur("duration", time.Since(started)).
		Msg("seed completed")
	return nil
}
