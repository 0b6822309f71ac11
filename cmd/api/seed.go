package main

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"pet-owner-directory/internal/adapters/storage"
	"pet-owner-directory/internal/platform/config"
	"pet-owner-directory/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Delete all owners and pets and load random fixture data",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := storage.Open(cmd.Context(), cfg.Storage)
		if err != nil {
			return err
		}
		defer backend.Close()

		r := cfg.Seed.Rand
		if r == 0 {
			r = uint64(time.Now().UnixNano())
		}
		log.Debug().Uint64("rand", r).Msg("seed source")

		f := seed.Generate(gofakeit.New(r), seed.Options{
			Owners: cfg.Seed.Owners,
			Pets:   cfg.Seed.Pets,
		})
		return seed.Run(cmd.Context(), backend.Fixtures, f, log)
	},
}

func init() {
	seedCmd.Flags().Int("owners", 0, "number of owners (default 50)")
	seedCmd.Flags().Int("pets", 0, "number of pets (default 100)")
	seedCmd.Flags().Uint64("rand", 0, "random seed, 0 for time-based")

	_ = v.BindPFlag(config.KeySeedOwners, seedCmd.Flags().Lookup("owners"))
	_ = v.BindPFlag(config.KeySeedPets, seedCmd.Flags().Lookup("pets"))
	_ = v.BindPFlag(config.KeySeedRand, seedCmd.Flags().Lookup("rand"))
}
