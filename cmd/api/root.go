package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pet-owner-directory/internal/platform/config"
	"pet-owner-directory/internal/platform/logger"
)

var (
	flagConfig string

	// v se arma una sola vez; los flags se enlazan a sus keys en init.
	v = config.New()

	// cargados en PersistentPreRunE
	cfg config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "petdir",
	Short:         "Pet/owner directory",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(v, flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded

		log = logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: logger.ParseFormat(cfg.Log.Format),
			App:    cfg.Log.App,
		})
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default: ./config.yaml if present)")
	pf.String("driver", "", "storage driver: memory|sqlite|postgres")
	pf.String("dsn", "", "storage dsn (sqlite path or postgres url)")
	pf.String("log-level", "", "debug|info|warn|error")

	_ = v.BindPFlag(config.KeyDriver, pf.Lookup("driver"))
	_ = v.BindPFlag(config.KeyDSN, pf.Lookup("dsn"))
	_ = v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
