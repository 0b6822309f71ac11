package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pet-owner-directory/internal/adapters/storage"
	"pet-owner-directory/internal/platform/config"
	"pet-owner-directory/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		backend, err := storage.Open(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		defer backend.Close()

		srv := &http.Server{
			Addr: cfg.Addr(),
			Handler: router.NewRouter(router.Options{
				Owners: backend.Owners,
				Pets:   backend.Pets,
				Logger: log,
			}),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", srv.Addr).Str("driver", cfg.Storage.Driver).Msg("starting server")
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (default 5555)")
	_ = v.BindPFlag(config.KeyPort, serveCmd.Flags().Lookup("port"))
}
