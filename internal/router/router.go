package router

import (
	"net/http"

	mem "pet-owner-directory/internal/adapters/storage/memory"
	"pet-owner-directory/internal/domain/owners"
	"pet-owner-directory/internal/domain/pets"
	"pet-owner-directory/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const indexBody = "<h1>Welcome to the pet/owner directory!</h1>"

type Options struct {
	// Si alguno es nil se usa un store en memoria vacío (modo dev/tests).
	Owners owners.Repository
	Pets   pets.Repository

	// Logger zero-value = sin logs.
	Logger zerolog.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.AccessLog())
	r.Use(chimw.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(indexBody))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ownerRepo, petRepo := opts.Owners, opts.Pets
	if ownerRepo == nil || petRepo == nil {
		store := mem.NewStore()
		ownerRepo = mem.NewOwnerRepo(store)
		petRepo = mem.NewPetRepo(store)
	}

	petsSvc := pets.NewService(petRepo)
	ownersSvc := owners.NewService(ownerRepo, petsSvc)

	pets.RegisterRoutes(r, petsSvc)
	owners.RegisterRoutes(r, ownersSvc)

	return r
}
