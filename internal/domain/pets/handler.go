package pets

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

const (
	notFoundBody = "<h1>404 pet not found</h1>"
	internalBody = "<h1>500 internal error</h1>"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Solo ids numéricos llegan al handler; el resto es 404 del router.
	r.Get("/pets/{id:[0-9]+}", getPetHandler(svc))
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			// overflow de int64: no puede existir en el store
			writeHTML(w, http.StatusNotFound, notFoundBody)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeHTML(w, http.StatusNotFound, notFoundBody)
				return
			}
			hlog.FromRequest(r).Error().Err(err).Int64("pet_id", id).Msg("pet lookup failed")
			writeHTML(w, http.StatusInternalServerError, internalBody)
			return
		}

		if !p.HasOwner() {
			hlog.FromRequest(r).Debug().Int64("pet_id", id).Msg("pet has no owner")
		}

		writeHTML(w, http.StatusOK, renderPet(p))
	}
}

// renderPet asume que p existe; el chequeo de existencia va antes, siempre.
func renderPet(p Pet) string {
	var b strings.Builder
	b.WriteString("<h1>Information for " + p.Name + "</h1>")
	b.WriteString("<h2>Pet Species is " + string(p.Species) + "</h2>")
	if p.HasOwner() {
		b.WriteString("<h2>Pet Owner is " + p.Owner.Name + "</h2>")
	}
	return b.String()
}

// writeHTML también existe en owners/handler.go.
func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
