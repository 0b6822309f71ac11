package owners

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

const (
	notFoundBody = "<h1>404 owner not found</h1>"
	internalBody = "<h1>500 internal error</h1>"
	noPetsLine   = "<h2>Has no pets at this time.</h2>"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/owner/{id:[0-9]+}", getOwnerHandler(svc))
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeHTML(w, http.StatusNotFound, notFoundBody)
			return
		}

		d, err := svc.GetDetail(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeHTML(w, http.StatusNotFound, notFoundBody)
				return
			}
			hlog.FromRequest(r).Error().Err(err).Int64("owner_id", id).Msg("owner lookup failed")
			writeHTML(w, http.StatusInternalServerError, internalBody)
			return
		}

		writeHTML(w, http.StatusOK, renderOwner(d))
	}
}

func renderOwner(d Detail) string {
	var b strings.Builder
	b.WriteString("<h1>Information for " + d.Owner.Name + "</h1>")

	if len(d.Pets) == 0 {
		b.WriteString(noPetsLine)
		return b.String()
	}

	for _, p := range d.Pets {
		b.WriteString("<h2>Has pet " + string(p.Species) + " named " + p.Name + ".</h2>")
	}
	return b.String()
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
