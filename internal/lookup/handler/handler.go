package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"company-lookup/internal/lookup/model"
	"company-lookup/internal/lookup/service"
)

// Find returns the POST /lookup handler. Malformed JSON maps to 400,
// a missing required field to 422; everything else is a well-formed 200
// response, including no_match outcomes.
func Find(svc *service.Lookup, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := logger
		if rid := r.Header.Get("X-Request-ID"); rid != "" {
			log = logger.With().Str("req_id", rid).Logger()
		}
		defer r.Body.Close()

		var req model.LookupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
			return
		}

		resp, err := svc.Find(req)
		if errors.Is(err, service.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("lookup failed")
			writeError(w, http.StatusInternalServerError, "internal")
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Str("confidence", string(resp.MatchConfidence)).
			Dur("elapsed", time.Since(start)).
			Msg("lookup done")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
