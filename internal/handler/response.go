package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/logging"
)

// errorResponse es el cuerpo de todos los errores de la API.
type errorResponse struct {
	Error   string `json:"error" example:"InvalidArgument"`
	Message string `json:"message" example:"rating must be between 1 and 5"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError traduce el Kind del error al status HTTP.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := apperr.HTTPStatus(kind)

	if status >= http.StatusInternalServerError || kind == apperr.KindUpstreamUnavailable {
		log := logging.WithComponent("http")
		log.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Msg("request failed")
	}

	writeJSON(w, status, errorResponse{Error: errorName(err), Message: err.Error()})
}

func errorName(err error) string {
	if kind := apperr.KindOf(err); kind != apperr.KindUnknown {
		return string(kind)
	}
	return "Internal"
}

func badRequest(w http.ResponseWriter, r *http.Request, op, msg string) {
	writeError(w, r, apperr.New(apperr.KindInvalidArgument, op, msg))
}

// decodeJSON lee el body, rechaza campos desconocidos y valida con validator.
func decodeJSON(r *http.Request, op string, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.New(apperr.KindInvalidArgument, op, "request body is empty")
		}
		return apperr.Wrap(apperr.KindInvalidArgument, op, err)
	}
	if err := validateStruct(dst); err != nil {
		return apperr.Wrap(apperr.KindInvalidArgument, op, err)
	}
	return nil
}

// queryInt devuelve def si el parámetro no viene; un valor no numérico es error.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return n, nil
}
