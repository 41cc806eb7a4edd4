package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

type errorResponse struct {
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeValidationError reports every field error of a domain.ValidationError.
// Other validation failures get a plain message.
func writeValidationError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := errorResponse{Message: "validation error", Errors: make([]fieldError, 0, len(ve.Errors))}
	for _, fe := range ve.Errors {
		resp.Errors = append(resp.Errors, fieldError{Field: fe.Field, Message: fe.Message})
	}
	writeJSON(w, http.StatusBadRequest, resp)
}
