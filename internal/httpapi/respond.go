package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/repository"
)

const (
	codeBadRequest = "BAD_REQUEST"
	codeNotFound   = "NOT_FOUND"
	codeInternal   = "INTERNAL"

	maxBodyBytes = 1 << 20
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status: contract errors are client errors,
// a finished quiz is a conflict, a missing row is 404 and the rest are 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if code, ok := contract.CodeOf(err); ok {
		status := http.StatusBadRequest
		if code == contract.ErrQuizComplete {
			status = http.StatusConflict
		}
		var ce *contract.Error
		errors.As(err, &ce)
		writeJSON(w, status, errorBody{Error: ce.Message, Code: string(code)})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found", Code: codeNotFound})
		return
	}
	s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error(), Code: codeInternal})
}

// decodeJSON reads a single JSON object into dst, rejecting unknown fields.
// An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

func badRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Code: codeBadRequest})
}
