package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

// handleHome returns the welcome payload with the available endpoints.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Professional profiling API",
		"version": Version,
		"endpoints": map[string]string{
			"POST /profiling": "Build an enriched professional profile",
			"GET /health":     "Health check",
		},
	})
}

// handleProfiling builds an enriched profile for the submitted identity.
func (s *Server) handleProfiling(w http.ResponseWriter, r *http.Request) {
	var id types.Identity
	if err := json.NewDecoder(r.Body).Decode(&id); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrInvalidJSON{Reason: err.Error()}).Error())
		return
	}

	if err := id.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	resp, err := s.orchestrator.CreateProfile(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// validationMessage flattens validator errors into a readable message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
