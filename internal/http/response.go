package http

import (
	"encoding/json"
	"net/http"

	"github.com/nalin-pixel/selfmastery-api/internal/schema"
)

type apiError struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []schema.FieldError `json:"fields,omitempty"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: apiError{Code: code, Message: message}})
}

func writeValidationError(w http.ResponseWriter, verr *schema.ValidationError) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: apiError{
		Code:    "VALIDATION_ERROR",
		Message: verr.Error(),
		Fields:  verr.Fields,
	}})
}
