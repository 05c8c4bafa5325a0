package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error envelope of the booking API. The error detail
// field is only filled in non-production (debug) mode.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ResponseJSON writes any payload as JSON with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusCreated, payload)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{Message: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, ErrorResponse{Message: message})
}

// ResponseInternalError returns 500. The underlying error is echoed only when
// debug mode is on; production callers get the generic message alone.
func ResponseInternalError(w http.ResponseWriter, message string, err error, debug bool) {
	resp := ErrorResponse{Message: message}
	if debug && err != nil {
		resp.Error = err.Error()
	}
	ResponseJSON(w, http.StatusInternalServerError, resp)
}
