package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of every non-success API response: {"message": "...", "details": "..."}.
// Details is only set outside production.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteMessage writes a MessageResponse with the given status.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteInternalError writes a 500 MessageResponse. err's text is included as details unless production is true.
func WriteInternalError(w http.ResponseWriter, message string, err error, production bool) {
	body := MessageResponse{Message: message}
	if !production && err != nil {
		body.Details = err.Error()
	}
	WriteJSON(w, http.StatusInternalServerError, body)
}
