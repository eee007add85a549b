package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/villastay/villa-api/internal/models"
)

// writeResponse writes the envelope as JSON with the given HTTP status.
func writeResponse(w http.ResponseWriter, status int, resp models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
