package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"property-returns/domain"
	"property-returns/service"
)

const maxBodyBytes = 1 << 20

// decodeInput enforces POST + JSON and decodes the analysis input. It writes
// the error response itself and reports whether the handler should go on.
func decodeInput(w http.ResponseWriter, r *http.Request, input *domain.AnalysisInput) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(input); err != nil {
		log.Printf("[HTTP] Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidConfiguration) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("[HTTP] Error processing request: %v", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("[HTTP] Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[HTTP] Error writing response: %v", err)
	}
}
