package server

import (
	"encoding/json"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[WARN] Failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string, problems ...string) {
	if status >= 500 {
		log.Printf("[ERR] %s %s: %s id=%s", r.Method, r.URL.Path, msg, requestID(r))
	}
	writeJSON(w, status, errorResponse{Error: msg, Problems: problems})
}
