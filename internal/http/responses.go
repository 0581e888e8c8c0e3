package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fintrack/internal/core"
)

// Error bodies are always {"error": reason}; success bodies carry
// success:true plus the operation's payload. This is the wire contract the
// consuming clients render from.

type errorResponse struct {
	Error string `json:"error"`
}

type listResponse struct {
	Success      bool               `json:"success"`
	Transactions []core.Transaction `json:"transactions"`
}

type createResponse struct {
	Success     bool             `json:"success"`
	Transaction core.Transaction `json:"transaction"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
