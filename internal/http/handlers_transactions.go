package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fintrack/internal/auth"
)

// Every transaction handler resolves the caller's identity before anything
// else; without one the request ends with 401 and no validation or storage
// access happens.

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.identify(w, r)
	if !ok {
		return
	}

	transactions, err := s.ledger.List(r.Context(), ownerID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions", "owner_id", ownerID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Transactions: transactions})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.identify(w, r)
	if !ok {
		return
	}

	draft, err := parseDraft(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.ledger.Create(r.Context(), ownerID, draft)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to create transaction",
			"owner_id", ownerID,
			"type", draft.Kind,
			"amount", draft.Amount,
			"error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{Success: true, Transaction: created})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.identify(w, r)
	if !ok {
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	deleted, err := s.ledger.Delete(r.Context(), ownerID, id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete transaction",
			"owner_id", ownerID, "transaction_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		// Not-found and not-owned are deliberately the same answer, so the
		// response never confirms that another owner's record exists.
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Transaction deleted"})
}

// identify resolves the caller or writes the 401 itself.
func (s *Server) identify(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, err := s.resolver.Resolve(r)
	if err != nil {
		if !errors.Is(err, auth.ErrNoIdentity) {
			slog.ErrorContext(r.Context(), "Identity resolution failed", "error", err)
		}
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return ownerID, true
}
