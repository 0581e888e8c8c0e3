package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"fintrack/internal/core"
)

// createTransactionRequest mirrors the wire payload of the create operation.
// Amount is a json.Number so "present but not numeric" is distinguishable
// from "absent".
type createTransactionRequest struct {
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
}

var (
	errBadBody         = errors.New("Invalid request body")
	errMissingFields   = errors.New("All fields are required")
	errBadAmount       = errors.New("Amount must be greater than 0")
	errAmountNotNumber = errors.New("Amount must be a number")
)

// parseDraft decodes and validates a create payload. Checks run in contract
// order: body shape, field presence, amount sign, then the remaining field
// invariants. Nothing that fails here ever reaches the store.
func parseDraft(r *http.Request) (core.Draft, error) {
	var req createTransactionRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		return core.Draft{}, errBadBody
	}

	if strings.TrimSpace(req.Type) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		req.Amount.String() == "" ||
		strings.TrimSpace(req.Category) == "" ||
		strings.TrimSpace(req.Date) == "" {
		return core.Draft{}, errMissingFields
	}

	amount, err := req.Amount.Float64()
	if err != nil {
		return core.Draft{}, errAmountNotNumber
	}
	if amount <= 0 {
		return core.Draft{}, errBadAmount
	}

	draft := core.Draft{
		Kind:        core.Kind(strings.TrimSpace(req.Type)),
		Description: sanitizeInput(req.Description),
		Amount:      amount,
		Category:    sanitizeInput(req.Category),
		OccurredOn:  strings.TrimSpace(req.Date),
	}
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return core.Draft{}, err
	}
	return draft, nil
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 {
			return -1
		}
		return r
	}, s)
}
