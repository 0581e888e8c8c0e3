package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// DateLayout is the wire format for transaction dates (calendar day, no time).
const DateLayout = "2006-01-02"

type (
	// Kind distinguishes money coming in from money going out.
	Kind string

	// Transaction is a single immutable ledger entry owned by exactly one user.
	Transaction struct {
		ID          string    `json:"id"`
		OwnerID     string    `json:"userId"`
		Kind        Kind      `json:"type"`
		Description string    `json:"description"`
		Amount      float64   `json:"amount"`
		Category    string    `json:"category"`
		OccurredOn  string    `json:"date"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	// Draft is a caller-supplied transaction payload before validation and
	// ID assignment. It deliberately carries no ID and no owner: both are
	// assigned by the store from trusted inputs.
	Draft struct {
		Kind        Kind
		Description string
		Amount      float64
		Category    string
		OccurredOn  string
	}
)

var (
	ErrInvalidKind      = errors.New("invalid transaction type")
	ErrInvalidAmount    = errors.New("amount must be greater than 0")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
	ErrInvalidDate      = errors.New("invalid date")
)

func (k Kind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	}
	return ErrInvalidKind
}

// Normalize trims surrounding whitespace from the free-text fields.
func (d *Draft) Normalize() {
	d.Description = strings.TrimSpace(d.Description)
	d.Category = strings.TrimSpace(d.Category)
	d.OccurredOn = strings.TrimSpace(d.OccurredOn)
}

func (d Draft) Validate() error {
	if err := d.Kind.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(d.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(d.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if d.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(d.Category) == "" {
		return ErrEmptyCategory
	}
	if _, err := time.Parse(DateLayout, d.OccurredOn); err != nil {
		return ErrInvalidDate
	}
	return nil
}
