package services

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
	"fintrack/internal/metrics"
)

// Store is the owner-scoped persistence surface the ledger needs.
type Store interface {
	Create(ctx context.Context, ownerID string, draft core.Draft) (core.Transaction, error)
	ListByOwner(ctx context.Context, ownerID string) ([]core.Transaction, error)
	DeleteOwned(ctx context.Context, ownerID, id string) (bool, error)
}

// EventPublisher announces ledger mutations to interested consumers.
type EventPublisher interface {
	PublishCreated(ctx context.Context, transactionID, ownerID string) error
	PublishDeleted(ctx context.Context, transactionID, ownerID string) error
}

// LedgerService orchestrates transaction operations across the store, the
// event publisher and metrics. Events are best-effort: the store is the
// source of truth and a broker failure never fails the request.
type LedgerService struct {
	store     Store
	publisher EventPublisher
	collector *metrics.Collector
}

// NewLedgerService wires the service. publisher and collector may be nil.
func NewLedgerService(store Store, publisher EventPublisher, collector *metrics.Collector) *LedgerService {
	return &LedgerService{
		store:     store,
		publisher: publisher,
		collector: collector,
	}
}

// Create persists a transaction for the owner and announces it.
func (s *LedgerService) Create(ctx context.Context, ownerID string, draft core.Draft) (core.Transaction, error) {
	tx, err := s.store.Create(ctx, ownerID, draft)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	if s.collector != nil {
		s.collector.RecordCreated(string(tx.Kind))
	}
	if s.publisher != nil {
		if err := s.publisher.PublishCreated(ctx, tx.ID, tx.OwnerID); err != nil {
			slog.ErrorContext(ctx, "Failed to publish created event",
				"transaction_id", tx.ID, "error", err)
		}
	}

	return tx, nil
}

// List returns the owner's transactions, newest first.
func (s *LedgerService) List(ctx context.Context, ownerID string) ([]core.Transaction, error) {
	transactions, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

// Delete removes the owner's transaction and reports whether anything was
// deleted. A false result covers both "does not exist" and "not yours".
func (s *LedgerService) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	deleted, err := s.store.DeleteOwned(ctx, ownerID, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	if !deleted {
		return false, nil
	}

	if s.collector != nil {
		s.collector.RecordDeleted()
	}
	if s.publisher != nil {
		if err := s.publisher.PublishDeleted(ctx, id, ownerID); err != nil {
			slog.ErrorContext(ctx, "Failed to publish deleted event",
				"transaction_id", id, "error", err)
		}
	}

	return true, nil
}
