// Package storage implements the durable, owner-scoped transaction store on
// SQLite. Every query carries the owner in its WHERE clause: scoping is part
// of the statement itself, never a post-filter on the result set.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/core"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNoOwner is returned when a write is attempted without an owner identity.
var ErrNoOwner = errors.New("owner id required")

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping reports whether the database is reachable.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Create validates the draft, assigns id and creation time, and persists the
// record for the given owner. The draft carries no id or owner of its own.
func (r *SQLiteRepository) Create(ctx context.Context, ownerID string, draft core.Draft) (core.Transaction, error) {
	if ownerID == "" {
		return core.Transaction{}, ErrNoOwner
	}
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate draft: %w", err)
	}

	tx := core.Transaction{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Kind:        draft.Kind,
		Description: draft.Description,
		Amount:      draft.Amount,
		Category:    draft.Category,
		OccurredOn:  draft.OccurredOn,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, owner_id, kind, description, amount, category, occurred_on, created_at_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.OwnerID, string(tx.Kind), tx.Description, tx.Amount, tx.Category, tx.OccurredOn, tx.CreatedAt.UnixNano(),
	)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"transaction_id", tx.ID,
		"owner_id", tx.OwnerID,
		"type", tx.Kind,
		"amount", tx.Amount,
		"category", tx.Category)

	return tx, nil
}

// ListByOwner returns the owner's transactions newest-first: occurred_on
// descending, creation time breaking ties. An owner with no records gets an
// empty slice.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, kind, description, amount, category, occurred_on, created_at_ns
		FROM transactions
		WHERE owner_id = ?
		ORDER BY occurred_on DESC, created_at_ns DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []core.Transaction{}
	for rows.Next() {
		var tx core.Transaction
		var kind string
		var createdAtNs int64
		if err := rows.Scan(&tx.ID, &tx.OwnerID, &kind, &tx.Description, &tx.Amount, &tx.Category, &tx.OccurredOn, &createdAtNs); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Kind = core.Kind(kind)
		tx.CreatedAt = time.Unix(0, createdAtNs).UTC()
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return transactions, nil
}

// DeleteOwned deletes the record only if it exists and belongs to the owner,
// and reports whether a deletion happened. A record owned by someone else is
// indistinguishable from a record that does not exist.
func (r *SQLiteRepository) DeleteOwned(ctx context.Context, ownerID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if affected > 0 {
		slog.InfoContext(ctx, "Transaction deleted", "transaction_id", id, "owner_id", ownerID)
	}
	return affected > 0, nil
}
