package services

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/core"
)

type fakeStore struct {
	created []core.Transaction
	listErr error
	deleted map[string]bool
}

func (f *fakeStore) Create(ctx context.Context, ownerID string, d core.Draft) (core.Transaction, error) {
	if err := d.Validate(); err != nil {
		return core.Transaction{}, err
	}
	tx := core.Transaction{
		ID:          "tx-1",
		OwnerID:     ownerID,
		Kind:        d.Kind,
		Description: d.Description,
		Amount:      d.Amount,
		Category:    d.Category,
		OccurredOn:  d.OccurredOn,
	}
	f.created = append(f.created, tx)
	return tx, nil
}

func (f *fakeStore) ListByOwner(ctx context.Context, ownerID string) ([]core.Transaction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []core.Transaction
	for _, tx := range f.created {
		if tx.OwnerID == ownerID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteOwned(ctx context.Context, ownerID, id string) (bool, error) {
	return f.deleted[ownerID+"/"+id], nil
}

type fakePublisher struct {
	created, deleted int
	err              error
}

func (f *fakePublisher) PublishCreated(ctx context.Context, id, owner string) error {
	f.created++
	return f.err
}

func (f *fakePublisher) PublishDeleted(ctx context.Context, id, owner string) error {
	f.deleted++
	return f.err
}

func validDraft() core.Draft {
	return core.Draft{Kind: core.Expense, Description: "Lunch", Amount: 12.50, Category: "Food", OccurredOn: "2024-05-01"}
}

func TestCreatePublishesEvent(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{}
	svc := NewLedgerService(store, pub, nil)

	tx, err := svc.Create(context.Background(), "u1", validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.OwnerID != "u1" {
		t.Fatalf("owner = %s", tx.OwnerID)
	}
	if pub.created != 1 {
		t.Fatalf("created events = %d, want 1", pub.created)
	}
}

func TestCreateSurvivesPublishFailure(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewLedgerService(store, pub, nil)

	if _, err := svc.Create(context.Background(), "u1", validDraft()); err != nil {
		t.Fatalf("publish failure must not fail create: %v", err)
	}
}

func TestCreateValidationFailurePublishesNothing(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{}
	svc := NewLedgerService(store, pub, nil)

	d := validDraft()
	d.Amount = 0
	if _, err := svc.Create(context.Background(), "u1", d); err == nil {
		t.Fatalf("expected validation error")
	}
	if pub.created != 0 {
		t.Fatalf("event published for rejected draft")
	}
}

func TestDeleteOnlyPublishesWhenDeleted(t *testing.T) {
	store := &fakeStore{deleted: map[string]bool{"u1/tx-1": true}}
	pub := &fakePublisher{}
	svc := NewLedgerService(store, pub, nil)
	ctx := context.Background()

	deleted, err := svc.Delete(ctx, "u1", "tx-1")
	if err != nil || !deleted {
		t.Fatalf("delete = (%v, %v)", deleted, err)
	}
	deleted, err = svc.Delete(ctx, "u1", "missing")
	if err != nil || deleted {
		t.Fatalf("delete missing = (%v, %v)", deleted, err)
	}
	if pub.deleted != 1 {
		t.Fatalf("deleted events = %d, want 1", pub.deleted)
	}
}

func TestNilPublisherIsFine(t *testing.T) {
	store := &fakeStore{deleted: map[string]bool{"u1/tx-1": true}}
	svc := NewLedgerService(store, nil, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "u1", validDraft()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Delete(ctx, "u1", "tx-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestListPropagatesStoreError(t *testing.T) {
	store := &fakeStore{listErr: errors.New("disk gone")}
	svc := NewLedgerService(store, nil, nil)
	if _, err := svc.List(context.Background(), "u1"); err == nil {
		t.Fatalf("expected error")
	}
}
