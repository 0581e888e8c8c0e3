package events

import (
	"encoding/json"
	"time"
)

const (
	ActionCreated = "transaction.created"
	ActionDeleted = "transaction.deleted"
)

// TransactionEvent is a lightweight notification about a ledger mutation.
// Consumers that need the full record fetch it themselves; the event only
// carries identity and routing data.
type TransactionEvent struct {
	Action        string    `json:"action"`
	TransactionID string    `json:"transactionId"`
	OwnerID       string    `json:"ownerId"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewTransactionEvent(action, transactionID, ownerID string) *TransactionEvent {
	return &TransactionEvent{
		Action:        action,
		TransactionID: transactionID,
		OwnerID:       ownerID,
		Timestamp:     time.Now(),
	}
}

func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
