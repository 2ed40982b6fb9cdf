// Package storage provides abstractions for the settlement ledger.
package storage

import (
	"context"

	"github.com/mmynk/eatsplit/internal/models"
)

// Ledger records every settlement applied during a session.
// This abstraction keeps the session independent of the backing database.
type Ledger interface {
	// RecordSettlement persists a settlement. ID and CreatedAt are filled in
	// by the ledger when empty.
	RecordSettlement(ctx context.Context, s *models.Settlement) error

	// ListSettlements returns the settlements for one friend, newest first.
	// An empty friendID lists every settlement.
	ListSettlements(ctx context.Context, friendID string) ([]*models.Settlement, error)

	// DeleteFriendSettlements drops every settlement recorded for friendID.
	DeleteFriendSettlements(ctx context.Context, friendID string) error

	// Clear deletes all settlements.
	Clear(ctx context.Context) error

	// Close releases any resources held by the ledger.
	Close() error
}
