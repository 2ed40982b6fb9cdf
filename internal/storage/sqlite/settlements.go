package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/eatsplit/internal/models"
)

const settlementColumns = `id, friend_id, payer, bill_total, user_expense, delta, balance_after, created_at`

// RecordSettlement persists a new settlement to the database.
func (s *SQLiteStore) RecordSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (`+settlementColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.FriendID, string(settlement.Payer), settlement.BillTotal,
		settlement.UserExpense, settlement.Delta, settlement.BalanceAfter, settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	return nil
}

// ListSettlements retrieves settlements for a friend, or all of them when
// friendID is empty.
func (s *SQLiteStore) ListSettlements(ctx context.Context, friendID string) ([]*models.Settlement, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if friendID == "" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT `+settlementColumns+` FROM settlements ORDER BY created_at DESC, rowid DESC`)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT `+settlementColumns+` FROM settlements WHERE friend_id = ? ORDER BY created_at DESC, rowid DESC`,
			friendID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement := &models.Settlement{}
		var payer string

		if err := rows.Scan(&settlement.ID, &settlement.FriendID, &payer, &settlement.BillTotal,
			&settlement.UserExpense, &settlement.Delta, &settlement.BalanceAfter, &settlement.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlement.Payer = models.Payer(payer)

		settlements = append(settlements, settlement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}

// DeleteFriendSettlements removes every settlement recorded for friendID.
func (s *SQLiteStore) DeleteFriendSettlements(ctx context.Context, friendID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM settlements WHERE friend_id = ?", friendID)
	if err != nil {
		return fmt.Errorf("failed to delete settlements: %w", err)
	}
	return nil
}

// Clear removes all settlements.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM settlements"); err != nil {
		return fmt.Errorf("failed to clear settlements: %w", err)
	}
	return nil
}
