package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/eatsplit/internal/models"
)

func TestSQLiteStore(t *testing.T) {
	store, err := New(MemoryDSN)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("RecordSettlement generates ID and timestamp", func(t *testing.T) {
		settlement := &models.Settlement{
			FriendID:     "f1",
			Payer:        models.PayerUser,
			BillTotal:    20,
			UserExpense:  12,
			Delta:        8,
			BalanceAfter: 1,
		}

		if err := store.RecordSettlement(ctx, settlement); err != nil {
			t.Fatalf("RecordSettlement failed: %v", err)
		}
		if settlement.ID == "" {
			t.Error("Expected settlement ID to be generated")
		}
		if settlement.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("ListSettlements filters by friend, newest first", func(t *testing.T) {
		second := &models.Settlement{
			FriendID:     "f1",
			Payer:        models.PayerFriend,
			BillTotal:    30,
			UserExpense:  10,
			Delta:        -10,
			BalanceAfter: -9,
		}
		other := &models.Settlement{
			FriendID:     "f2",
			Payer:        models.PayerUser,
			BillTotal:    15,
			UserExpense:  5,
			Delta:        10,
			BalanceAfter: 30,
		}
		for _, s := range []*models.Settlement{second, other} {
			if err := store.RecordSettlement(ctx, s); err != nil {
				t.Fatalf("RecordSettlement failed: %v", err)
			}
		}

		got, err := store.ListSettlements(ctx, "f1")
		if err != nil {
			t.Fatalf("ListSettlements failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Expected 2 settlements for f1, got %d", len(got))
		}
		if got[0].ID != second.ID {
			t.Errorf("Expected newest settlement first, got %s", got[0].ID)
		}
		if got[0].Payer != models.PayerFriend {
			t.Errorf("Payer mismatch: got %s, want %s", got[0].Payer, models.PayerFriend)
		}
		if got[0].Delta != -10 || got[0].BalanceAfter != -9 {
			t.Errorf("Amounts mismatch: got delta=%f after=%f", got[0].Delta, got[0].BalanceAfter)
		}

		all, err := store.ListSettlements(ctx, "")
		if err != nil {
			t.Fatalf("ListSettlements(all) failed: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("Expected 3 settlements in total, got %d", len(all))
		}
	})

	t.Run("DeleteFriendSettlements only removes that friend", func(t *testing.T) {
		if err := store.DeleteFriendSettlements(ctx, "f1"); err != nil {
			t.Fatalf("DeleteFriendSettlements failed: %v", err)
		}

		f1, _ := store.ListSettlements(ctx, "f1")
		if len(f1) != 0 {
			t.Errorf("Expected no settlements for f1, got %d", len(f1))
		}
		f2, _ := store.ListSettlements(ctx, "f2")
		if len(f2) != 1 {
			t.Errorf("Expected 1 settlement for f2, got %d", len(f2))
		}
	})

	t.Run("Clear empties the ledger", func(t *testing.T) {
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		all, err := store.ListSettlements(ctx, "")
		if err != nil {
			t.Fatalf("ListSettlements failed: %v", err)
		}
		if len(all) != 0 {
			t.Errorf("Expected empty ledger, got %d", len(all))
		}
	})
}

func TestNewCreatesDirectory(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "eatsplit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "ledger.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Errorf("Expected parent directory to exist: %v", err)
	}
}
