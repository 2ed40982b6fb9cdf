package session

import (
	"context"
	"testing"
	"time"

	"github.com/mmynk/eatsplit/internal/models"
	"github.com/mmynk/eatsplit/internal/storage/sqlite"
)

type countingRecorder struct {
	ops     map[string]int
	friends int
}

func (r *countingRecorder) ObserveOperation(op string, applied bool) {
	if applied {
		r.ops[op]++
	}
}

func (r *countingRecorder) SetFriends(n int) { r.friends = n }

func testSeed() []models.Friend {
	return []models.Friend{
		{ID: "f1", Name: "Clark", Image: "clark.png", Balance: -7},
		{ID: "f2", Name: "Sarah", Image: "sarah.png", Balance: 20},
	}
}

// setupSession creates a session over an in-memory ledger.
func setupSession(t *testing.T, opts ...Option) *Session {
	t.Helper()

	ledger, err := sqlite.New(sqlite.MemoryDSN)
	if err != nil {
		t.Fatalf("failed to create ledger: %v", err)
	}
	t.Cleanup(func() { ledger.Close() })

	opts = append([]Option{WithSeed(testSeed)}, opts...)
	return New(ledger, opts...)
}

func balanceOf(t *testing.T, s *Session, id string) float64 {
	t.Helper()
	for _, f := range s.View().Friends {
		if f.ID == id {
			return f.Balance
		}
	}
	t.Fatalf("friend %s not found", id)
	return 0
}

func TestSplitBill_UserPays(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()

	s.Select("f1")
	friend, ok := s.SplitBill(ctx, SplitInput{BillTotal: 20, UserExpense: 12, Payer: models.PayerUser})
	if !ok {
		t.Fatal("SplitBill reported no effect")
	}
	if friend.Balance != 1 {
		t.Errorf("balance = %v, want 1", friend.Balance)
	}

	v := s.View()
	if v.SelectedID != "" || v.Split != nil {
		t.Errorf("selection should be cleared after split, got %q", v.SelectedID)
	}
}

func TestSplitBill_FriendPays(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()

	s.Select("f1")
	if _, ok := s.SplitBill(ctx, SplitInput{BillTotal: 20, UserExpense: 12, Payer: models.PayerFriend}); !ok {
		t.Fatal("SplitBill reported no effect")
	}
	if got := balanceOf(t, s, "f1"); got != -19 {
		t.Errorf("balance = %v, want -19", got)
	}
}

func TestSplitBill_ZeroBillIsNoop(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()

	s.Select("f1")
	if _, ok := s.SplitBill(ctx, SplitInput{BillTotal: 0, UserExpense: 12, Payer: models.PayerUser}); ok {
		t.Error("SplitBill with zero bill should be a no-op")
	}
	if got := balanceOf(t, s, "f1"); got != -7 {
		t.Errorf("balance = %v, want -7", got)
	}
	if s.View().SelectedID != "f1" {
		t.Error("rejected split should keep the form open for the friend")
	}

	settlements, err := s.Settlements(ctx, "f1")
	if err != nil {
		t.Fatalf("Settlements failed: %v", err)
	}
	if len(settlements) != 0 {
		t.Errorf("expected no ledger entries, got %d", len(settlements))
	}
}

func TestSplitBill_RequiresSelection(t *testing.T) {
	s := setupSession(t)

	if _, ok := s.SplitBill(context.Background(), SplitInput{BillTotal: 20, UserExpense: 12, Payer: models.PayerUser}); ok {
		t.Error("SplitBill without selection should be a no-op")
	}
}

func TestSplitBill_RecordsSettlement(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	s := setupSession(t, WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	s.Select("f2")
	s.SplitBill(ctx, SplitInput{BillTotal: 30, UserExpense: 10, Payer: models.PayerUser})

	settlements, err := s.Settlements(ctx, "f2")
	if err != nil {
		t.Fatalf("Settlements failed: %v", err)
	}
	if len(settlements) != 1 {
		t.Fatalf("expected 1 settlement, got %d", len(settlements))
	}
	got := settlements[0]
	if got.Delta != 20 || got.BalanceAfter != 40 {
		t.Errorf("settlement delta=%v after=%v, want 20 and 40", got.Delta, got.BalanceAfter)
	}
	if got.CreatedAt != fixed.Unix() {
		t.Errorf("CreatedAt = %d, want %d", got.CreatedAt, fixed.Unix())
	}
}

func TestSelectOpensSplitForm(t *testing.T) {
	s := setupSession(t)

	s.Select("f1")
	v := s.View()
	if v.Split == nil || v.Split.FriendName != "Clark" {
		t.Fatalf("split form should be open for Clark, got %+v", v.Split)
	}
	if v.Split.Payer != models.PayerUser {
		t.Errorf("default payer = %s, want user", v.Split.Payer)
	}

	s.Select("f1")
	if s.View().Split != nil {
		t.Error("toggling the selected friend should close the split form")
	}
}

func TestAddFriend(t *testing.T) {
	rec := &countingRecorder{ops: make(map[string]int)}
	s := setupSession(t, WithRecorder(rec))

	s.ToggleAddForm()
	if !s.View().AddFormVisible {
		t.Fatal("add form should be visible after toggle")
	}

	if _, ok := s.AddFriend("", "x.png"); ok {
		t.Error("AddFriend with empty name should be a no-op")
	}
	if !s.View().AddFormVisible {
		t.Error("rejected add should keep the form open")
	}

	f, ok := s.AddFriend("Anthony", "anthony.png")
	if !ok {
		t.Fatal("AddFriend reported no effect")
	}
	v := s.View()
	if v.AddFormVisible {
		t.Error("successful add should close the form")
	}
	if len(v.Friends) != 3 || v.Friends[2].ID != f.ID {
		t.Errorf("new friend should be appended last, got %+v", v.Friends)
	}
	if rec.friends != 3 || rec.ops[OpAddFriend] != 1 {
		t.Errorf("recorder friends=%d adds=%d, want 3 and 1", rec.friends, rec.ops[OpAddFriend])
	}
}

func TestDeleteSelectedFriend(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()

	s.Select("f2")
	s.SplitBill(ctx, SplitInput{BillTotal: 10, UserExpense: 5, Payer: models.PayerUser})
	s.Select("f2")

	if !s.DeleteFriend(ctx, "f2") {
		t.Fatal("DeleteFriend reported no effect")
	}
	if s.DeleteFriend(ctx, "f2") {
		t.Error("second DeleteFriend should be a no-op")
	}

	v := s.View()
	if v.SelectedID != "" || v.Split != nil {
		t.Error("deleting the selected friend should clear the selection")
	}

	settlements, err := s.Settlements(ctx, "f2")
	if err != nil {
		t.Fatalf("Settlements failed: %v", err)
	}
	if len(settlements) != 0 {
		t.Errorf("expected ledger entries to be dropped, got %d", len(settlements))
	}
}

func TestReset(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()

	s.AddFriend("Anthony", "anthony.png")
	s.Select("f1")
	s.SplitBill(ctx, SplitInput{BillTotal: 20, UserExpense: 12, Payer: models.PayerUser})

	v := s.Reset(ctx)
	if len(v.Friends) != 2 {
		t.Errorf("Friends = %d, want 2", len(v.Friends))
	}
	if got := balanceOf(t, s, "f1"); got != -7 {
		t.Errorf("balance after reset = %v, want -7", got)
	}

	all, _ := s.Settlements(ctx, "")
	if len(all) != 0 {
		t.Errorf("ledger should be empty after reset, got %d", len(all))
	}
}

func TestTotalsInView(t *testing.T) {
	s := setupSession(t)
	v := s.View()
	if v.Totals.OwedToUser != 20 || v.Totals.UserOwes != 7 || v.Totals.Net != 13 {
		t.Errorf("Totals = %+v, want owed 20, owes 7, net 13", v.Totals)
	}
}
