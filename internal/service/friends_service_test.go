package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/eatsplit/internal/middleware"
	"github.com/mmynk/eatsplit/internal/models"
	"github.com/mmynk/eatsplit/internal/session"
	"github.com/mmynk/eatsplit/internal/storage/sqlite"
	"github.com/mmynk/eatsplit/pkg/api"
)

func testSeed() []models.Friend {
	return []models.Friend{
		{ID: "f1", Name: "Clark", Image: "clark.png", Balance: -7},
		{ID: "f2", Name: "Sarah", Image: "sarah.png", Balance: 20},
	}
}

// setupTestServer creates a test server with an in-memory ledger
func setupTestServer(t *testing.T) (api.FriendsServiceClient, func()) {
	t.Helper()

	ledger, err := sqlite.New(sqlite.MemoryDSN)
	if err != nil {
		t.Fatalf("failed to create ledger: %v", err)
	}

	sess := session.New(ledger, session.WithSeed(testSeed))
	path, handler := api.NewFriendsServiceHandler(
		NewFriendsService(sess),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	client := api.NewFriendsServiceClient(http.DefaultClient, server.URL)

	cleanup := func() {
		server.Close()
		ledger.Close()
	}
	return client, cleanup
}

func TestListFriends(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.ListFriends(context.Background(), connect.NewRequest(&api.ListFriendsRequest{}))
	if err != nil {
		t.Fatalf("ListFriends failed: %v", err)
	}

	friends := resp.Msg.Roster.Friends
	if len(friends) != 2 {
		t.Fatalf("expected 2 friends, got %d", len(friends))
	}
	if friends[0].Message != "You owe Clark 7€" {
		t.Errorf("unexpected status message %q", friends[0].Message)
	}
	if friends[1].Status != "friend_owes" {
		t.Errorf("Sarah status = %q, want friend_owes", friends[1].Status)
	}
	if resp.Msg.Roster.SplitForm != nil {
		t.Error("split form should be closed with no selection")
	}
}

func TestAddFriend(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	resp, err := client.AddFriend(ctx, connect.NewRequest(&api.AddFriendRequest{Name: "", Image: "x.png"}))
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}
	if resp.Msg.Applied {
		t.Error("AddFriend with empty name should not apply")
	}
	if len(resp.Msg.Roster.Friends) != 2 {
		t.Errorf("roster should be unchanged, got %d friends", len(resp.Msg.Roster.Friends))
	}

	resp, err = client.AddFriend(ctx, connect.NewRequest(&api.AddFriendRequest{Name: "Anthony", Image: "anthony.png"}))
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}
	if !resp.Msg.Applied || resp.Msg.Friend == nil {
		t.Fatal("AddFriend should apply")
	}
	if resp.Msg.Friend.ID == "" || resp.Msg.Friend.Balance != 0 {
		t.Errorf("unexpected new friend %+v", resp.Msg.Friend)
	}
	if resp.Msg.Friend.Message != "You and Anthony are even" {
		t.Errorf("unexpected status message %q", resp.Msg.Friend.Message)
	}
}

func TestSplitBillFlow(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	sel, err := client.ToggleSelect(ctx, connect.NewRequest(&api.ToggleSelectRequest{FriendID: "f1"}))
	if err != nil {
		t.Fatalf("ToggleSelect failed: %v", err)
	}
	if sel.Msg.Roster.SplitForm == nil || sel.Msg.Roster.SplitForm.FriendName != "Clark" {
		t.Fatalf("split form should open for Clark, got %+v", sel.Msg.Roster.SplitForm)
	}

	resp, err := client.SplitBill(ctx, connect.NewRequest(&api.SplitBillRequest{
		BillTotal:   20,
		UserExpense: 12,
		Payer:       "user",
	}))
	if err != nil {
		t.Fatalf("SplitBill failed: %v", err)
	}
	if !resp.Msg.Applied {
		t.Fatal("SplitBill should apply")
	}
	if resp.Msg.Friend.Balance != 1 {
		t.Errorf("Clark balance = %v, want 1", resp.Msg.Friend.Balance)
	}
	if resp.Msg.Roster.SelectedID != "" {
		t.Errorf("selection should be cleared, got %q", resp.Msg.Roster.SelectedID)
	}

	ledger, err := client.ListSettlements(ctx, connect.NewRequest(&api.ListSettlementsRequest{FriendID: "f1"}))
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	if len(ledger.Msg.Settlements) != 1 || ledger.Msg.Settlements[0].Delta != 8 {
		t.Errorf("unexpected ledger %+v", ledger.Msg.Settlements)
	}
}

func TestSplitBill_InvalidPayer(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	client.ToggleSelect(ctx, connect.NewRequest(&api.ToggleSelectRequest{FriendID: "f1"}))

	_, err := client.SplitBill(ctx, connect.NewRequest(&api.SplitBillRequest{
		BillTotal:   20,
		UserExpense: 12,
		Payer:       "someone",
	}))
	if err == nil {
		t.Fatal("expected error for invalid payer")
	}
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", connect.CodeOf(err))
	}
}

func TestSplitBill_NoSelection(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.SplitBill(context.Background(), connect.NewRequest(&api.SplitBillRequest{
		BillTotal:   20,
		UserExpense: 12,
	}))
	if err != nil {
		t.Fatalf("SplitBill failed: %v", err)
	}
	if resp.Msg.Applied {
		t.Error("SplitBill without selection should not apply")
	}
}

func TestDeleteAndReset(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	client.ToggleSelect(ctx, connect.NewRequest(&api.ToggleSelectRequest{FriendID: "f2"}))

	del, err := client.DeleteFriend(ctx, connect.NewRequest(&api.DeleteFriendRequest{FriendID: "f2"}))
	if err != nil {
		t.Fatalf("DeleteFriend failed: %v", err)
	}
	if !del.Msg.Applied {
		t.Error("DeleteFriend should apply")
	}
	if del.Msg.Roster.SelectedID != "" || del.Msg.Roster.SplitForm != nil {
		t.Error("deleting the selected friend should clear the selection")
	}

	again, err := client.DeleteFriend(ctx, connect.NewRequest(&api.DeleteFriendRequest{FriendID: "f2"}))
	if err != nil {
		t.Fatalf("DeleteFriend failed: %v", err)
	}
	if again.Msg.Applied {
		t.Error("second DeleteFriend should not apply")
	}

	reset, err := client.Reset(ctx, connect.NewRequest(&api.ResetRequest{}))
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if len(reset.Msg.Roster.Friends) != 2 {
		t.Errorf("expected seed roster after reset, got %d friends", len(reset.Msg.Roster.Friends))
	}
}

func TestToggleAddForm(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	resp, err := client.ToggleAddForm(ctx, connect.NewRequest(&api.ToggleAddFormRequest{}))
	if err != nil {
		t.Fatalf("ToggleAddForm failed: %v", err)
	}
	if !resp.Msg.Roster.AddFormVisible {
		t.Error("add form should be visible")
	}

	add, _ := client.AddFriend(ctx, connect.NewRequest(&api.AddFriendRequest{Name: "Anthony", Image: "a.png"}))
	if add.Msg.Roster.AddFormVisible {
		t.Error("add form should close after a successful add")
	}
}
