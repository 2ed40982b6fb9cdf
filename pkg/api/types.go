// Package api defines the eatsplit.v1.FriendsService wire types plus the
// Connect handler and client for them.
package api

import "github.com/mmynk/eatsplit/internal/models"

// Friend is a roster entry together with its display status.
type Friend struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Image   string  `json:"image"`
	Balance float64 `json:"balance"`
	Status  string  `json:"status"`
	Message string  `json:"message"`
}

// SplitForm is the split-bill form open for the selected friend.
type SplitForm struct {
	FriendID      string  `json:"friend_id"`
	FriendName    string  `json:"friend_name"`
	BillTotal     float64 `json:"bill_total"`
	UserExpense   float64 `json:"user_expense"`
	FriendExpense float64 `json:"friend_expense"`
	Payer         string  `json:"payer"`
}

// Totals summarises balances across the roster.
type Totals struct {
	OwedToUser float64 `json:"owed_to_user"`
	UserOwes   float64 `json:"user_owes"`
	Net        float64 `json:"net"`
}

// Roster is the full state a front end renders.
type Roster struct {
	Friends        []Friend   `json:"friends"`
	SelectedID     string     `json:"selected_id,omitempty"`
	AddFormVisible bool       `json:"add_form_visible"`
	SplitForm      *SplitForm `json:"split_form,omitempty"`
	Totals         Totals     `json:"totals"`
}

type ListFriendsRequest struct{}

type ListFriendsResponse struct {
	Roster Roster `json:"roster"`
}

type ToggleAddFormRequest struct{}

type ToggleAddFormResponse struct {
	Roster Roster `json:"roster"`
}

type AddFriendRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type AddFriendResponse struct {
	Applied bool    `json:"applied"`
	Friend  *Friend `json:"friend,omitempty"`
	Roster  Roster  `json:"roster"`
}

type DeleteFriendRequest struct {
	FriendID string `json:"friend_id"`
}

type DeleteFriendResponse struct {
	Applied bool   `json:"applied"`
	Roster  Roster `json:"roster"`
}

type ToggleSelectRequest struct {
	FriendID string `json:"friend_id"`
}

type ToggleSelectResponse struct {
	Applied bool   `json:"applied"`
	Roster  Roster `json:"roster"`
}

type SplitBillRequest struct {
	BillTotal   float64 `json:"bill_total"`
	UserExpense float64 `json:"user_expense"`
	// Payer is "user" or "friend". Empty means "user".
	Payer string `json:"payer,omitempty"`
}

type SplitBillResponse struct {
	Applied bool    `json:"applied"`
	Friend  *Friend `json:"friend,omitempty"`
	Roster  Roster  `json:"roster"`
}

type ListSettlementsRequest struct {
	// FriendID limits the listing to one friend. Empty lists everything.
	FriendID string `json:"friend_id,omitempty"`
}

type ListSettlementsResponse struct {
	Settlements []*models.Settlement `json:"settlements"`
}

type ResetRequest struct{}

type ResetResponse struct {
	Roster Roster `json:"roster"`
}
