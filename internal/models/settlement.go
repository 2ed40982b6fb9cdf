package models

// Settlement records one split bill that was applied to a friend's balance.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string `json:"id"`

	// FriendID is the friend whose balance was adjusted.
	FriendID string `json:"friend_id"`

	// Payer is who covered the bill.
	Payer Payer `json:"payer"`

	// BillTotal is the full bill amount.
	BillTotal float64 `json:"bill_total"`

	// UserExpense is the user's own share of the bill.
	UserExpense float64 `json:"user_expense"`

	// Delta is the signed amount added to the friend's balance.
	Delta float64 `json:"delta"`

	// BalanceAfter is the friend's balance once Delta was applied.
	BalanceAfter float64 `json:"balance_after"`

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64 `json:"created_at"`
}
