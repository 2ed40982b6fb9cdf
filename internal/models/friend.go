package models

// Friend represents one person in the user's roster.
type Friend struct {
	// ID is the unique identifier for the friend (UUID format for friends
	// added at runtime, fixed strings for seed data).
	ID string `json:"id"`

	// Name is the display name of the friend. Never empty.
	Name string `json:"name"`

	// Image is a URL or other reference to the friend's avatar. Never empty.
	Image string `json:"image"`

	// Balance is the signed amount between the user and this friend.
	// Negative: the user owes the friend abs(Balance).
	// Positive: the friend owes the user Balance.
	// Zero: settled.
	Balance float64 `json:"balance"`
}

// Payer identifies which party fronted the full amount of a split bill.
type Payer string

const (
	PayerUser   Payer = "user"
	PayerFriend Payer = "friend"
)

// Valid reports whether p is one of the known payers.
func (p Payer) Valid() bool {
	return p == PayerUser || p == PayerFriend
}
