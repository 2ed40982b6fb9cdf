package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/eatsplit/internal/models"
)

// StatusKind classifies a friend's balance from the user's point of view.
type StatusKind string

const (
	StatusUserOwes   StatusKind = "user_owes"
	StatusFriendOwes StatusKind = "friend_owes"
	StatusEven       StatusKind = "even"
)

// BalanceStatus is the display summary for one friend.
type BalanceStatus struct {
	Kind    StatusKind
	Amount  float64 // always >= 0
	Message string
}

// Describe summarises a friend's balance the way the roster list shows it.
func Describe(f models.Friend) BalanceStatus {
	switch {
	case f.Balance < 0:
		amount := -f.Balance
		return BalanceStatus{
			Kind:    StatusUserOwes,
			Amount:  amount,
			Message: fmt.Sprintf("You owe %s %s€", f.Name, formatAmount(amount)),
		}
	case f.Balance > 0:
		return BalanceStatus{
			Kind:    StatusFriendOwes,
			Amount:  f.Balance,
			Message: fmt.Sprintf("%s owes you %s€", f.Name, formatAmount(f.Balance)),
		}
	default:
		return BalanceStatus{
			Kind:    StatusEven,
			Message: fmt.Sprintf("You and %s are even", f.Name),
		}
	}
}

// RosterTotals aggregates balances across the whole roster.
type RosterTotals struct {
	OwedToUser float64 // sum of positive balances
	UserOwes   float64 // sum of abs(negative balances)
	Net        float64 // OwedToUser - UserOwes
}

// Totals computes RosterTotals for the given friends.
func Totals(friends []models.Friend) RosterTotals {
	owed := decimal.Zero
	owes := decimal.Zero

	for _, f := range friends {
		b := decimal.NewFromFloat(f.Balance)
		if b.IsPositive() {
			owed = owed.Add(b)
		} else if b.IsNegative() {
			owes = owes.Add(b.Neg())
		}
	}

	return RosterTotals{
		OwedToUser: owed.InexactFloat64(),
		UserOwes:   owes.InexactFloat64(),
		Net:        owed.Sub(owes).InexactFloat64(),
	}
}

// formatAmount drops trailing zeros but never shows more than two decimals.
func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}
