package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/eatsplit/internal/models"
)

// FriendExpense returns the friend's share of a bill: billTotal minus the
// user's own expense, rounded to two decimal places.
func FriendExpense(billTotal, userExpense float64) float64 {
	return decimal.NewFromFloat(billTotal).
		Sub(decimal.NewFromFloat(userExpense)).
		Round(2).
		InexactFloat64()
}

// SettlementDelta computes the signed balance adjustment produced by a split
// bill. The payer already covered the whole bill, so the counterparty's share
// becomes the delta:
//   - payer user:   +friend expense (the friend now owes the user)
//   - payer friend: -user expense   (the user now owes the friend)
//
// It returns false when either amount is zero or the payer is unknown.
func SettlementDelta(billTotal, userExpense float64, payer models.Payer) (float64, bool) {
	if billTotal == 0 || userExpense == 0 {
		return 0, false
	}

	switch payer {
	case models.PayerUser:
		return FriendExpense(billTotal, userExpense), true
	case models.PayerFriend:
		return -userExpense, true
	default:
		return 0, false
	}
}

// ApplyDelta adds delta to balance using decimal arithmetic, so repeated
// settlements do not accumulate binary floating point noise.
func ApplyDelta(balance, delta float64) float64 {
	return decimal.NewFromFloat(balance).
		Add(decimal.NewFromFloat(delta)).
		InexactFloat64()
}
