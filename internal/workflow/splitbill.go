package workflow

import (
	"github.com/mmynk/eatsplit/internal/calculator"
	"github.com/mmynk/eatsplit/internal/models"
)

// SplitBillForm computes a balance delta for a bill shared with one friend.
// The friend's share is always derived from BillTotal and UserExpense.
type SplitBillForm struct {
	FriendID    string
	BillTotal   float64
	UserExpense float64
	Payer       models.Payer
}

// NewSplitBillForm returns a form with default values bound to no friend.
func NewSplitBillForm() *SplitBillForm {
	return &SplitBillForm{Payer: models.PayerUser}
}

// OpenFor binds the form to friendID. Opening for a different friend resets
// the amounts and payer; reopening for the same friend keeps them.
func (f *SplitBillForm) OpenFor(friendID string) {
	if f.FriendID == friendID {
		return
	}
	f.reset()
	f.FriendID = friendID
}

// Close unbinds the form from its friend and resets it.
func (f *SplitBillForm) Close() {
	f.reset()
	f.FriendID = ""
}

// FriendExpense is the friend's share, rounded to two decimals.
func (f *SplitBillForm) FriendExpense() float64 {
	return calculator.FriendExpense(f.BillTotal, f.UserExpense)
}

// Submit returns the signed delta for the bound friend's balance. Zero
// amounts or an unknown payer produce nothing.
func (f *SplitBillForm) Submit() (float64, bool) {
	return calculator.SettlementDelta(f.BillTotal, f.UserExpense, f.Payer)
}

func (f *SplitBillForm) reset() {
	f.BillTotal = 0
	f.UserExpense = 0
	f.Payer = models.PayerUser
}
