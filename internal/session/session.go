// Package session composes the roster and the two form workflows into the
// single application state the server exposes.
//
// Every exported method is one user event. A mutex serializes events so no
// two ever interleave.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/eatsplit/internal/calculator"
	"github.com/mmynk/eatsplit/internal/models"
	"github.com/mmynk/eatsplit/internal/roster"
	"github.com/mmynk/eatsplit/internal/seed"
	"github.com/mmynk/eatsplit/internal/storage"
	"github.com/mmynk/eatsplit/internal/workflow"
)

// Operation names reported to the Recorder.
const (
	OpAddFriend    = "add_friend"
	OpDeleteFriend = "delete_friend"
	OpSelect       = "toggle_select"
	OpSplitBill    = "split_bill"
	OpReset        = "reset"
)

// Recorder receives operation outcomes, typically for metrics.
type Recorder interface {
	ObserveOperation(op string, applied bool)
	SetFriends(n int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, bool) {}
func (nopRecorder) SetFriends(int) {}

// Session is the process-wide application state.
type Session struct {
	mu sync.Mutex

	roster    *roster.Store
	addForm   workflow.AddFriendForm
	splitForm *workflow.SplitBillForm

	ledger   storage.Ledger
	seed     func() []models.Friend
	recorder Recorder
	now      func() time.Time
}

// Option configures a Session.
type Option func(*config)

type config struct {
	seed       func() []models.Friend
	recorder   Recorder
	rosterOpts []roster.Option
	now        func() time.Time
}

// WithSeed sets the roster a new or reset session starts with.
func WithSeed(fn func() []models.Friend) Option {
	return func(c *config) { c.seed = fn }
}

// WithRecorder reports every operation to r.
func WithRecorder(r Recorder) Option {
	return func(c *config) { c.recorder = r }
}

// WithRosterOptions passes options through to the roster store.
func WithRosterOptions(opts ...roster.Option) Option {
	return func(c *config) { c.rosterOpts = append(c.rosterOpts, opts...) }
}

// WithClock overrides the time source used for ledger timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// New creates a session backed by ledger.
func New(ledger storage.Ledger, opts ...Option) *Session {
	cfg := config{
		seed:     seed.Friends,
		recorder: nopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Session{
		roster:    roster.New(cfg.seed(), cfg.rosterOpts...),
		splitForm: workflow.NewSplitBillForm(),
		ledger:    ledger,
		seed:      cfg.seed,
		recorder:  cfg.recorder,
		now:       cfg.now,
	}
	s.recorder.SetFriends(s.roster.Len())
	return s
}

// SplitInput is one submission of the split-bill form.
type SplitInput struct {
	BillTotal   float64
	UserExpense float64
	Payer       models.Payer
}

// SplitView is the split-bill form as shown for the selected friend.
type SplitView struct {
	FriendID      string
	FriendName    string
	BillTotal     float64
	UserExpense   float64
	FriendExpense float64
	Payer         models.Payer
}

// View is a snapshot of everything the front end renders.
type View struct {
	Friends        []models.Friend
	SelectedID     string
	AddFormVisible bool
	Split          *SplitView // nil when no friend is selected
	Totals         calculator.RosterTotals
}

// View returns the current state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// ToggleAddForm opens or closes the add-friend form.
func (s *Session) ToggleAddForm() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addForm.Toggle()
	return s.viewLocked()
}

// AddFriend submits the add-friend form with the given fields. On success the
// friend is appended and the form closes.
func (s *Session) AddFriend(name, image string) (models.Friend, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addForm.Name = name
	s.addForm.Image = image

	draft, ok := s.addForm.Submit()
	if !ok {
		s.recorder.ObserveOperation(OpAddFriend, false)
		return models.Friend{}, false
	}

	f, ok := s.roster.Add(draft.Name, draft.Image)
	if ok {
		s.addForm.Close()
		s.recorder.SetFriends(s.roster.Len())
		slog.Info("Friend added", "friend_id", f.ID, "name", f.Name)
	}
	s.recorder.ObserveOperation(OpAddFriend, ok)
	return f, ok
}

// DeleteFriend removes a friend along with their ledger history.
func (s *Session) DeleteFriend(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.roster.Delete(id)
	s.recorder.ObserveOperation(OpDeleteFriend, ok)
	if !ok {
		return false
	}

	if s.splitForm.FriendID == id {
		s.splitForm.Close()
	}
	s.recorder.SetFriends(s.roster.Len())

	if err := s.ledger.DeleteFriendSettlements(ctx, id); err != nil {
		slog.Error("DeleteFriend: failed to drop settlements", "friend_id", id, "error", err)
	}
	slog.Info("Friend deleted", "friend_id", id)
	return true
}

// Select toggles the selection of a friend. Selecting a friend opens the
// split-bill form for them.
func (s *Session) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.roster.ToggleSelect(id)
	if ok && s.roster.SelectedID() == id {
		s.splitForm.OpenFor(id)
	}
	s.recorder.ObserveOperation(OpSelect, ok)
	return ok
}

// SplitBill submits the split-bill form for the selected friend and applies
// the resulting delta to their balance. The selection is cleared on success.
func (s *Session) SplitBill(ctx context.Context, in SplitInput) (models.Friend, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, ok := s.roster.Selected()
	if !ok {
		s.recorder.ObserveOperation(OpSplitBill, false)
		return models.Friend{}, false
	}

	s.splitForm.OpenFor(selected.ID)
	s.splitForm.BillTotal = in.BillTotal
	s.splitForm.UserExpense = in.UserExpense
	s.splitForm.Payer = in.Payer

	delta, ok := s.splitForm.Submit()
	if !ok {
		s.recorder.ObserveOperation(OpSplitBill, false)
		return models.Friend{}, false
	}

	friend, ok := s.roster.Settle(s.splitForm.FriendID, delta)
	s.recorder.ObserveOperation(OpSplitBill, ok)
	if !ok {
		return models.Friend{}, false
	}

	record := &models.Settlement{
		FriendID:     friend.ID,
		Payer:        s.splitForm.Payer,
		BillTotal:    s.splitForm.BillTotal,
		UserExpense:  s.splitForm.UserExpense,
		Delta:        delta,
		BalanceAfter: friend.Balance,
		CreatedAt:    s.now().Unix(),
	}
	s.splitForm.Close()

	if err := s.ledger.RecordSettlement(ctx, record); err != nil {
		slog.Error("SplitBill: failed to record settlement", "friend_id", friend.ID, "error", err)
	}
	slog.Info("Bill split",
		"friend_id", friend.ID,
		"delta", delta,
		"balance", friend.Balance,
	)
	return friend, true
}

// Settlements lists the ledger for one friend, or for everyone when friendID
// is empty.
func (s *Session) Settlements(ctx context.Context, friendID string) ([]*models.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.ListSettlements(ctx, friendID)
}

// Reset restores the seed roster, closes both forms and clears the ledger.
func (s *Session) Reset(ctx context.Context) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.Reset(s.seed())
	s.addForm.Dismiss()
	s.splitForm.Close()
	if err := s.ledger.Clear(ctx); err != nil {
		slog.Error("Reset: failed to clear ledger", "error", err)
	}

	s.recorder.SetFriends(s.roster.Len())
	s.recorder.ObserveOperation(OpReset, true)
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{
		Friends:        s.roster.Friends(),
		SelectedID:     s.roster.SelectedID(),
		AddFormVisible: s.addForm.Visible(),
	}
	v.Totals = calculator.Totals(v.Friends)

	if f, ok := s.roster.Selected(); ok {
		v.Split = &SplitView{
			FriendID:      f.ID,
			FriendName:    f.Name,
			BillTotal:     s.splitForm.BillTotal,
			UserExpense:   s.splitForm.UserExpense,
			FriendExpense: s.splitForm.FriendExpense(),
			Payer:         s.splitForm.Payer,
		}
	}
	return v
}
