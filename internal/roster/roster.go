// Package roster holds the friends list and the current selection.
//
// Store is the only place a Friend is created, removed or has its balance
// changed. Every operation that cannot apply is a silent no-op and reports
// false; callers never see an error.
//
// Store is not safe for concurrent use. The session package serializes
// access to it.
package roster

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mmynk/eatsplit/internal/calculator"
	"github.com/mmynk/eatsplit/internal/models"
)

// Store is the ordered roster of friends plus an optional selection.
type Store struct {
	friends []models.Friend

	// selectedID is a key into friends, resolved on demand. Empty means
	// nothing is selected.
	selectedID string

	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides how new friend IDs are produced.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New creates a Store pre-populated with initial. The slice is copied.
func New(initial []models.Friend, opts ...Option) *Store {
	s := &Store{
		friends: slices.Clone(initial),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Friends returns a copy of the roster in insertion order.
func (s *Store) Friends() []models.Friend {
	return slices.Clone(s.friends)
}

// Len returns the number of friends.
func (s *Store) Len() int {
	return len(s.friends)
}

// Get looks up a friend by ID.
func (s *Store) Get(id string) (models.Friend, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Friend{}, false
	}
	return s.friends[i], true
}

// Add appends a new friend with a zero balance. Empty name or image is a
// no-op.
func (s *Store) Add(name, image string) (models.Friend, bool) {
	if name == "" || image == "" {
		return models.Friend{}, false
	}

	id := s.newID()
	for s.index(id) >= 0 {
		id = s.newID()
	}

	f := models.Friend{ID: id, Name: name, Image: image}
	s.friends = append(s.friends, f)
	return f, true
}

// Delete removes the friend with the given ID and clears the selection if it
// pointed at that friend.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	s.friends = slices.Delete(s.friends, i, i+1)
	if s.selectedID == id {
		s.selectedID = ""
	}
	return true
}

// ToggleSelect selects the friend, or clears the selection if that friend is
// already selected. Selecting another friend replaces the prior selection.
func (s *Store) ToggleSelect(id string) bool {
	if s.index(id) < 0 {
		return false
	}

	if s.selectedID == id {
		s.selectedID = ""
	} else {
		s.selectedID = id
	}
	return true
}

// ClearSelection drops the current selection, if any.
func (s *Store) ClearSelection() {
	s.selectedID = ""
}

// Selected resolves the current selection against the live roster.
func (s *Store) Selected() (models.Friend, bool) {
	if s.selectedID == "" {
		return models.Friend{}, false
	}
	return s.Get(s.selectedID)
}

// SelectedID returns the selected friend's ID, or "" when none is selected.
func (s *Store) SelectedID() string {
	if _, ok := s.Selected(); !ok {
		return ""
	}
	return s.selectedID
}

// Settle adds delta to the balance of the selected friend and clears the
// selection. friendID must match the current selection.
func (s *Store) Settle(friendID string, delta float64) (models.Friend, bool) {
	if friendID == "" || friendID != s.selectedID {
		return models.Friend{}, false
	}

	i := s.index(friendID)
	if i < 0 {
		s.selectedID = ""
		return models.Friend{}, false
	}

	s.friends[i].Balance = calculator.ApplyDelta(s.friends[i].Balance, delta)
	s.selectedID = ""
	return s.friends[i], true
}

// Reset replaces the roster with initial and clears the selection.
func (s *Store) Reset(initial []models.Friend) {
	s.friends = slices.Clone(initial)
	s.selectedID = ""
}

func (s *Store) index(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.friends, func(f models.Friend) bool {
		return f.ID == id
	})
}
