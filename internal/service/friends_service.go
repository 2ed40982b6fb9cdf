package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/eatsplit/internal/calculator"
	"github.com/mmynk/eatsplit/internal/models"
	"github.com/mmynk/eatsplit/internal/session"
	"github.com/mmynk/eatsplit/pkg/api"
)

// FriendsService implements the Connect FriendsService on top of a session.
type FriendsService struct {
	api.UnimplementedFriendsServiceHandler
	session *session.Session
}

// NewFriendsService creates a FriendsService driving the given session.
func NewFriendsService(sess *session.Session) *FriendsService {
	return &FriendsService{session: sess}
}

// parsePayer maps the wire value to a payer. Empty defaults to the user.
func parsePayer(raw string) (models.Payer, error) {
	if raw == "" {
		return models.PayerUser, nil
	}
	p := models.Payer(raw)
	if !p.Valid() {
		return "", fmt.Errorf("payer must be %q or %q, got %q", models.PayerUser, models.PayerFriend, raw)
	}
	return p, nil
}

// ListFriends returns the current roster.
func (s *FriendsService) ListFriends(ctx context.Context, req *connect.Request[api.ListFriendsRequest]) (*connect.Response[api.ListFriendsResponse], error) {
	return connect.NewResponse(&api.ListFriendsResponse{
		Roster: toRoster(s.session.View()),
	}), nil
}

// ToggleAddForm opens or closes the add-friend form.
func (s *FriendsService) ToggleAddForm(ctx context.Context, req *connect.Request[api.ToggleAddFormRequest]) (*connect.Response[api.ToggleAddFormResponse], error) {
	return connect.NewResponse(&api.ToggleAddFormResponse{
		Roster: toRoster(s.session.ToggleAddForm()),
	}), nil
}

// AddFriend appends a friend. Empty fields leave the roster unchanged and
// report applied=false.
func (s *FriendsService) AddFriend(ctx context.Context, req *connect.Request[api.AddFriendRequest]) (*connect.Response[api.AddFriendResponse], error) {
	slog.Debug("AddFriend request received", "name", req.Msg.Name)

	resp := &api.AddFriendResponse{}
	if f, ok := s.session.AddFriend(req.Msg.Name, req.Msg.Image); ok {
		resp.Applied = true
		resp.Friend = toFriend(f)
	}
	resp.Roster = toRoster(s.session.View())

	return connect.NewResponse(resp), nil
}

// DeleteFriend removes a friend. Unknown IDs report applied=false.
func (s *FriendsService) DeleteFriend(ctx context.Context, req *connect.Request[api.DeleteFriendRequest]) (*connect.Response[api.DeleteFriendResponse], error) {
	applied := s.session.DeleteFriend(ctx, req.Msg.FriendID)

	return connect.NewResponse(&api.DeleteFriendResponse{
		Applied: applied,
		Roster:  toRoster(s.session.View()),
	}), nil
}

// ToggleSelect selects a friend, or clears the selection if already selected.
func (s *FriendsService) ToggleSelect(ctx context.Context, req *connect.Request[api.ToggleSelectRequest]) (*connect.Response[api.ToggleSelectResponse], error) {
	applied := s.session.Select(req.Msg.FriendID)

	return connect.NewResponse(&api.ToggleSelectResponse{
		Applied: applied,
		Roster:  toRoster(s.session.View()),
	}), nil
}

// SplitBill settles a bill against the selected friend.
func (s *FriendsService) SplitBill(ctx context.Context, req *connect.Request[api.SplitBillRequest]) (*connect.Response[api.SplitBillResponse], error) {
	payer, err := parsePayer(req.Msg.Payer)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	slog.Debug("SplitBill request received",
		"bill_total", req.Msg.BillTotal,
		"user_expense", req.Msg.UserExpense,
		"payer", payer,
	)

	resp := &api.SplitBillResponse{}
	f, ok := s.session.SplitBill(ctx, session.SplitInput{
		BillTotal:   req.Msg.BillTotal,
		UserExpense: req.Msg.UserExpense,
		Payer:       payer,
	})
	if ok {
		resp.Applied = true
		resp.Friend = toFriend(f)
	}
	resp.Roster = toRoster(s.session.View())

	return connect.NewResponse(resp), nil
}

// ListSettlements returns the ledger, optionally for one friend.
func (s *FriendsService) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	settlements, err := s.session.Settlements(ctx, req.Msg.FriendID)
	if err != nil {
		slog.Error("ListSettlements failed", "friend_id", req.Msg.FriendID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if settlements == nil {
		settlements = []*models.Settlement{}
	}

	return connect.NewResponse(&api.ListSettlementsResponse{
		Settlements: settlements,
	}), nil
}

// Reset restores the seed roster.
func (s *FriendsService) Reset(ctx context.Context, req *connect.Request[api.ResetRequest]) (*connect.Response[api.ResetResponse], error) {
	slog.Info("Reset request received")

	return connect.NewResponse(&api.ResetResponse{
		Roster: toRoster(s.session.Reset(ctx)),
	}), nil
}

func toFriend(f models.Friend) *api.Friend {
	status := calculator.Describe(f)
	return &api.Friend{
		ID:      f.ID,
		Name:    f.Name,
		Image:   f.Image,
		Balance: f.Balance,
		Status:  string(status.Kind),
		Message: status.Message,
	}
}

func toRoster(v session.View) api.Roster {
	r := api.Roster{
		Friends:        make([]api.Friend, len(v.Friends)),
		SelectedID:     v.SelectedID,
		AddFormVisible: v.AddFormVisible,
		Totals: api.Totals{
			OwedToUser: v.Totals.OwedToUser,
			UserOwes:   v.Totals.UserOwes,
			Net:        v.Totals.Net,
		},
	}
	for i, f := range v.Friends {
		r.Friends[i] = *toFriend(f)
	}
	if v.Split != nil {
		r.SplitForm = &api.SplitForm{
			FriendID:      v.Split.FriendID,
			FriendName:    v.Split.FriendName,
			BillTotal:     v.Split.BillTotal,
			UserExpense:   v.Split.UserExpense,
			FriendExpense: v.Split.FriendExpense,
			Payer:         string(v.Split.Payer),
		}
	}
	return r
}
