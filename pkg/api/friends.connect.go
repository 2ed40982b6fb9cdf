package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// FriendsServiceName is the fully-qualified name of the FriendsService service.
const FriendsServiceName = "eatsplit.v1.FriendsService"

// Procedure paths, as mounted on the HTTP mux.
const (
	FriendsServiceListFriendsProcedure     = "/eatsplit.v1.FriendsService/ListFriends"
	FriendsServiceToggleAddFormProcedure   = "/eatsplit.v1.FriendsService/ToggleAddForm"
	FriendsServiceAddFriendProcedure       = "/eatsplit.v1.FriendsService/AddFriend"
	FriendsServiceDeleteFriendProcedure    = "/eatsplit.v1.FriendsService/DeleteFriend"
	FriendsServiceToggleSelectProcedure    = "/eatsplit.v1.FriendsService/ToggleSelect"
	FriendsServiceSplitBillProcedure       = "/eatsplit.v1.FriendsService/SplitBill"
	FriendsServiceListSettlementsProcedure = "/eatsplit.v1.FriendsService/ListSettlements"
	FriendsServiceResetProcedure           = "/eatsplit.v1.FriendsService/Reset"
)

// FriendsServiceHandler is implemented by the server side of FriendsService.
type FriendsServiceHandler interface {
	ListFriends(context.Context, *connect.Request[ListFriendsRequest]) (*connect.Response[ListFriendsResponse], error)
	ToggleAddForm(context.Context, *connect.Request[ToggleAddFormRequest]) (*connect.Response[ToggleAddFormResponse], error)
	AddFriend(context.Context, *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error)
	DeleteFriend(context.Context, *connect.Request[DeleteFriendRequest]) (*connect.Response[DeleteFriendResponse], error)
	ToggleSelect(context.Context, *connect.Request[ToggleSelectRequest]) (*connect.Response[ToggleSelectResponse], error)
	SplitBill(context.Context, *connect.Request[SplitBillRequest]) (*connect.Response[SplitBillResponse], error)
	ListSettlements(context.Context, *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error)
	Reset(context.Context, *connect.Request[ResetRequest]) (*connect.Response[ResetResponse], error)
}

// NewFriendsServiceHandler builds an HTTP handler for every FriendsService
// procedure. It returns the path to mount the handler on.
func NewFriendsServiceHandler(svc FriendsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	listFriendsHandler := connect.NewUnaryHandler(FriendsServiceListFriendsProcedure, svc.ListFriends, opts...)
	toggleAddFormHandler := connect.NewUnaryHandler(FriendsServiceToggleAddFormProcedure, svc.ToggleAddForm, opts...)
	addFriendHandler := connect.NewUnaryHandler(FriendsServiceAddFriendProcedure, svc.AddFriend, opts...)
	deleteFriendHandler := connect.NewUnaryHandler(FriendsServiceDeleteFriendProcedure, svc.DeleteFriend, opts...)
	toggleSelectHandler := connect.NewUnaryHandler(FriendsServiceToggleSelectProcedure, svc.ToggleSelect, opts...)
	splitBillHandler := connect.NewUnaryHandler(FriendsServiceSplitBillProcedure, svc.SplitBill, opts...)
	listSettlementsHandler := connect.NewUnaryHandler(FriendsServiceListSettlementsProcedure, svc.ListSettlements, opts...)
	resetHandler := connect.NewUnaryHandler(FriendsServiceResetProcedure, svc.Reset, opts...)

	return "/" + FriendsServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case FriendsServiceListFriendsProcedure:
			listFriendsHandler.ServeHTTP(w, r)
		case FriendsServiceToggleAddFormProcedure:
			toggleAddFormHandler.ServeHTTP(w, r)
		case FriendsServiceAddFriendProcedure:
			addFriendHandler.ServeHTTP(w, r)
		case FriendsServiceDeleteFriendProcedure:
			deleteFriendHandler.ServeHTTP(w, r)
		case FriendsServiceToggleSelectProcedure:
			toggleSelectHandler.ServeHTTP(w, r)
		case FriendsServiceSplitBillProcedure:
			splitBillHandler.ServeHTTP(w, r)
		case FriendsServiceListSettlementsProcedure:
			listSettlementsHandler.ServeHTTP(w, r)
		case FriendsServiceResetProcedure:
			resetHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedFriendsServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedFriendsServiceHandler struct{}

func (UnimplementedFriendsServiceHandler) ListFriends(context.Context, *connect.Request[ListFriendsRequest]) (*connect.Response[ListFriendsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("eatsplit.v1.FriendsService.ListFriends is not implemented"))
}

func (UnimplementedFriendsServiceHandler) ToggleAddForm(context.Context, *connect.Request[ToggleAddFormRequest]) (*connect.Response[ToggleAddFormResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("eatsplit.v1.FriendsService.ToggleAddForm is not implemented"))
}

func (UnimplementedFriendsServiceHandler) AddFriend(context.Context, *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("eatsplit.v1.FriendsService.AddFriend is not implemented"))
}

func (UnimplementedFriendsServiceHandler) DeleteFriend(context.Context, *connect.Request[DeleteFriendRequest]) (*connect.Response[DeleteFriendResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("eatsplit.v1.FriendsService.DeleteFriend is not implemented"))
}

func (UnimplementedFriendsServiceHandler) ToggleSelect(context.Context, *connect.Request[ToggleSelectRequest]) (*connect.Response[ToggleSelectResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("eatsplit.v1.FriendsService.ToggleSelect is not implemented"))
}

func (UnimplementedFriendsServiceHandler) SplitBill(context.Context, *connect.Request[SplitBillRequest]) (*connect.Response[SplitBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("eatsplit.v1.FriendsService.SplitBill is not implemented"))
}

func (UnimplementedFriendsServiceHandler) ListSettlements(context.Context, *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("eatsplit.v1.FriendsService.ListSettlements is not implemented"))
}

func (UnimplementedFriendsServiceHandler) Reset(context.Context, *connect.Request[ResetRequest]) (*connect.Response[ResetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("eatsplit.v1.FriendsService.Reset is not implemented"))
}

// FriendsServiceClient is a client for the eatsplit.v1.FriendsService service.
type FriendsServiceClient interface {
	ListFriends(context.Context, *connect.Request[ListFriendsRequest]) (*connect.Response[ListFriendsResponse], error)
	ToggleAddForm(context.Context, *connect.Request[ToggleAddFormRequest]) (*connect.Response[ToggleAddFormResponse], error)
	AddFriend(context.Context, *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error)
	DeleteFriend(context.Context, *connect.Request[DeleteFriendRequest]) (*connect.Response[DeleteFriendResponse], error)
	ToggleSelect(context.Context, *connect.Request[ToggleSelectRequest]) (*connect.Response[ToggleSelectResponse], error)
	SplitBill(context.Context, *connect.Request[SplitBillRequest]) (*connect.Response[SplitBillResponse], error)
	ListSettlements(context.Context, *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error)
	Reset(context.Context, *connect.Request[ResetRequest]) (*connect.Response[ResetResponse], error)
}

// NewFriendsServiceClient constructs a client for FriendsService. baseURL is
// the server root, e.g. http://localhost:8080.
func NewFriendsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FriendsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &friendsServiceClient{
		listFriends:     connect.NewClient[ListFriendsRequest, ListFriendsResponse](httpClient, baseURL+FriendsServiceListFriendsProcedure, opts...),
		toggleAddForm:   connect.NewClient[ToggleAddFormRequest, ToggleAddFormResponse](httpClient, baseURL+FriendsServiceToggleAddFormProcedure, opts...),
		addFriend:       connect.NewClient[AddFriendRequest, AddFriendResponse](httpClient, baseURL+FriendsServiceAddFriendProcedure, opts...),
		deleteFriend:    connect.NewClient[DeleteFriendRequest, DeleteFriendResponse](httpClient, baseURL+FriendsServiceDeleteFriendProcedure, opts...),
		toggleSelect:    connect.NewClient[ToggleSelectRequest, ToggleSelectResponse](httpClient, baseURL+FriendsServiceToggleSelectProcedure, opts...),
		splitBill:       connect.NewClient[SplitBillRequest, SplitBillResponse](httpClient, baseURL+FriendsServiceSplitBillProcedure, opts...),
		listSettlements: connect.NewClient[ListSettlementsRequest, ListSettlementsResponse](httpClient, baseURL+FriendsServiceListSettlementsProcedure, opts...),
		reset:           connect.NewClient[ResetRequest, ResetResponse](httpClient, baseURL+FriendsServiceResetProcedure, opts...),
	}
}

type friendsServiceClient struct {
	listFriends     *connect.Client[ListFriendsRequest, ListFriendsResponse]
	toggleAddForm   *connect.Client[ToggleAddFormRequest, ToggleAddFormResponse]
	addFriend       *connect.Client[AddFriendRequest, AddFriendResponse]
	deleteFriend    *connect.Client[DeleteFriendRequest, DeleteFriendResponse]
	toggleSelect    *connect.Client[ToggleSelectRequest, ToggleSelectResponse]
	splitBill       *connect.Client[SplitBillRequest, SplitBillResponse]
	listSettlements *connect.Client[ListSettlementsRequest, ListSettlementsResponse]
	reset           *connect.Client[ResetRequest, ResetResponse]
}

func (c *friendsServiceClient) ListFriends(ctx context.Context, req *connect.Request[ListFriendsRequest]) (*connect.Response[ListFriendsResponse], error) {
	return c.listFriends.CallUnary(ctx, req)
}

func (c *friendsServiceClient) ToggleAddForm(ctx context.Context, req *connect.Request[ToggleAddFormRequest]) (*connect.Response[ToggleAddFormResponse], error) {
	return c.toggleAddForm.CallUnary(ctx, req)
}

func (c *friendsServiceClient) AddFriend(ctx context.Context, req *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error) {
	return c.addFriend.CallUnary(ctx, req)
}

func (c *friendsServiceClient) DeleteFriend(ctx context.Context, req *connect.Request[DeleteFriendRequest]) (*connect.Response[DeleteFriendResponse], error) {
	return c.deleteFriend.CallUnary(ctx, req)
}

func (c *friendsServiceClient) ToggleSelect(ctx context.Context, req *connect.Request[ToggleSelectRequest]) (*connect.Response[ToggleSelectResponse], error) {
	return c.toggleSelect.CallUnary(ctx, req)
}

func (c *friendsServiceClient) SplitBill(ctx context.Context, req *connect.Request[SplitBillRequest]) (*connect.Response[SplitBillResponse], error) {
	return c.splitBill.CallUnary(ctx, req)
}

func (c *friendsServiceClient) ListSettlements(ctx context.Context, req *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error) {
	return c.listSettlements.CallUnary(ctx, req)
}

func (c *friendsServiceClient) Reset(ctx context.Context, req *connect.Request[ResetRequest]) (*connect.Response[ResetResponse], error) {
	return c.reset.CallUnary(ctx, req)
}
