// Package server wires the session, RPC service and HTTP middleware into one
// handler.
package server

import (
	"net/http"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/eatsplit/internal/metrics"
	"github.com/mmynk/eatsplit/internal/middleware"
	"github.com/mmynk/eatsplit/internal/service"
	"github.com/mmynk/eatsplit/internal/session"
	"github.com/mmynk/eatsplit/pkg/api"
)

// NewHandler builds the root HTTP handler. m may be nil, in which case no
// /metrics endpoint is mounted and RPCs are not timed.
func NewHandler(sess *session.Session, m *metrics.Metrics) http.Handler {
	interceptors := []connect.Interceptor{middleware.LoggingInterceptor()}
	if m != nil {
		interceptors = append(interceptors, middleware.MetricsInterceptor(m))
	}

	mux := http.NewServeMux()

	path, handler := api.NewFriendsServiceHandler(
		service.NewFriendsService(sess),
		connect.WithInterceptors(interceptors...),
	)
	mux.Handle(path, handler)

	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS
	return h2c.NewHandler(middleware.HTTPLogging(middleware.CORS(mux)), &http2.Server{})
}
