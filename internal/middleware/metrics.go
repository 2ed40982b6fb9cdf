package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"
)

// RPCObserver receives per-call latency.
type RPCObserver interface {
	ObserveRPC(procedure, code string, seconds float64)
}

// MetricsInterceptor records the latency and result code of every RPC.
func MetricsInterceptor(obs RPCObserver) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			obs.ObserveRPC(req.Spec().Procedure, code, time.Since(start).Seconds())
			return resp, err
		}
	}
}
