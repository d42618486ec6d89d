package handlers_test

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dronefleet-service/internal/logx"
)

func testLogger() logx.Logger { return logx.Nop() }

// withRouteParam injects a chi URL parameter the way the router would.
func withRouteParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}
