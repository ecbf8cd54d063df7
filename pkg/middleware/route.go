package middleware

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Unmatched labels requests that reached no route.
const Unmatched = "unmatched"

type routeKey struct{}

type routeLabel struct {
	mu    sync.Mutex
	route string
}

// withRoute returns ctx carrying a route holder, reusing an existing one.
func withRoute(ctx context.Context) (context.Context, *routeLabel) {
	if l, ok := ctx.Value(routeKey{}).(*routeLabel); ok {
		return ctx, l
	}
	l := &routeLabel{}
	return context.WithValue(ctx, routeKey{}, l), l
}

// SetRoute records the route pattern that served the request. It is a no-op
// outside Metrics or Tracing.
func SetRoute(ctx context.Context, route string) {
	if l, ok := ctx.Value(routeKey{}).(*routeLabel); ok {
		l.mu.Lock()
		l.route = route
		l.mu.Unlock()
	}
}

// Route returns the route recorded for r, falling back to the chi pattern.
func Route(r *http.Request) string {
	if l, ok := r.Context().Value(routeKey{}).(*routeLabel); ok {
		l.mu.Lock()
		route := l.route
		l.mu.Unlock()
		if route != "" {
			return route
		}
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" && pattern != "/*" {
			return pattern
		}
	}
	return Unmatched
}
