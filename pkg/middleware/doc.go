// Package middleware provides net/http middleware for observing the site.
//
// # Prometheus Metrics
//
// Metrics records every request:
//   - site_requests_total: requests by route, method and status
//   - site_request_duration_seconds: request latency histogram by route
//   - site_page_renders_total: page renders by route and result
//   - site_content_reloads_total: content reloads by result
//
//	m := middleware.NewMetrics(middleware.WithNamespace("site"))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.Handler())
//
// The route label is the registered route pattern. Handlers that dispatch
// pages themselves report it with SetRoute; otherwise the chi route pattern
// is used, and "unmatched" when there is none.
//
// # OpenTelemetry Tracing
//
// Tracing starts a server span per request. RenderSpan starts a child span
// around page rendering:
//
//	r.Use(middleware.Tracing(middleware.WithTracerName("site")))
//
//	ctx, span := middleware.RenderSpan(r.Context(), page.Route)
//	defer span.End()
//
// The tracer uses the global OpenTelemetry tracer provider unless
// WithTracerProvider is given.
package middleware
