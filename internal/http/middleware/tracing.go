package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

// Tracing wraps the router in an ochttp server span. Spans are named after the
// matched route template so ids do not blow up span cardinality.
func Tracing(next http.Handler) http.Handler {
	return &ochttp.Handler{
		Handler:          withRouteAttributes(next),
		FormatSpanName:   spanName,
		IsPublicEndpoint: true,
		IsHealthEndpoint: func(r *http.Request) bool { return r.URL.Path == "/healthz" },
	}
}

func spanName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return r.Method + " " + tpl
		}
	}
	return r.Method + " " + r.URL.Path
}

func withRouteAttributes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if span := trace.FromContext(r.Context()); span != nil {
			span.AddAttributes(
				trace.StringAttribute("http.client_ip", ClientIP(r)),
				trace.StringAttribute("http.request_id", RequestIDFromContext(r.Context())),
			)
		}
		next.ServeHTTP(w, r)
	})
}

// RouteSpanName renames the current span once mux has matched the route
func RouteSpanName(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if span := trace.FromContext(r.Context()); span != nil {
			span.SetName(spanName(r))
		}
		next.ServeHTTP(w, r)
	})
}
