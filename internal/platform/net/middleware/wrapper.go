// Package middleware provides the http middleware stack, mostly thin adapters over chi
package middleware

import (
	"net/http"
	"time"

	pstrings "chardetcompat/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// RequestID attaches or propagates X-Request-ID and stores it on context
func RequestID() func(http.Handler) http.Handler { return chimw.RequestID }

// RealIP sets RemoteAddr to the upstream IP based on X-Forwarded-For headers
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// NoCache sets headers to disable client and proxy caching
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// Throttle limits concurrent requests globally
func Throttle(limit int) func(http.Handler) http.Handler { return chimw.Throttle(limit) }

// Heartbeat replies with 200 OK to GET path, useful for LB health checks
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS wraps go-chi/cors; empty method/header lists fall back to what the detect API needs
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "POST", "OPTIONS"}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		MaxAge:         o.MaxAge,
	})
}

// Options configures the default stack
type Options struct {
	Timeout     time.Duration // 0 disables
	MaxInFlight int           // 0 disables throttling
	Slow        time.Duration // access log slow mark
	CORSOrigins []string      // empty disables CORS
}

// Defaults returns the stack every server mounts, outermost first
func Defaults(o Options) []func(http.Handler) http.Handler {
	out := []func(http.Handler) http.Handler{
		RealIP(),
		RequestID(),
		RecoverJSON,
		AccessLogZerolog(AccessLogOptions{Slow: o.Slow}),
		Heartbeat("/healthz"),
		NoCache(),
	}
	if len(o.CORSOrigins) > 0 {
		out = append(out, CORS(CORSOptions{AllowedOrigins: o.CORSOrigins}))
	}
	if o.MaxInFlight > 0 {
		out = append(out, Throttle(o.MaxInFlight))
	}
	if o.Timeout > 0 {
		out = append(out, Timeout(o.Timeout))
	}
	return out
}
