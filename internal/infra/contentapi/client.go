// Package contentapi provides HTTP clients for the platform's content API.
package contentapi

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
)

// ClientConfig holds configuration for a content API client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	CB      CBConfig
}

// CBConfig holds circuit breaker configuration.
type CBConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
}

// tokenContextKey carries the caller's bearer token through a request context.
type tokenContextKey struct{}

// WithToken returns a context carrying the caller's bearer token. The
// authenticated client signs every outgoing request with it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext extracts the bearer token from a context, if any.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)

	return token
}

// NewRestyClient creates a Resty HTTP client for the public content API.
// Page fetches are issued exactly once: pagination carries no retry policy,
// so a failing page either stops the collection (non-2xx) or aborts the call.
func NewRestyClient(cfg ClientConfig) *resty.Client {
	return resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)
}

// NewAccountRestyClient creates a Resty HTTP client for the authenticated
// account API. Each request is signed with the bearer token carried on its
// context and sent with a no-cache directive so the caller always sees fresh
// account data.
func NewAccountRestyClient(cfg ClientConfig) *resty.Client {
	client := NewRestyClient(cfg)

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("Cache-Control", "no-cache")
		if token := TokenFromContext(r.Context()); token != "" {
			r.SetHeader("Authorization", "Bearer "+token)
		}

		return nil
	})

	return client
}

// NewCircuitBreaker creates a circuit breaker for a content API client.
// Only transport failures count toward tripping: a non-2xx page response is a
// pagination-stop signal handled by the fetcher, not a breaker failure.
func NewCircuitBreaker(name string, cfg CBConfig) *gobreaker.CircuitBreaker[*resty.Response] {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= cfg.FailureRatio
		},
	}

	return gobreaker.NewCircuitBreaker[*resty.Response](settings)
}
