package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/repairctl/internal/logger"
)

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	Token(ctx context.Context) string
}

// UnauthorizedFunc is called whenever the backend answers 401.
type UnauthorizedFunc func(ctx context.Context)

type contextKey int

const (
	explicitTokenKey contextKey = iota
)

// withToken makes the request carry token instead of the TokenSource one.
// Such requests do not trigger the unauthorized hook.
func withToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, explicitTokenKey, token)
}

func explicitToken(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(explicitTokenKey).(string)
	return t, ok
}

// Logging is a RoundTripper that logs requests and their results.
type Logging struct {
	next   http.RoundTripper
	logger *logger.Logger
}

// NewLogging wraps next with request logging.
func NewLogging(next http.RoundTripper, logger *logger.Logger) *Logging {
	return &Logging{next: next, logger: logger}
}

func (l *Logging) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	l.logger.Debug("REST request started",
		"method", req.Method,
		"path", req.URL.Path)

	resp, err := l.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		l.logger.Error("REST request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error())
		return nil, err
	}

	l.logger.Debug("REST request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"duration_ms", duration.Milliseconds(),
		"status", resp.StatusCode)

	return resp, nil
}

// Authenticate is a RoundTripper that attaches the bearer token and reports
// 401 responses to the unauthorized hook.
type Authenticate struct {
	next           http.RoundTripper
	tokens         TokenSource
	onUnauthorized UnauthorizedFunc
	logger         *logger.Logger
}

// NewAuthenticate wraps next with bearer injection. tokens and onUnauthorized may be nil.
func NewAuthenticate(next http.RoundTripper, tokens TokenSource, onUnauthorized UnauthorizedFunc, logger *logger.Logger) *Authenticate {
	return &Authenticate{next: next, tokens: tokens, onUnauthorized: onUnauthorized, logger: logger}
}

func (a *Authenticate) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token, explicit := explicitToken(ctx)
	if !explicit && a.tokens != nil {
		token = a.tokens.Token(ctx)
	}

	if token != "" {
		req = req.Clone(ctx)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !explicit && a.onUnauthorized != nil {
		a.logger.Warn("REST client: backend rejected credentials, ending session",
			"method", req.Method,
			"path", req.URL.Path)
		a.onUnauthorized(context.WithoutCancel(ctx))
	}

	return resp, nil
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) string

func (f TokenSourceFunc) Token(ctx context.Context) string {
	return f(ctx)
}
