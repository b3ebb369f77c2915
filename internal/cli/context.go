package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/taskflow/internal/app"
)

type contextKey string

const (
	cliKey contextKey = "cli"

	// AppKey lets callers, tests in particular, inject a ready app
	AppKey contextKey = "app"
)

// ErrNoSession is returned when a command runs without a session in its context
var ErrNoSession = errors.New("no taskflow session in context")

// WithCLI stores the session commands run against
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey, c)
}

// WithApp stores an app that commands wrap in a borrowed session
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, AppKey, a)
}

// GetCLIFromContext returns a borrowed handle on the session stored by
// WithCLI, or on the app stored by WithApp. Closing the handle is a no-op;
// the session's owner closes it.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoSession
	}
	if c, ok := ctx.Value(cliKey).(*CLI); ok && c != nil {
		return &CLI{App: c.App, Config: c.Config}, nil
	}
	if a, ok := ctx.Value(AppKey).(*app.App); ok && a != nil {
		return FromApp(a), nil
	}
	return nil, ErrNoSession
}

// HasSession reports whether ctx already carries a session
func HasSession(ctx context.Context) bool {
	_, err := GetCLIFromContext(ctx)
	return err == nil
}
