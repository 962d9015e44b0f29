// Package session decides whether a request carries an active session with
// the hosted auth service, and gates the admin routes on that decision.
//
// The gate fails closed: only StatusAuthenticated lets a request through.
// An unreachable or misbehaving auth service is treated exactly like a
// missing session.
package session

import "context"

// Status is the outcome of one session check.
type Status int

const (
	// StatusUnauthenticated means the check completed and found no valid
	// session. It is the zero value so an unset Result denies.
	StatusUnauthenticated Status = iota
	// StatusAuthenticated means the token belongs to an active session.
	StatusAuthenticated
	// StatusError means the check itself failed.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is returned by a Checker. Err is set for StatusError and may
// explain a StatusUnauthenticated outcome.
type Result struct {
	Status Status
	UserID string
	Err    error
}

// Allowed reports whether the gate opens for r. Everything except
// StatusAuthenticated is denied.
func (r Result) Allowed() bool {
	return r.Status == StatusAuthenticated
}

// Checker validates an access token. Implementations make a single attempt
// and honour ctx cancellation.
type Checker interface {
	Check(ctx context.Context, token string) Result
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, token string) Result

// Check calls f.
func (f CheckerFunc) Check(ctx context.Context, token string) Result {
	return f(ctx, token)
}

type userIDKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserID returns the id stored by the gate, or "" outside a gated request.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}
