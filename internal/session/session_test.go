package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/tourdesk/internal/session"
)

// TestResult_Allowed pins the fail-closed policy: only an authenticated
// result opens the gate.
func TestResult_Allowed(t *testing.T) {
	tests := []struct {
		res  session.Result
		want bool
	}{
		{res: session.Result{Status: session.StatusAuthenticated, UserID: "u1"}, want: true},
		{res: session.Result{Status: session.StatusUnauthenticated}, want: false},
		{res: session.Result{Status: session.StatusError, Err: errors.New("timeout")}, want: false},
		{res: session.Result{}, want: false},
		{res: session.Result{Status: session.Status(42)}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.res.Status.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.res.Allowed())
		})
	}
}

func TestUserID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, session.UserID(ctx))

	ctx = session.WithUserID(ctx, "user-123")
	assert.Equal(t, "user-123", session.UserID(ctx))
}
