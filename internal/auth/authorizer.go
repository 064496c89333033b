package auth

import (
	"context"
	"time"

	"github.com/keepsakehq/keepsake/server/internal/store"
)

// Authorizer decides whether a presented token grants access to the gated
// memories routes.
type Authorizer interface {
	// Authorize returns nil when the token matches a live session,
	// ErrInvalidToken otherwise.
	Authorize(ctx context.Context, token string) error
}

// SessionAuthorizer validates tokens against the session record set.
// Each call loads the full set and scans it linearly: O(n) per gated
// request, which is fine at the expected scale of tens to low thousands
// of sessions.
type SessionAuthorizer struct {
	sessions store.Sessions
	now      func() time.Time
}

// NewSessionAuthorizer creates an Authorizer backed by the given sessions.
func NewSessionAuthorizer(sessions store.Sessions) *SessionAuthorizer {
	return &SessionAuthorizer{sessions: sessions, now: time.Now}
}

// WithClock overrides the time source; used by tests to probe expiry.
func (a *SessionAuthorizer) WithClock(now func() time.Time) *SessionAuthorizer {
	a.now = now
	return a
}

func (a *SessionAuthorizer) Authorize(ctx context.Context, token string) error {
	if token == "" {
		return ErrMissingToken
	}
	list, err := a.sessions.List(ctx)
	if err != nil {
		return err
	}
	nowMillis := a.now().UnixMilli()
	for _, s := range list {
		if s.Token == token && s.ValidAt(nowMillis) {
			return nil
		}
	}
	return ErrInvalidToken
}
