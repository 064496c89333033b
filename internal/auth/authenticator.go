package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/google/uuid"

	"github.com/keepsakehq/keepsake/server/internal/model"
	"github.com/keepsakehq/keepsake/server/internal/store"
)

// Authenticator checks a candidate password against the stored secret and
// mints session tokens on success.
type Authenticator struct {
	secret   store.Secret
	sessions store.Sessions
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
}

// NewAuthenticator wires the shared secret and the session record set.
func NewAuthenticator(secret store.Secret, sessions store.Sessions, ttl time.Duration) *Authenticator {
	return &Authenticator{
		secret:   secret,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// WithClock overrides the time source; used by tests.
func (a *Authenticator) WithClock(now func() time.Time) *Authenticator {
	a.now = now
	return a
}

// Authenticate compares candidate against the stored secret. On match it
// appends a new session and returns its token with ok=true. On mismatch it
// returns ok=false with no side effects and no detail about why.
//
// The comparison is constant-time; an empty stored secret never matches, so
// a missing or corrupt password file locks the feature rather than opening
// it.
func (a *Authenticator) Authenticate(ctx context.Context, candidate string) (string, bool, error) {
	stored, err := a.secret.Get(ctx)
	if err != nil {
		return "", false, err
	}
	if stored.Password == "" {
		return "", false, nil
	}
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(stored.Password)) != 1 {
		return "", false, nil
	}

	now := a.now()
	sess := model.Session{
		Token:   a.newToken(),
		Expires: now.Add(a.ttl).UnixMilli(),
	}
	if err := a.sessions.Append(ctx, sess, now.UnixMilli()); err != nil {
		return "", false, err
	}
	return sess.Token, true, nil
}
