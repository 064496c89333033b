package auth

import (
	"context"
	"testing"
	"time"

	"github.com/keepsakehq/keepsake/server/internal/model"
)

type fakeSecret struct {
	secret model.Secret
}

func (f *fakeSecret) Get(ctx context.Context) (model.Secret, error) {
	return f.secret, nil
}

func TestAuthenticate_TokenRoundTrip(t *testing.T) {
	sessions := &fakeSessions{}
	a := NewAuthenticator(&fakeSecret{model.Secret{Password: "s3cret"}}, sessions, 7*24*time.Hour)
	ctx := context.Background()

	token, ok, err := a.Authenticate(ctx, "s3cret")
	if err != nil || !ok {
		t.Fatalf("expected success, got ok=%v err=%v", ok, err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	authz := NewSessionAuthorizer(sessions)
	if err := authz.Authorize(ctx, token); err != nil {
		t.Fatalf("fresh token should authorize, got %v", err)
	}
	if err := authz.Authorize(ctx, token+"x"); err == nil {
		t.Fatalf("mangled token should be denied")
	}
}

func TestAuthenticate_SessionExpiryIsSevenDays(t *testing.T) {
	sessions := &fakeSessions{}
	now := time.Now()
	a := NewAuthenticator(&fakeSecret{model.Secret{Password: "pw"}}, sessions, 7*24*time.Hour).
		WithClock(func() time.Time { return now })

	_, ok, err := a.Authenticate(context.Background(), "pw")
	if err != nil || !ok {
		t.Fatalf("expected success, got ok=%v err=%v", ok, err)
	}
	if len(sessions.list) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions.list))
	}
	want := now.Add(7 * 24 * time.Hour).UnixMilli()
	if sessions.list[0].Expires != want {
		t.Fatalf("expected expiry %d, got %d", want, sessions.list[0].Expires)
	}
}

func TestAuthenticate_WrongSecretHasNoSideEffects(t *testing.T) {
	sessions := &fakeSessions{list: []model.Session{{Token: "pre"}}}
	a := NewAuthenticator(&fakeSecret{model.Secret{Password: "right"}}, sessions, time.Hour)

	for _, candidate := range []string{"wrong", "", "RIGHT", "right "} {
		token, ok, err := a.Authenticate(context.Background(), candidate)
		if err != nil {
			t.Fatalf("candidate %q: unexpected error %v", candidate, err)
		}
		if ok || token != "" {
			t.Fatalf("candidate %q should be denied without a token", candidate)
		}
		if len(sessions.list) != 1 {
			t.Fatalf("candidate %q changed the session store", candidate)
		}
	}
}

func TestAuthenticate_EmptyStoredSecretNeverMatches(t *testing.T) {
	sessions := &fakeSessions{}
	a := NewAuthenticator(&fakeSecret{}, sessions, time.Hour)

	_, ok, err := a.Authenticate(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("unset password must not grant access")
	}
	if len(sessions.list) != 0 {
		t.Fatalf("no session should be created")
	}
}
