package authx

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/coreos/go-oidc"
	"github.com/innoverse/admin/apiserver/internal/lib/crypto"
	"github.com/innoverse/admin/sdk/authx"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/oauth2"
)

type fakeSessionsStore struct {
	// keyed by token
	sessions map[string]authx.Session
}

func newFakeSessionsStore() *fakeSessionsStore {
	return &fakeSessionsStore{sessions: map[string]authx.Session{}}
}

func (f *fakeSessionsStore) Upsert(
	_ context.Context,
	session authx.Session,
) error {
	for token, existing := range f.sessions {
		if existing.AdminID == session.AdminID {
			delete(f.sessions, token)
		}
	}
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionsStore) GetByToken(
	_ context.Context,
	token string,
) (authx.Session, error) {
	session, ok := f.sessions[token]
	if !ok {
		return session, meta.NewErrNotFound("Session", "")
	}
	return session, nil
}

func (f *fakeSessionsStore) Renew(
	_ context.Context,
	token string,
	expires int64,
) error {
	session, ok := f.sessions[token]
	if !ok {
		return meta.NewErrNotFound("Session", "")
	}
	session.Expires = expires
	f.sessions[token] = session
	return nil
}

func (f *fakeSessionsStore) DeleteByToken(
	_ context.Context,
	token string,
) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionsStore) DeleteExpired(
	_ context.Context,
	before int64,
) (int64, error) {
	var count int64
	for token, session := range f.sessions {
		if session.Expires < before {
			delete(f.sessions, token)
			count++
		}
	}
	return count, nil
}

type fakeAdminsStore struct {
	admins     []authx.Admin
	loginStats map[primitive.ObjectID]int64
}

func newFakeAdminsStore(admins ...authx.Admin) *fakeAdminsStore {
	return &fakeAdminsStore{
		admins:     admins,
		loginStats: map[primitive.ObjectID]int64{},
	}
}

func (f *fakeAdminsStore) GetByCredentials(
	_ context.Context,
	username string,
	hashedPassword string,
) (authx.Admin, error) {
	for _, admin := range f.admins {
		if admin.Username == username &&
			admin.HashedPassword == hashedPassword {
			return admin, nil
		}
	}
	return authx.Admin{}, meta.NewErrNotFound("Admin", username)
}

func (f *fakeAdminsStore) GetByEmail(
	_ context.Context,
	email string,
) (authx.Admin, error) {
	for _, admin := range f.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return authx.Admin{}, meta.NewErrNotFound("Admin", email)
}

func (f *fakeAdminsStore) UpdateLoginStats(
	_ context.Context,
	id primitive.ObjectID,
	_ time.Time,
) error {
	f.loginStats[id]++
	return nil
}

func testAdmin() authx.Admin {
	return authx.Admin{
		ID:             primitive.NewObjectID(),
		Username:       "tony",
		Email:          "tony@innoverse.example.com",
		HashedPassword: crypto.ShortSHA("tony", "letmein"),
	}
}

func TestAuthenticate(t *testing.T) {
	admin := testAdmin()
	sessionsStore := newFakeSessionsStore()
	adminsStore := newFakeAdminsStore(admin)
	service := NewSessionsService(sessionsStore, adminsStore, nil, nil)

	token, err := service.Authenticate(
		context.Background(),
		"tony",
		"letmein",
	)
	require.NoError(t, err)
	require.NotEmpty(t, token.Value)

	session, err := sessionsStore.GetByToken(context.Background(), token.Value)
	require.NoError(t, err)
	require.Equal(t, admin.ID, session.AdminID)
	require.Equal(t, "tony", session.Username)
	require.Equal(t, int64(1), adminsStore.loginStats[admin.ID])
}

func TestAuthenticateBadCredentials(t *testing.T) {
	admin := testAdmin()
	sessionsStore := newFakeSessionsStore()
	adminsStore := newFakeAdminsStore(admin)
	service := NewSessionsService(sessionsStore, adminsStore, nil, nil)

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "tony", password: "wrong"},
		{name: "unknown username", username: "nobody", password: "letmein"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.Authenticate(
				context.Background(),
				testCase.username,
				testCase.password,
			)
			require.Error(t, err)
			require.IsType(t, &meta.ErrAuthentication{}, err)
			require.Empty(t, sessionsStore.sessions)
			require.Zero(t, adminsStore.loginStats[admin.ID])
		})
	}
}

func TestCreateSessionReplacesExisting(t *testing.T) {
	admin := testAdmin()
	sessionsStore := newFakeSessionsStore()
	service :=
		NewSessionsService(sessionsStore, newFakeAdminsStore(admin), nil, nil)

	firstToken, err := service.CreateSession(context.Background(), admin)
	require.NoError(t, err)
	secondToken, err := service.CreateSession(context.Background(), admin)
	require.NoError(t, err)
	require.NotEqual(t, firstToken.Value, secondToken.Value)

	// An admin only ever has one live session, so the first token should now
	// be dead and the second alive.
	require.Len(t, sessionsStore.sessions, 1)
	_, err = service.Validate(context.Background(), firstToken.Value)
	require.Error(t, err)
	require.IsType(t, &meta.ErrAuthentication{}, err)
	_, err = service.Validate(context.Background(), secondToken.Value)
	require.NoError(t, err)
}

func TestValidateEmptyToken(t *testing.T) {
	service := NewSessionsService(
		newFakeSessionsStore(),
		newFakeAdminsStore(),
		nil,
		nil,
	)
	_, err := service.Validate(context.Background(), "")
	require.Error(t, err)
	require.IsType(t, &meta.ErrAuthentication{}, err)
}

func TestValidateUnknownToken(t *testing.T) {
	service := NewSessionsService(
		newFakeSessionsStore(),
		newFakeAdminsStore(),
		nil,
		nil,
	)
	_, err := service.Validate(context.Background(), "bogus")
	require.Error(t, err)
	require.IsType(t, &meta.ErrAuthentication{}, err)
}

func TestValidateExpiredTokenDeletesSession(t *testing.T) {
	sessionsStore := newFakeSessionsStore()
	service :=
		NewSessionsService(sessionsStore, newFakeAdminsStore(), nil, nil)

	err := sessionsStore.Upsert(
		context.Background(),
		authx.Session{
			Token:    "stale",
			AdminID:  primitive.NewObjectID(),
			Username: "tony",
			Created:  time.Now().Add(-48 * time.Hour),
			Expires:  time.Now().Add(-24 * time.Hour).Unix(),
		},
	)
	require.NoError(t, err)

	_, err = service.Validate(context.Background(), "stale")
	require.Error(t, err)
	require.IsType(t, &meta.ErrAuthentication{}, err)
	// The expired record should have been removed, not just rejected.
	require.Empty(t, sessionsStore.sessions)
}

func TestValidateSlidesExpiry(t *testing.T) {
	sessionsStore := newFakeSessionsStore()
	service :=
		NewSessionsService(sessionsStore, newFakeAdminsStore(), nil, nil)

	originalExpiry := time.Now().Add(time.Hour).Unix()
	err := sessionsStore.Upsert(
		context.Background(),
		authx.Session{
			Token:    "live",
			AdminID:  primitive.NewObjectID(),
			Username: "tony",
			Created:  time.Now().Add(-23 * time.Hour),
			Expires:  originalExpiry,
		},
	)
	require.NoError(t, err)

	session, err := service.Validate(context.Background(), "live")
	require.NoError(t, err)
	require.Equal(t, "tony", session.Username)
	require.Greater(t, session.Expires, originalExpiry)
	require.Equal(t, session.Expires, sessionsStore.sessions["live"].Expires)

	// A second validation slides the expiry again.
	session2, err := service.Validate(context.Background(), "live")
	require.NoError(t, err)
	require.GreaterOrEqual(t, session2.Expires, session.Expires)
}

func TestRevokeIsIdempotent(t *testing.T) {
	sessionsStore := newFakeSessionsStore()
	service :=
		NewSessionsService(sessionsStore, newFakeAdminsStore(), nil, nil)

	err := sessionsStore.Upsert(
		context.Background(),
		authx.Session{
			Token:   "doomed",
			AdminID: primitive.NewObjectID(),
			Expires: time.Now().Add(time.Hour).Unix(),
		},
	)
	require.NoError(t, err)

	require.NoError(t, service.Revoke(context.Background(), "doomed"))
	require.Empty(t, sessionsStore.sessions)
	// Revoking again, or revoking a token that never existed, is fine.
	require.NoError(t, service.Revoke(context.Background(), "doomed"))
	require.NoError(t, service.Revoke(context.Background(), "never-existed"))
}

func TestSweepExpired(t *testing.T) {
	sessionsStore := newFakeSessionsStore()
	service :=
		NewSessionsService(sessionsStore, newFakeAdminsStore(), nil, nil)

	require.NoError(
		t,
		sessionsStore.Upsert(
			context.Background(),
			authx.Session{
				Token:   "stale",
				AdminID: primitive.NewObjectID(),
				Expires: time.Now().Add(-time.Hour).Unix(),
			},
		),
	)
	require.NoError(
		t,
		sessionsStore.Upsert(
			context.Background(),
			authx.Session{
				Token:   "live",
				AdminID: primitive.NewObjectID(),
				Expires: time.Now().Add(time.Hour).Unix(),
			},
		),
	)

	count, err := service.SweepExpired(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	require.Len(t, sessionsStore.sessions, 1)
	_, ok := sessionsStore.sessions["live"]
	require.True(t, ok)
}

// unusableTokenVerifier returns a verifier that satisfies the enabled check
// but would reject any token. Start-of-flow tests never verify anything.
func unusableTokenVerifier() *oidc.IDTokenVerifier {
	return oidc.NewVerifier(
		"https://idp.example.com",
		nil,
		&oidc.Config{ClientID: "innoverse"},
	)
}

func TestStartOIDCAuthNotSupported(t *testing.T) {
	service := NewSessionsService(
		newFakeSessionsStore(),
		newFakeAdminsStore(),
		nil,
		nil,
	)
	require.False(t, service.OIDCEnabled())
	_, err := service.StartOIDCAuth()
	require.Error(t, err)
	require.IsType(t, &meta.ErrNotSupported{}, err)
	_, err = service.CompleteOIDCAuth(context.Background(), "somecode")
	require.Error(t, err)
	require.IsType(t, &meta.ErrNotSupported{}, err)
}

func TestStartOIDCAuth(t *testing.T) {
	service := &sessionsService{
		sessionsStore: newFakeSessionsStore(),
		adminsStore:   newFakeAdminsStore(),
		oauth2Config: &oauth2.Config{
			ClientID: "innoverse",
			Endpoint: oauth2.Endpoint{
				AuthURL: "https://idp.example.com/auth",
			},
		},
		oidcTokenVerifier: unusableTokenVerifier(),
	}
	first, err := service.StartOIDCAuth()
	require.NoError(t, err)
	require.NotEmpty(t, first.State)
	require.Contains(t, first.AuthURL, "https://idp.example.com/auth")
	require.Contains(t, first.AuthURL, first.State)

	// Each start of the flow gets its own nonce.
	second, err := service.StartOIDCAuth()
	require.NoError(t, err)
	require.NotEqual(t, first.State, second.State)

	// The nonce exists only in the auth details; nothing was persisted.
	require.Empty(
		t,
		service.sessionsStore.(*fakeSessionsStore).sessions,
	)
}

func TestAdminForUnknownEmail(t *testing.T) {
	sessionsStore := newFakeSessionsStore()
	service := &sessionsService{
		sessionsStore: sessionsStore,
		adminsStore:   newFakeAdminsStore(testAdmin()),
	}
	_, err := service.adminForEmail(
		context.Background(),
		"stranger@elsewhere.example.com",
	)
	require.Error(t, err)
	require.IsType(t, &meta.ErrAuthorization{}, err)
	require.Empty(t, sessionsStore.sessions)
}

func TestAdminForKnownEmail(t *testing.T) {
	admin := testAdmin()
	service := &sessionsService{
		sessionsStore: newFakeSessionsStore(),
		adminsStore:   newFakeAdminsStore(admin),
	}
	found, err := service.adminForEmail(context.Background(), admin.Email)
	require.NoError(t, err)
	require.Equal(t, admin.ID, found.ID)
}

func TestSessionTokensAreUnique(t *testing.T) {
	admin := testAdmin()
	sessionsStore := newFakeSessionsStore()
	service :=
		NewSessionsService(sessionsStore, newFakeAdminsStore(admin), nil, nil)

	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		token, err := service.CreateSession(context.Background(), admin)
		require.NoError(t, err)
		require.True(t, len(token.Value) >= 43)
		require.False(t, strings.ContainsAny(token.Value, "+/="))
		_, collision := seen[token.Value]
		require.False(t, collision)
		seen[token.Value] = struct{}{}
	}
}
