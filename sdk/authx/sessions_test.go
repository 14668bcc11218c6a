package authx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/innoverse/admin/sdk/meta"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testAPIToken = "thisisafaketoken"

func TestNewSessionsClient(t *testing.T) {
	client := NewSessionsClient("http://localhost", testAPIToken, false)
	require.IsType(t, &sessionsClient{}, client)
}

func TestSessionsClientCreate(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/v2/sessions", r.URL.Path)
				username, password, ok := r.BasicAuth()
				require.True(t, ok)
				require.Equal(t, "tony", username)
				require.Equal(t, "letmein", password)
				bodyBytes, err := json.Marshal(NewToken(testAPIToken))
				require.NoError(t, err)
				w.WriteHeader(http.StatusCreated)
				w.Write(bodyBytes) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := NewSessionsClient(server.URL, "", false)
	token, err := client.Create(context.Background(), "tony", "letmein")
	require.NoError(t, err)
	require.Equal(t, testAPIToken, token.Value)
}

func TestSessionsClientCreateBadCredentials(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				bodyBytes, err := json.Marshal(
					meta.NewErrAuthentication("could not authenticate the request"),
				)
				require.NoError(t, err)
				w.WriteHeader(http.StatusUnauthorized)
				w.Write(bodyBytes) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := NewSessionsClient(server.URL, "", false)
	_, err := client.Create(context.Background(), "tony", "wrong")
	require.Error(t, err)
	require.IsType(t, &meta.ErrAuthentication{}, err)
}

func TestSessionsClientWhoami(t *testing.T) {
	testSession := Session{
		AdminID:  primitive.NewObjectID(),
		Username: "tony",
		Created:  time.Now().UTC().Truncate(time.Second),
		Expires:  time.Now().Add(time.Hour).Unix(),
	}
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/v2/session", r.URL.Path)
				require.Equal(
					t,
					"Bearer "+testAPIToken,
					r.Header.Get("Authorization"),
				)
				bodyBytes, err := json.Marshal(testSession)
				require.NoError(t, err)
				w.Write(bodyBytes) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := NewSessionsClient(server.URL, testAPIToken, false)
	session, err := client.Whoami(context.Background())
	require.NoError(t, err)
	require.Equal(t, testSession.AdminID, session.AdminID)
	require.Equal(t, testSession.Username, session.Username)
	require.Equal(t, testSession.Expires, session.Expires)
}

func TestSessionsClientDelete(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(t, "/v2/session", r.URL.Path)
				require.Equal(
					t,
					"Bearer "+testAPIToken,
					r.Header.Get("Authorization"),
				)
				w.WriteHeader(http.StatusOK)
			},
		),
	)
	defer server.Close()
	client := NewSessionsClient(server.URL, testAPIToken, false)
	err := client.Delete(context.Background())
	require.NoError(t, err)
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	session := Session{Expires: now.Add(time.Minute).Unix()}
	require.False(t, session.Expired(now))
	require.True(t, session.Expired(now.Add(2*time.Minute)))
}
