package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/innoverse/admin/apiserver/internal/authx"
	sdkAuthx "github.com/innoverse/admin/sdk/authx"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/stretchr/testify/require"
)

func TestTokenAuthFilterNoHeader(t *testing.T) {
	filter := NewTokenAuthFilter(
		func(context.Context, string) (sdkAuthx.Session, error) {
			require.Fail(t, "validate should not have been invoked")
			return sdkAuthx.Session{}, nil
		},
	)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	handlerCalled := false
	filter.Decorate(func(http.ResponseWriter, *http.Request) {
		handlerCalled = true
	})(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.False(t, handlerCalled)
}

func TestTokenAuthFilterMalformedHeader(t *testing.T) {
	filter := NewTokenAuthFilter(
		func(context.Context, string) (sdkAuthx.Session, error) {
			require.Fail(t, "validate should not have been invoked")
			return sdkAuthx.Session{}, nil
		},
	)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Digest foo")
	rr := httptest.NewRecorder()
	handlerCalled := false
	filter.Decorate(func(http.ResponseWriter, *http.Request) {
		handlerCalled = true
	})(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.False(t, handlerCalled)
}

func TestTokenAuthFilterInvalidToken(t *testing.T) {
	filter := NewTokenAuthFilter(
		func(context.Context, string) (sdkAuthx.Session, error) {
			return sdkAuthx.Session{},
				meta.NewErrAuthentication(
					"the session token is invalid or expired",
				)
		},
	)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer bogus")
	rr := httptest.NewRecorder()
	handlerCalled := false
	filter.Decorate(func(http.ResponseWriter, *http.Request) {
		handlerCalled = true
	})(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.False(t, handlerCalled)
}

func TestTokenAuthFilterValidToken(t *testing.T) {
	testSession := sdkAuthx.Session{
		Token:    "goodtoken",
		Username: "tony",
		Expires:  time.Now().Add(time.Hour).Unix(),
	}
	filter := NewTokenAuthFilter(
		func(_ context.Context, token string) (sdkAuthx.Session, error) {
			require.Equal(t, "goodtoken", token)
			return testSession, nil
		},
	)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer goodtoken")
	rr := httptest.NewRecorder()
	handlerCalled := false
	filter.Decorate(func(_ http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		session, ok := authx.SessionFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, "tony", session.Username)
	})(rr, req)
	require.True(t, handlerCalled)
}
