package authx

import (
	"context"
	"time"

	"github.com/coreos/go-oidc"
	"github.com/innoverse/admin/apiserver/internal/lib/crypto"
	"github.com/innoverse/admin/sdk/authx"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// sessionTTL is both the initial lifetime of a new session and the renewed
// lifetime granted by every successful validation.
const sessionTTL = 24 * time.Hour

// OIDCAuthDetails encapsulates what a client needs to begin a delegated
// authentication flow: the URL to send the human to, and the state nonce that
// will come back on the callback. The nonce is never stored server-side.
type OIDCAuthDetails struct {
	AuthURL string
	State   string
}

// SessionsService is the specialized interface for managing Sessions. It's
// decoupled from the underlying technology in use.
type SessionsService interface {
	// Authenticate checks the provided username and password against the
	// admins collection and, if they match, creates a session. All failure
	// modes collapse into a single authentication error so that callers learn
	// nothing about which part of the credentials was wrong.
	Authenticate(
		ctx context.Context,
		username string,
		password string,
	) (authx.Token, error)
	// StartOIDCAuth returns the details needed to begin a delegated
	// authentication flow with the configured OpenID Connect identity
	// provider.
	StartOIDCAuth() (OIDCAuthDetails, error)
	// CompleteOIDCAuth exchanges an authorization code for a verified
	// identity and, if that identity belongs to a registered administrator,
	// creates a session. A verified identity with no corresponding
	// administrator yields an authorization error and NO session.
	CompleteOIDCAuth(ctx context.Context, code string) (authx.Token, error)
	// CreateSession issues a new session for an already-authenticated admin,
	// replacing any live session that admin may have had.
	CreateSession(ctx context.Context, admin authx.Admin) (authx.Token, error)
	// Validate checks a bearer token. An unknown or expired token yields an
	// authentication error; a valid one has its expiry slid forward by the
	// full session lifetime.
	Validate(ctx context.Context, token string) (authx.Session, error)
	// Revoke ends the session bound to the provided token. Revoking a token
	// with no live session is not an error.
	Revoke(ctx context.Context, token string) error
	// SweepExpired removes all sessions whose expiry has passed and returns
	// how many were removed. This is an optimization only; Validate remains
	// authoritative on expiry.
	SweepExpired(ctx context.Context) (int64, error)
	// OIDCEnabled indicates whether a delegated authentication flow is
	// configured.
	OIDCEnabled() bool
}

// SessionsStore is an interface for components that implement Session
// persistence concerns.
type SessionsStore interface {
	// Upsert saves a session, replacing any existing session belonging to the
	// same admin.
	Upsert(ctx context.Context, session authx.Session) error
	// GetByToken retrieves the session bound to the provided token.
	GetByToken(ctx context.Context, token string) (authx.Session, error)
	// Renew replaces the expiry of the session bound to the provided token.
	Renew(ctx context.Context, token string, expires int64) error
	// DeleteByToken removes the session bound to the provided token, if any.
	DeleteByToken(ctx context.Context, token string) error
	// DeleteExpired removes all sessions whose expiry (epoch seconds)
	// precedes the provided instant and returns how many were removed.
	DeleteExpired(ctx context.Context, before int64) (int64, error)
}

type sessionsService struct {
	sessionsStore     SessionsStore
	adminsStore       AdminsStore
	oauth2Config      *oauth2.Config
	oidcTokenVerifier *oidc.IDTokenVerifier
}

// NewSessionsService returns a specialized interface for managing Sessions.
// oauth2Config and oidcTokenVerifier may both be nil, in which case the
// delegated authentication flow is unsupported.
func NewSessionsService(
	sessionsStore SessionsStore,
	adminsStore AdminsStore,
	oauth2Config *oauth2.Config,
	oidcTokenVerifier *oidc.IDTokenVerifier,
) SessionsService {
	return &sessionsService{
		sessionsStore:     sessionsStore,
		adminsStore:       adminsStore,
		oauth2Config:      oauth2Config,
		oidcTokenVerifier: oidcTokenVerifier,
	}
}

func (s *sessionsService) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (authx.Token, error) {
	admin, err := s.adminsStore.GetByCredentials(
		ctx,
		username,
		crypto.ShortSHA(username, password),
	)
	if err != nil {
		if _, ok := errors.Cause(err).(*meta.ErrNotFound); ok {
			return authx.Token{}, meta.NewErrAuthentication(
				"the username and password provided do not match any known " +
					"administrator",
			)
		}
		return authx.Token{}, errors.Wrapf(
			err,
			"error searching for admin %q",
			username,
		)
	}
	return s.CreateSession(ctx, admin)
}

func (s *sessionsService) StartOIDCAuth() (OIDCAuthDetails, error) {
	if s.oauth2Config == nil || s.oidcTokenVerifier == nil {
		return OIDCAuthDetails{}, meta.NewErrNotSupported(
			"This server does not support delegated authentication via " +
				"OpenID Connect.",
		)
	}
	state := crypto.NewToken(256)
	return OIDCAuthDetails{
		State:   state,
		AuthURL: s.oauth2Config.AuthCodeURL(state),
	}, nil
}

func (s *sessionsService) CompleteOIDCAuth(
	ctx context.Context,
	code string,
) (authx.Token, error) {
	if s.oauth2Config == nil || s.oidcTokenVerifier == nil {
		return authx.Token{}, meta.NewErrNotSupported(
			"This server does not support delegated authentication via " +
				"OpenID Connect.",
		)
	}
	oauth2Token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return authx.Token{}, errors.Wrap(
			err,
			"error exchanging authorization code for OAuth2 token",
		)
	}
	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return authx.Token{}, errors.New(
			"OAuth2 token did not include an OpenID Connect identity token",
		)
	}
	idToken, err := s.oidcTokenVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		return authx.Token{}, errors.Wrap(
			err,
			"error verifying OpenID Connect identity token",
		)
	}
	claims := struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}{}
	if err = idToken.Claims(&claims); err != nil {
		return authx.Token{}, errors.Wrap(
			err,
			"error decoding OpenID Connect identity token claims",
		)
	}
	admin, err := s.adminForEmail(ctx, claims.Email)
	if err != nil {
		return authx.Token{}, err
	}
	return s.CreateSession(ctx, admin)
}

func (s *sessionsService) adminForEmail(
	ctx context.Context,
	email string,
) (authx.Admin, error) {
	admin, err := s.adminsStore.GetByEmail(ctx, email)
	if err != nil {
		if _, ok := errors.Cause(err).(*meta.ErrNotFound); ok {
			// The identity is verified, but it isn't one of ours. No session
			// comes into existence here.
			return authx.Admin{}, meta.NewErrAuthorization()
		}
		return authx.Admin{}, errors.Wrapf(
			err,
			"error searching for admin with email %q",
			email,
		)
	}
	return admin, nil
}

func (s *sessionsService) CreateSession(
	ctx context.Context,
	admin authx.Admin,
) (authx.Token, error) {
	token := crypto.NewToken(256)
	now := time.Now().UTC()
	session := authx.Session{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "Session",
		},
		Token:    token,
		AdminID:  admin.ID,
		Username: admin.Username,
		Created:  now,
		Expires:  now.Add(sessionTTL).Unix(),
	}
	if err := s.sessionsStore.Upsert(ctx, session); err != nil {
		return authx.Token{}, errors.Wrapf(
			err,
			"error storing session for admin %q",
			admin.Username,
		)
	}
	// Login bookkeeping is a separate write. If it fails the session already
	// exists and remains usable, so the failure surfaces but doesn't undo the
	// login.
	if err := s.adminsStore.UpdateLoginStats(ctx, admin.ID, now); err != nil {
		return authx.Token{}, errors.Wrapf(
			err,
			"error updating login stats for admin %q",
			admin.Username,
		)
	}
	return authx.NewToken(token), nil
}

func (s *sessionsService) Validate(
	ctx context.Context,
	token string,
) (authx.Session, error) {
	if token == "" {
		return authx.Session{}, meta.NewErrAuthentication(
			"the request did not include a session token",
		)
	}
	session, err := s.sessionsStore.GetByToken(ctx, token)
	if err != nil {
		if _, ok := errors.Cause(err).(*meta.ErrNotFound); ok {
			// Unknown and expired tokens are indistinguishable to callers.
			return authx.Session{}, meta.NewErrAuthentication(
				"the session token is invalid or expired",
			)
		}
		return authx.Session{}, errors.Wrap(err, "error retrieving session")
	}
	now := time.Now().UTC()
	if session.Expired(now) {
		if err = s.sessionsStore.DeleteByToken(ctx, token); err != nil {
			return authx.Session{}, errors.Wrap(
				err,
				"error deleting expired session",
			)
		}
		return authx.Session{}, meta.NewErrAuthentication(
			"the session token is invalid or expired",
		)
	}
	// Every successful validation slides the expiry forward by the full
	// session lifetime.
	expires := now.Add(sessionTTL).Unix()
	if err = s.sessionsStore.Renew(ctx, token, expires); err != nil {
		return authx.Session{}, errors.Wrap(err, "error renewing session")
	}
	session.Expires = expires
	return session, nil
}

func (s *sessionsService) Revoke(ctx context.Context, token string) error {
	if err := s.sessionsStore.DeleteByToken(ctx, token); err != nil {
		return errors.Wrap(err, "error deleting session")
	}
	return nil
}

func (s *sessionsService) SweepExpired(ctx context.Context) (int64, error) {
	count, err := s.sessionsStore.DeleteExpired(ctx, time.Now().UTC().Unix())
	if err != nil {
		return 0, errors.Wrap(err, "error deleting expired sessions")
	}
	return count, nil
}

func (s *sessionsService) OIDCEnabled() bool {
	return s.oauth2Config != nil && s.oidcTokenVerifier != nil
}
