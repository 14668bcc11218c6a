package authx

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/innoverse/admin/sdk/internal/restmachinery"
	"github.com/innoverse/admin/sdk/meta"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session represents a time-bounded, renewable proof of a validated
// administrator identity. The persisted document layout is shared with other
// consumers of the admin_sessions collection, so field names are load
// bearing.
type Session struct {
	meta.TypeMeta `json:",inline" bson:",inline"`
	// Token is the opaque bearer token bound to this session. It is never
	// included in API responses.
	Token    string             `json:"-" bson:"token"`
	AdminID  primitive.ObjectID `json:"adminID" bson:"admin_id"`
	Username string             `json:"username" bson:"username"`
	Created  time.Time          `json:"created" bson:"created_at"`
	// Expires is an absolute expiry expressed in epoch seconds.
	Expires int64 `json:"expires" bson:"expires_at"`
}

// Expired returns true if the session's absolute expiry has passed as of the
// provided instant.
func (s Session) Expired(now time.Time) bool {
	return now.Unix() > s.Expires
}

// SessionsClient is the specialized client for managing API Sessions.
type SessionsClient interface {
	// Create authenticates using the provided username and password and, if
	// successful, returns an opaque bearer token for use on subsequent
	// requests.
	Create(ctx context.Context, username, password string) (Token, error)
	// Whoami returns the session bound to the client's current token.
	Whoami(ctx context.Context) (Session, error)
	// Delete revokes the session bound to the client's current token.
	Delete(ctx context.Context) error
}

type sessionsClient struct {
	*restmachinery.BaseClient
}

// NewSessionsClient returns a specialized client for managing API Sessions.
func NewSessionsClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) SessionsClient {
	return &sessionsClient{
		BaseClient: &restmachinery.BaseClient{
			APIAddress: apiAddress,
			APIToken:   apiToken,
			HTTPClient: &http.Client{
				Transport: &http.Transport{
					TLSClientConfig: &tls.Config{
						InsecureSkipVerify: allowInsecure, // nolint: gosec
					},
				},
			},
		},
	}
}

func (s *sessionsClient) Create(
	ctx context.Context,
	username string,
	password string,
) (Token, error) {
	token := Token{}
	return token, s.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "v2/sessions",
			AuthHeaders: s.BasicAuthHeaders(username, password),
			SuccessCode: http.StatusCreated,
			RespObj:     &token,
		},
	)
}

func (s *sessionsClient) Whoami(ctx context.Context) (Session, error) {
	session := Session{}
	return session, s.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/session",
			AuthHeaders: s.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
			RespObj:     &session,
		},
	)
}

func (s *sessionsClient) Delete(ctx context.Context) error {
	return s.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodDelete,
			Path:        "v2/session",
			AuthHeaders: s.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
		},
	)
}
