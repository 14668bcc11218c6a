package rest

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/innoverse/admin/apiserver/internal/authx"
	"github.com/innoverse/admin/apiserver/internal/lib/restmachinery"
	"github.com/innoverse/admin/sdk/meta"
)

// oidcStateCookieName names the short-lived, HttpOnly cookie that carries the
// state nonce between the start of a delegated authentication flow and its
// callback. The nonce lives nowhere else.
const oidcStateCookieName = "auth_state"

type sessionsEndpoints struct {
	*restmachinery.BaseEndpoints
	service authx.SessionsService
}

// NewSessionsEndpoints returns REST endpoints for managing Sessions.
func NewSessionsEndpoints(
	baseEndpoints *restmachinery.BaseEndpoints,
	service authx.SessionsService,
) restmachinery.Endpoints {
	return &sessionsEndpoints{
		BaseEndpoints: baseEndpoints,
		service:       service,
	}
}

func (s *sessionsEndpoints) Register(router *mux.Router) {
	// Log in with a username and password
	router.HandleFunc(
		"/v2/sessions",
		s.create,
	).Methods(http.MethodPost)

	// Who am I?
	router.HandleFunc(
		"/v2/session",
		s.TokenAuthFilter.Decorate(s.whoami),
	).Methods(http.MethodGet)

	// Log out
	router.HandleFunc(
		"/v2/session",
		s.TokenAuthFilter.Decorate(s.delete),
	).Methods(http.MethodDelete)

	// Begin delegated authentication
	router.HandleFunc(
		"/v2/session/auth",
		s.startOIDCAuth,
	).Methods(http.MethodGet)

	// Complete delegated authentication
	router.HandleFunc(
		"/v2/session/auth/callback",
		s.completeOIDCAuth,
	).Methods(http.MethodGet)
}

func (s *sessionsEndpoints) create(w http.ResponseWriter, r *http.Request) {
	s.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				username, password, ok := r.BasicAuth()
				if !ok {
					return nil, meta.NewErrBadRequest(
						"The request to create a session did not include a " +
							"basic auth header.",
					)
				}
				return s.service.Authenticate(r.Context(), username, password)
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (s *sessionsEndpoints) whoami(w http.ResponseWriter, r *http.Request) {
	s.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				session, ok := authx.SessionFromContext(r.Context())
				if !ok {
					return nil, meta.NewErrAuthentication(
						"could not authenticate the request",
					)
				}
				return session, nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (s *sessionsEndpoints) delete(w http.ResponseWriter, r *http.Request) {
	s.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				session, ok := authx.SessionFromContext(r.Context())
				if !ok {
					return nil, meta.NewErrAuthentication(
						"could not authenticate the request",
					)
				}
				return nil, s.service.Revoke(r.Context(), session.Token)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (s *sessionsEndpoints) startOIDCAuth(
	w http.ResponseWriter,
	r *http.Request,
) {
	s.ServeHumanRequest(
		restmachinery.HumanRequest{
			W: w,
			EndpointLogic: func() (interface{}, error) {
				authDetails, err := s.service.StartOIDCAuth()
				if err != nil {
					return nil, err
				}
				// The browser carries the nonce back to us on the callback.
				// It is never written anywhere server-side.
				http.SetCookie(
					w,
					&http.Cookie{
						Name:     oidcStateCookieName,
						Value:    authDetails.State,
						Path:     "/v2/session/auth",
						MaxAge:   600,
						HttpOnly: true,
					},
				)
				w.Header().Set("Location", authDetails.AuthURL)
				return nil, nil
			},
			SuccessCode: http.StatusFound,
		},
	)
}

func (s *sessionsEndpoints) completeOIDCAuth(
	w http.ResponseWriter,
	r *http.Request,
) {
	s.ServeHumanRequest(
		restmachinery.HumanRequest{
			W: w,
			EndpointLogic: func() (interface{}, error) {
				state := r.URL.Query().Get("state")
				code := r.URL.Query().Get("code")
				if state == "" || code == "" {
					return nil, meta.NewErrBadRequest(
						`The authentication completion request lacked one or ` +
							`both of the "state" and "code" parameters.`,
					)
				}
				cookie, err := r.Cookie(oidcStateCookieName)
				if err != nil || subtle.ConstantTimeCompare(
					[]byte(cookie.Value),
					[]byte(state),
				) != 1 {
					return nil, meta.NewErrAuthentication(
						"the authentication completion request did not " +
							"originate from a flow this server started",
					)
				}
				token, err := s.service.CompleteOIDCAuth(r.Context(), code)
				if err != nil {
					return nil, err
				}
				// The nonce is single-use.
				http.SetCookie(
					w,
					&http.Cookie{
						Name:     oidcStateCookieName,
						Value:    "",
						Path:     "/v2/session/auth",
						MaxAge:   -1,
						HttpOnly: true,
					},
				)
				return fmt.Sprintf(
					"You're now authenticated.\n\nYour API token is:\n\n"+
						"%s\n\nProvide it to the CLI using "+
						"\"inno-admin login --token\".\n",
					token.Value,
				), nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}
