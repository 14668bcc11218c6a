package rest

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/innoverse/admin/apiserver/internal/authx"
	"github.com/innoverse/admin/apiserver/internal/lib/restmachinery"
	sdkAuthx "github.com/innoverse/admin/sdk/authx"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
)

type tokenAuthFilter struct {
	validate func(
		ctx context.Context,
		token string,
	) (sdkAuthx.Session, error)
}

// NewTokenAuthFilter returns a restmachinery.Filter that authenticates
// requests using a bearer token. Every request that passes through it
// implicitly renews the session bound to its token.
func NewTokenAuthFilter(
	validate func(
		ctx context.Context,
		token string,
	) (sdkAuthx.Session, error),
) restmachinery.Filter {
	return &tokenAuthFilter{
		validate: validate,
	}
}

func (t *tokenAuthFilter) Decorate(handle http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		headerValue := r.Header.Get("Authorization")
		if headerValue == "" {
			t.writeError(
				w,
				http.StatusUnauthorized,
				meta.NewErrAuthentication(
					"the request did not include a session token",
				),
			)
			return
		}
		headerValueParts := strings.SplitN(headerValue, " ", 2)
		if len(headerValueParts) != 2 || headerValueParts[0] != "Bearer" {
			t.writeError(
				w,
				http.StatusUnauthorized,
				meta.NewErrAuthentication(
					"the request's Authorization header was malformed",
				),
			)
			return
		}
		session, err := t.validate(r.Context(), headerValueParts[1])
		if err != nil {
			if e, ok := errors.Cause(err).(*meta.ErrAuthentication); ok {
				t.writeError(w, http.StatusUnauthorized, e)
				return
			}
			log.Println(err)
			t.writeError(
				w,
				http.StatusInternalServerError,
				meta.NewErrInternalServer(),
			)
			return
		}
		ctx := authx.ContextWithSession(r.Context(), session)
		handle(w, r.WithContext(ctx))
	}
}

func (t *tokenAuthFilter) writeError(
	w http.ResponseWriter,
	statusCode int,
	errObj interface{},
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	responseBody, err := json.Marshal(errObj)
	if err != nil {
		log.Println(errors.Wrap(err, "error marshaling error response body"))
	}
	if _, err := w.Write(responseBody); err != nil {
		log.Println(errors.Wrap(err, "error writing error response body"))
	}
}
