package rest

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/innoverse/admin/apiserver/internal/core"
	"github.com/innoverse/admin/apiserver/internal/lib/restmachinery"
	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
)

type usersEndpoints struct {
	*restmachinery.BaseEndpoints
	service core.UsersService
}

// NewUsersEndpoints returns REST endpoints for browsing Users.
func NewUsersEndpoints(
	baseEndpoints *restmachinery.BaseEndpoints,
	service core.UsersService,
) restmachinery.Endpoints {
	return &usersEndpoints{
		BaseEndpoints: baseEndpoints,
		service:       service,
	}
}

func (u *usersEndpoints) Register(router *mux.Router) {
	// List users
	router.HandleFunc(
		"/v2/users",
		u.TokenAuthFilter.Decorate(u.list),
	).Methods(http.MethodGet)

	// Per-track enrollment counts. Registered ahead of the {id} route so the
	// router doesn't mistake "track-counts" for a user id.
	router.HandleFunc(
		"/v2/users/track-counts",
		u.TokenAuthFilter.Decorate(u.trackCounts),
	).Methods(http.MethodGet)

	// Get a single user
	router.HandleFunc(
		"/v2/users/{id}",
		u.TokenAuthFilter.Decorate(u.get),
	).Methods(http.MethodGet)
}

func (u *usersEndpoints) list(w http.ResponseWriter, r *http.Request) {
	u.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				selector := sdkCore.UsersSelector{
					Track: r.URL.Query().Get("track"),
				}
				if activeStr := r.URL.Query().Get("active"); activeStr != "" {
					active, err := strconv.ParseBool(activeStr)
					if err != nil {
						return nil, meta.NewErrBadRequest(
							`The "active" parameter must be true or false.`,
						)
					}
					selector.Active = &active
				}
				return u.service.List(r.Context(), selector)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (u *usersEndpoints) trackCounts(w http.ResponseWriter, r *http.Request) {
	u.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return u.service.TrackCounts(r.Context())
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (u *usersEndpoints) get(w http.ResponseWriter, r *http.Request) {
	u.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return u.service.Get(r.Context(), mux.Vars(r)["id"])
			},
			SuccessCode: http.StatusOK,
		},
	)
}
