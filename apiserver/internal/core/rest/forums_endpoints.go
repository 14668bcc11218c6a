package rest

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/innoverse/admin/apiserver/internal/core"
	"github.com/innoverse/admin/apiserver/internal/lib/restmachinery"
	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/xeipuuv/gojsonschema"
)

type forumsEndpoints struct {
	*restmachinery.BaseEndpoints
	forumSchemaLoader gojsonschema.JSONLoader
	service           core.ForumsService
}

// NewForumsEndpoints returns REST endpoints for managing Forums.
func NewForumsEndpoints(
	baseEndpoints *restmachinery.BaseEndpoints,
	service core.ForumsService,
) restmachinery.Endpoints {
	return &forumsEndpoints{
		BaseEndpoints: baseEndpoints,
		forumSchemaLoader: gojsonschema.NewReferenceLoader(
			"file:///innoverse/schemas/forum.json",
		),
		service: service,
	}
}

func (f *forumsEndpoints) Register(router *mux.Router) {
	// Create a forum
	router.HandleFunc(
		"/v2/forums",
		f.TokenAuthFilter.Decorate(f.create),
	).Methods(http.MethodPost)

	// List forums
	router.HandleFunc(
		"/v2/forums",
		f.TokenAuthFilter.Decorate(f.list),
	).Methods(http.MethodGet)

	// Delete a forum and its comments
	router.HandleFunc(
		"/v2/forums/{id}",
		f.TokenAuthFilter.Decorate(f.delete),
	).Methods(http.MethodDelete)

	// Recent comments in a forum
	router.HandleFunc(
		"/v2/forums/{id}/comments",
		f.TokenAuthFilter.Decorate(f.recentComments),
	).Methods(http.MethodGet)
}

func (f *forumsEndpoints) create(w http.ResponseWriter, r *http.Request) {
	forum := sdkCore.Forum{}
	f.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: f.forumSchemaLoader,
			ReqBodyObj:          &forum,
			EndpointLogic: func() (interface{}, error) {
				return f.service.Create(r.Context(), forum)
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (f *forumsEndpoints) list(w http.ResponseWriter, r *http.Request) {
	f.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return f.service.List(r.Context())
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (f *forumsEndpoints) delete(w http.ResponseWriter, r *http.Request) {
	f.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return nil, f.service.Delete(r.Context(), mux.Vars(r)["id"])
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (f *forumsEndpoints) recentComments(
	w http.ResponseWriter,
	r *http.Request,
) {
	f.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				var limit int64
				if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
					var err error
					if limit, err =
						strconv.ParseInt(limitStr, 10, 64); err != nil {
						return nil, meta.NewErrBadRequest(
							`The "limit" parameter must be an integer.`,
						)
					}
				}
				return f.service.RecentComments(
					r.Context(),
					mux.Vars(r)["id"],
					limit,
				)
			},
			SuccessCode: http.StatusOK,
		},
	)
}
