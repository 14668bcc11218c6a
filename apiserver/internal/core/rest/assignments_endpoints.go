package rest

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/innoverse/admin/apiserver/internal/authx"
	"github.com/innoverse/admin/apiserver/internal/core"
	"github.com/innoverse/admin/apiserver/internal/lib/restmachinery"
	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/xeipuuv/gojsonschema"
)

type assignmentsEndpoints struct {
	*restmachinery.BaseEndpoints
	assignmentSchemaLoader       gojsonschema.JSONLoader
	customAssignmentSchemaLoader gojsonschema.JSONLoader
	service                      core.AssignmentsService
}

// NewAssignmentsEndpoints returns REST endpoints for managing Assignments.
func NewAssignmentsEndpoints(
	baseEndpoints *restmachinery.BaseEndpoints,
	service core.AssignmentsService,
) restmachinery.Endpoints {
	return &assignmentsEndpoints{
		BaseEndpoints: baseEndpoints,
		assignmentSchemaLoader: gojsonschema.NewReferenceLoader(
			"file:///innoverse/schemas/assignment.json",
		),
		customAssignmentSchemaLoader: gojsonschema.NewReferenceLoader(
			"file:///innoverse/schemas/custom-assignment.json",
		),
		service: service,
	}
}

func (a *assignmentsEndpoints) Register(router *mux.Router) {
	// Assign an existing task to a user
	router.HandleFunc(
		"/v2/assignments",
		a.TokenAuthFilter.Decorate(a.create),
	).Methods(http.MethodPost)

	// Create a new task and assign it in one go
	router.HandleFunc(
		"/v2/assignments/custom",
		a.TokenAuthFilter.Decorate(a.createCustom),
	).Methods(http.MethodPost)

	// List recent assignments
	router.HandleFunc(
		"/v2/assignments",
		a.TokenAuthFilter.Decorate(a.listRecent),
	).Methods(http.MethodGet)

	// Delete an assignment
	router.HandleFunc(
		"/v2/assignments/{id}",
		a.TokenAuthFilter.Decorate(a.delete),
	).Methods(http.MethodDelete)
}

func (a *assignmentsEndpoints) create(
	w http.ResponseWriter,
	r *http.Request,
) {
	ref := struct {
		TaskID string `json:"taskID"`
		UserID string `json:"userID"`
	}{}
	a.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: a.assignmentSchemaLoader,
			ReqBodyObj:          &ref,
			EndpointLogic: func() (interface{}, error) {
				session, _ := authx.SessionFromContext(r.Context())
				return a.service.Create(
					r.Context(),
					ref.TaskID,
					ref.UserID,
					session.Username,
				)
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (a *assignmentsEndpoints) createCustom(
	w http.ResponseWriter,
	r *http.Request,
) {
	customAssignment := sdkCore.CustomAssignment{}
	a.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: a.customAssignmentSchemaLoader,
			ReqBodyObj:          &customAssignment,
			EndpointLogic: func() (interface{}, error) {
				session, _ := authx.SessionFromContext(r.Context())
				return a.service.CreateCustom(
					r.Context(),
					customAssignment.Task,
					customAssignment.UserID,
					session.Username,
				)
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (a *assignmentsEndpoints) listRecent(
	w http.ResponseWriter,
	r *http.Request,
) {
	a.ServeRequest(
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
				return a.service.ListRecent(r.Context(), limit)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (a *assignmentsEndpoints) delete(
	w http.ResponseWriter,
	r *http.Request,
) {
	a.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return nil, a.service.Delete(r.Context(), mux.Vars(r)["id"])
			},
			SuccessCode: http.StatusOK,
		},
	)
}
