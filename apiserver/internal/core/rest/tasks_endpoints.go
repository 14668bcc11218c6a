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

type tasksEndpoints struct {
	*restmachinery.BaseEndpoints
	taskSchemaLoader       gojsonschema.JSONLoader
	taskActiveSchemaLoader gojsonschema.JSONLoader
	service                core.TasksService
}

// NewTasksEndpoints returns REST endpoints for managing Tasks.
func NewTasksEndpoints(
	baseEndpoints *restmachinery.BaseEndpoints,
	service core.TasksService,
) restmachinery.Endpoints {
	return &tasksEndpoints{
		BaseEndpoints: baseEndpoints,
		taskSchemaLoader: gojsonschema.NewReferenceLoader(
			"file:///innoverse/schemas/task.json",
		),
		taskActiveSchemaLoader: gojsonschema.NewReferenceLoader(
			"file:///innoverse/schemas/task-active.json",
		),
		service: service,
	}
}

func (t *tasksEndpoints) Register(router *mux.Router) {
	// Create a task
	router.HandleFunc(
		"/v2/tasks",
		t.TokenAuthFilter.Decorate(t.create),
	).Methods(http.MethodPost)

	// List tasks
	router.HandleFunc(
		"/v2/tasks",
		t.TokenAuthFilter.Decorate(t.list),
	).Methods(http.MethodGet)

	// Get a single task
	router.HandleFunc(
		"/v2/tasks/{id}",
		t.TokenAuthFilter.Decorate(t.get),
	).Methods(http.MethodGet)

	// Activate or deactivate a task
	router.HandleFunc(
		"/v2/tasks/{id}/active",
		t.TokenAuthFilter.Decorate(t.setActive),
	).Methods(http.MethodPut)

	// Delete a task
	router.HandleFunc(
		"/v2/tasks/{id}",
		t.TokenAuthFilter.Decorate(t.delete),
	).Methods(http.MethodDelete)
}

func (t *tasksEndpoints) create(w http.ResponseWriter, r *http.Request) {
	task := sdkCore.Task{}
	t.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: t.taskSchemaLoader,
			ReqBodyObj:          &task,
			EndpointLogic: func() (interface{}, error) {
				if session, ok := authx.SessionFromContext(
					r.Context(),
				); ok {
					task.CreatedBy = session.Username
				}
				return t.service.Create(r.Context(), task)
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (t *tasksEndpoints) list(w http.ResponseWriter, r *http.Request) {
	t.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				selector := sdkCore.TasksSelector{
					Track:      r.URL.Query().Get("track"),
					Difficulty: r.URL.Query().Get("difficulty"),
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
				return t.service.List(r.Context(), selector)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (t *tasksEndpoints) get(w http.ResponseWriter, r *http.Request) {
	t.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return t.service.Get(r.Context(), mux.Vars(r)["id"])
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (t *tasksEndpoints) setActive(w http.ResponseWriter, r *http.Request) {
	status := sdkCore.TaskActiveStatus{}
	t.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: t.taskActiveSchemaLoader,
			ReqBodyObj:          &status,
			EndpointLogic: func() (interface{}, error) {
				return nil, t.service.SetActive(
					r.Context(),
					mux.Vars(r)["id"],
					status.Active,
				)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (t *tasksEndpoints) delete(w http.ResponseWriter, r *http.Request) {
	t.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return nil, t.service.Delete(r.Context(), mux.Vars(r)["id"])
			},
			SuccessCode: http.StatusOK,
		},
	)
}
