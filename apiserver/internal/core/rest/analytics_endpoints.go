package rest

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/innoverse/admin/apiserver/internal/core"
	"github.com/innoverse/admin/apiserver/internal/lib/restmachinery"
	"github.com/innoverse/admin/sdk/meta"
)

type analyticsEndpoints struct {
	*restmachinery.BaseEndpoints
	service core.AnalyticsService
}

// NewAnalyticsEndpoints returns REST endpoints for platform analytics.
func NewAnalyticsEndpoints(
	baseEndpoints *restmachinery.BaseEndpoints,
	service core.AnalyticsService,
) restmachinery.Endpoints {
	return &analyticsEndpoints{
		BaseEndpoints: baseEndpoints,
		service:       service,
	}
}

func (a *analyticsEndpoints) Register(router *mux.Router) {
	router.HandleFunc(
		"/v2/analytics/overview",
		a.TokenAuthFilter.Decorate(a.overview),
	).Methods(http.MethodGet)

	router.HandleFunc(
		"/v2/analytics/registrations",
		a.TokenAuthFilter.Decorate(a.registrations),
	).Methods(http.MethodGet)

	router.HandleFunc(
		"/v2/analytics/task-performance",
		a.TokenAuthFilter.Decorate(a.taskPerformance),
	).Methods(http.MethodGet)

	router.HandleFunc(
		"/v2/analytics/points",
		a.TokenAuthFilter.Decorate(a.points),
	).Methods(http.MethodGet)
}

func (a *analyticsEndpoints) overview(
	w http.ResponseWriter,
	r *http.Request,
) {
	a.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return a.service.Overview(r.Context())
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (a *analyticsEndpoints) registrations(
	w http.ResponseWriter,
	r *http.Request,
) {
	a.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return a.service.Registrations(r.Context())
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (a *analyticsEndpoints) taskPerformance(
	w http.ResponseWriter,
	r *http.Request,
) {
	a.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return a.service.TaskPerformance(r.Context())
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (a *analyticsEndpoints) points(w http.ResponseWriter, r *http.Request) {
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
				return a.service.Points(r.Context(), limit)
			},
			SuccessCode: http.StatusOK,
		},
	)
}
