package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/innoverse/admin/apiserver/internal/core"
	"github.com/innoverse/admin/apiserver/internal/lib/restmachinery"
	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/xeipuuv/gojsonschema"
)

type submissionsEndpoints struct {
	*restmachinery.BaseEndpoints
	reviewSchemaLoader gojsonschema.JSONLoader
	service            core.SubmissionsService
}

// NewSubmissionsEndpoints returns REST endpoints for managing Submissions.
func NewSubmissionsEndpoints(
	baseEndpoints *restmachinery.BaseEndpoints,
	service core.SubmissionsService,
) restmachinery.Endpoints {
	return &submissionsEndpoints{
		BaseEndpoints: baseEndpoints,
		reviewSchemaLoader: gojsonschema.NewReferenceLoader(
			"file:///innoverse/schemas/submission-review.json",
		),
		service: service,
	}
}

func (s *submissionsEndpoints) Register(router *mux.Router) {
	// List submissions
	router.HandleFunc(
		"/v2/submissions",
		s.TokenAuthFilter.Decorate(s.list),
	).Methods(http.MethodGet)

	// Submission counts by review state. Registered ahead of the {id} routes
	// so the router doesn't mistake "stats" for a submission id.
	router.HandleFunc(
		"/v2/submissions/stats",
		s.TokenAuthFilter.Decorate(s.stats),
	).Methods(http.MethodGet)

	// Review a submission
	router.HandleFunc(
		"/v2/submissions/{id}/review",
		s.TokenAuthFilter.Decorate(s.review),
	).Methods(http.MethodPut)
}

func (s *submissionsEndpoints) list(w http.ResponseWriter, r *http.Request) {
	s.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return s.service.List(
					r.Context(),
					sdkCore.SubmissionsSelector{
						Status:      r.URL.Query().Get("status"),
						OldestFirst: r.URL.Query().Get("sort") == "oldest",
					},
				)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (s *submissionsEndpoints) stats(w http.ResponseWriter, r *http.Request) {
	s.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return s.service.Stats(r.Context())
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (s *submissionsEndpoints) review(
	w http.ResponseWriter,
	r *http.Request,
) {
	review := sdkCore.SubmissionReview{}
	s.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: s.reviewSchemaLoader,
			ReqBodyObj:          &review,
			EndpointLogic: func() (interface{}, error) {
				return nil, s.service.Review(
					r.Context(),
					mux.Vars(r)["id"],
					review,
				)
			},
			SuccessCode: http.StatusOK,
		},
	)
}
