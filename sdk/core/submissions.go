package core

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/innoverse/admin/sdk/internal/restmachinery"
	"github.com/innoverse/admin/sdk/meta"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission review outcomes.
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// Submission represents a student's work handed in against a task.
type Submission struct {
	meta.TypeMeta `json:",inline" bson:",inline"`
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	TaskID        primitive.ObjectID `json:"taskID" bson:"task_id"`
	UserID        primitive.ObjectID `json:"userID" bson:"user_id"`
	Content       string             `json:"content" bson:"content"`
	Status        string             `json:"status" bson:"status"`
	Submitted     time.Time          `json:"submitted" bson:"submitted_at"`
	Reviewed      *time.Time         `json:"reviewed,omitempty" bson:"reviewed_at,omitempty"`
	Feedback      string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
	PointsAwarded int                `json:"pointsAwarded" bson:"points_awarded"`
}

// SubmissionList is an ordered list of Submissions.
type SubmissionList struct {
	meta.TypeMeta `json:",inline"`
	Items         []Submission `json:"items"`
}

// SubmissionsSelector represents useful criteria for selecting Submissions
// for listing.
type SubmissionsSelector struct {
	// Status, if non-empty, selects only submissions in that review state.
	Status string
	// OldestFirst reverses the default newest-first sort on submitted_at.
	OldestFirst bool
}

// SubmissionReview encapsulates a reviewer's verdict on a submission.
type SubmissionReview struct {
	meta.TypeMeta `json:",inline"`
	Status        string `json:"status"`
	Points        int    `json:"points"`
	Feedback      string `json:"feedback,omitempty"`
}

// SubmissionStats reports submission counts by review state.
type SubmissionStats struct {
	meta.TypeMeta `json:",inline"`
	Total         int64 `json:"total"`
	Pending       int64 `json:"pending"`
	Approved      int64 `json:"approved"`
	Rejected      int64 `json:"rejected"`
}

// SubmissionsClient is the specialized client for managing Submissions.
type SubmissionsClient interface {
	// List returns submissions matching the selector.
	List(context.Context, SubmissionsSelector) (SubmissionList, error)
	// Stats returns submission counts by review state.
	Stats(context.Context) (SubmissionStats, error)
	// Review records a verdict on a submission. Approval awards points to the
	// submitting user.
	Review(ctx context.Context, id string, review SubmissionReview) error
}

type submissionsClient struct {
	*restmachinery.BaseClient
}

// NewSubmissionsClient returns a specialized client for managing Submissions.
func NewSubmissionsClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) SubmissionsClient {
	return &submissionsClient{
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

func (s *submissionsClient) List(
	ctx context.Context,
	selector SubmissionsSelector,
) (SubmissionList, error) {
	submissions := SubmissionList{}
	queryParams := map[string]string{}
	if selector.Status != "" {
		queryParams["status"] = selector.Status
	}
	if selector.OldestFirst {
		queryParams["sort"] = "oldest"
	}
	return submissions, s.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/submissions",
			AuthHeaders: s.BearerTokenAuthHeaders(),
			QueryParams: queryParams,
			SuccessCode: http.StatusOK,
			RespObj:     &submissions,
		},
	)
}

func (s *submissionsClient) Stats(
	ctx context.Context,
) (SubmissionStats, error) {
	stats := SubmissionStats{}
	return stats, s.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/submissions/stats",
			AuthHeaders: s.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
			RespObj:     &stats,
		},
	)
}

func (s *submissionsClient) Review(
	ctx context.Context,
	id string,
	review SubmissionReview,
) error {
	return s.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPut,
			Path:        "v2/submissions/" + id + "/review",
			AuthHeaders: s.BearerTokenAuthHeaders(),
			ReqBodyObj:  review,
			SuccessCode: http.StatusOK,
		},
	)
}
