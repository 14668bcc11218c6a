package core

import (
	"context"
	"crypto/tls"
	"net/http"
	"strconv"
	"time"

	"github.com/innoverse/admin/sdk/internal/restmachinery"
	"github.com/innoverse/admin/sdk/meta"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentTypeCustom marks assignments whose task was created just for the
// assigned user. Deleting such an assignment also deletes the task.
const AssignmentTypeCustom = "custom"

// AssignmentTypeIndividual marks assignments of an existing catalog task to a
// single user.
const AssignmentTypeIndividual = "individual"

// Assignment binds a task to a user.
type Assignment struct {
	meta.TypeMeta `json:",inline" bson:",inline"`
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	TaskID        primitive.ObjectID `json:"taskID" bson:"task_id"`
	UserID        primitive.ObjectID `json:"userID" bson:"user_id"`
	Type          string             `json:"type" bson:"assignment_type"`
	AssignedBy    string             `json:"assignedBy" bson:"assigned_by"`
	Assigned      time.Time          `json:"assigned" bson:"assigned_at"`
}

// AssignmentList is an ordered list of Assignments, most recent first.
type AssignmentList struct {
	meta.TypeMeta `json:",inline"`
	Items         []Assignment `json:"items"`
}

// CustomAssignment bundles a brand-new task with the user it should be
// assigned to.
type CustomAssignment struct {
	meta.TypeMeta `json:",inline"`
	Task          Task   `json:"task"`
	UserID        string `json:"userID"`
}

// AssignmentsClient is the specialized client for managing Assignments.
type AssignmentsClient interface {
	// Create assigns an existing task to a user. Assigning the same task to
	// the same user twice is a conflict.
	Create(ctx context.Context, taskID, userID string) (Assignment, error)
	// CreateCustom creates a new task and assigns it to a user in one
	// operation.
	CreateCustom(context.Context, CustomAssignment) (Assignment, error)
	// ListRecent returns up to limit assignments, most recent first.
	ListRecent(ctx context.Context, limit int64) (AssignmentList, error)
	// Delete removes an assignment. If the assignment is of type "custom" its
	// task is deleted as well.
	Delete(ctx context.Context, id string) error
}

type assignmentsClient struct {
	*restmachinery.BaseClient
}

// NewAssignmentsClient returns a specialized client for managing Assignments.
func NewAssignmentsClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) AssignmentsClient {
	return &assignmentsClient{
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

func (a *assignmentsClient) Create(
	ctx context.Context,
	taskID string,
	userID string,
) (Assignment, error) {
	assignment := Assignment{}
	return assignment, a.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "v2/assignments",
			AuthHeaders: a.BearerTokenAuthHeaders(),
			ReqBodyObj: struct {
				TaskID string `json:"taskID"`
				UserID string `json:"userID"`
			}{
				TaskID: taskID,
				UserID: userID,
			},
			SuccessCode: http.StatusCreated,
			RespObj:     &assignment,
		},
	)
}

func (a *assignmentsClient) CreateCustom(
	ctx context.Context,
	customAssignment CustomAssignment,
) (Assignment, error) {
	assignment := Assignment{}
	return assignment, a.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "v2/assignments/custom",
			AuthHeaders: a.BearerTokenAuthHeaders(),
			ReqBodyObj:  customAssignment,
			SuccessCode: http.StatusCreated,
			RespObj:     &assignment,
		},
	)
}

func (a *assignmentsClient) ListRecent(
	ctx context.Context,
	limit int64,
) (AssignmentList, error) {
	assignments := AssignmentList{}
	queryParams := map[string]string{}
	if limit > 0 {
		queryParams["limit"] = strconv.FormatInt(limit, 10)
	}
	return assignments, a.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/assignments",
			AuthHeaders: a.BearerTokenAuthHeaders(),
			QueryParams: queryParams,
			SuccessCode: http.StatusOK,
			RespObj:     &assignments,
		},
	)
}

func (a *assignmentsClient) Delete(ctx context.Context, id string) error {
	return a.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodDelete,
			Path:        "v2/assignments/" + id,
			AuthHeaders: a.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
		},
	)
}
