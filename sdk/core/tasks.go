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

// Task represents a coding task students can be assigned and can submit work
// against.
type Task struct {
	meta.TypeMeta `json:",inline" bson:",inline"`
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description" bson:"description"`
	Track         string             `json:"track" bson:"track"`
	Difficulty    string             `json:"difficulty" bson:"difficulty"`
	Points        int                `json:"points" bson:"points"`
	DueDate       *time.Time         `json:"dueDate,omitempty" bson:"due_date,omitempty"`
	// Type distinguishes regular catalog tasks from one-off "custom" tasks
	// created as part of a custom assignment.
	Type         string     `json:"type" bson:"type"`
	Requirements string     `json:"requirements,omitempty" bson:"requirements,omitempty"`
	IsActive     bool       `json:"isActive" bson:"is_active"`
	CreatedBy    string     `json:"createdBy" bson:"created_by"`
	Created      time.Time  `json:"created" bson:"created_at"`
	Updated      *time.Time `json:"updated,omitempty" bson:"updated_at,omitempty"`
}

// TaskList is an ordered list of Tasks.
type TaskList struct {
	meta.TypeMeta `json:",inline"`
	Items         []Task `json:"items"`
}

// TasksSelector represents useful criteria for selecting Tasks for listing.
type TasksSelector struct {
	Track      string
	Difficulty string
	Active     *bool
}

// TaskActiveStatus encapsulates a task's desired active state.
type TaskActiveStatus struct {
	meta.TypeMeta `json:",inline"`
	Active        bool `json:"active"`
}

// TasksClient is the specialized client for managing Tasks.
type TasksClient interface {
	// Create adds a new task to the catalog.
	Create(context.Context, Task) (Task, error)
	// List returns tasks matching the selector.
	List(context.Context, TasksSelector) (TaskList, error)
	// Get retrieves a single task by id.
	Get(ctx context.Context, id string) (Task, error)
	// SetActive activates or deactivates a task.
	SetActive(ctx context.Context, id string, active bool) error
	// Delete removes a task from the catalog.
	Delete(ctx context.Context, id string) error
}

type tasksClient struct {
	*restmachinery.BaseClient
}

// NewTasksClient returns a specialized client for managing Tasks.
func NewTasksClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) TasksClient {
	return &tasksClient{
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

func (t *tasksClient) Create(ctx context.Context, task Task) (Task, error) {
	createdTask := Task{}
	return createdTask, t.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "v2/tasks",
			AuthHeaders: t.BearerTokenAuthHeaders(),
			ReqBodyObj:  task,
			SuccessCode: http.StatusCreated,
			RespObj:     &createdTask,
		},
	)
}

func (t *tasksClient) List(
	ctx context.Context,
	selector TasksSelector,
) (TaskList, error) {
	tasks := TaskList{}
	queryParams := map[string]string{}
	if selector.Track != "" {
		queryParams["track"] = selector.Track
	}
	if selector.Difficulty != "" {
		queryParams["difficulty"] = selector.Difficulty
	}
	if selector.Active != nil {
		queryParams["active"] = strconv.FormatBool(*selector.Active)
	}
	return tasks, t.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/tasks",
			AuthHeaders: t.BearerTokenAuthHeaders(),
			QueryParams: queryParams,
			SuccessCode: http.StatusOK,
			RespObj:     &tasks,
		},
	)
}

func (t *tasksClient) Get(ctx context.Context, id string) (Task, error) {
	task := Task{}
	return task, t.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/tasks/" + id,
			AuthHeaders: t.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
			RespObj:     &task,
		},
	)
}

func (t *tasksClient) SetActive(
	ctx context.Context,
	id string,
	active bool,
) error {
	return t.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPut,
			Path:        "v2/tasks/" + id + "/active",
			AuthHeaders: t.BearerTokenAuthHeaders(),
			ReqBodyObj: TaskActiveStatus{
				TypeMeta: meta.TypeMeta{
					APIVersion: meta.APIVersion,
					Kind:       "TaskActiveStatus",
				},
				Active: active,
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (t *tasksClient) Delete(ctx context.Context, id string) error {
	return t.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodDelete,
			Path:        "v2/tasks/" + id,
			AuthHeaders: t.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
		},
	)
}
