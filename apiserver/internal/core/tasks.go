package core

import (
	"context"
	"time"

	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskTypeRegular is the type given to catalog tasks created through the
// tasks API. Custom tasks are created through the assignments API.
const TaskTypeRegular = "regular"

// TasksService is the specialized interface for managing Tasks.
type TasksService interface {
	// Create adds a new task to the catalog.
	Create(ctx context.Context, task sdkCore.Task) (sdkCore.Task, error)
	// List returns tasks matching the selector, newest first.
	List(
		ctx context.Context,
		selector sdkCore.TasksSelector,
	) (sdkCore.TaskList, error)
	// Get retrieves a single task by id.
	Get(ctx context.Context, id string) (sdkCore.Task, error)
	// SetActive activates or deactivates a task.
	SetActive(ctx context.Context, id string, active bool) error
	// Delete removes a task from the catalog.
	Delete(ctx context.Context, id string) error
}

// TasksStore is an interface for components that implement Task persistence
// concerns.
type TasksStore interface {
	Create(ctx context.Context, task sdkCore.Task) error
	List(
		ctx context.Context,
		selector sdkCore.TasksSelector,
	) (sdkCore.TaskList, error)
	Get(ctx context.Context, id primitive.ObjectID) (sdkCore.Task, error)
	SetActive(
		ctx context.Context,
		id primitive.ObjectID,
		active bool,
		when time.Time,
	) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type tasksService struct {
	tasksStore TasksStore
}

// NewTasksService returns a specialized interface for managing Tasks.
func NewTasksService(tasksStore TasksStore) TasksService {
	return &tasksService{
		tasksStore: tasksStore,
	}
}

func (t *tasksService) Create(
	ctx context.Context,
	task sdkCore.Task,
) (sdkCore.Task, error) {
	task.TypeMeta = meta.TypeMeta{
		APIVersion: meta.APIVersion,
		Kind:       "Task",
	}
	task.ID = primitive.NewObjectID()
	if task.Type == "" {
		task.Type = TaskTypeRegular
	}
	task.Created = time.Now().UTC()
	task.Updated = nil
	if err := t.tasksStore.Create(ctx, task); err != nil {
		return task, errors.Wrapf(
			err,
			"error storing new task %q",
			task.Title,
		)
	}
	return task, nil
}

func (t *tasksService) List(
	ctx context.Context,
	selector sdkCore.TasksSelector,
) (sdkCore.TaskList, error) {
	tasks, err := t.tasksStore.List(ctx, selector)
	if err != nil {
		return tasks, errors.Wrap(err, "error retrieving tasks from store")
	}
	return tasks, nil
}

func (t *tasksService) Get(
	ctx context.Context,
	id string,
) (sdkCore.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return sdkCore.Task{}, meta.NewErrNotFound("Task", id)
	}
	task, err := t.tasksStore.Get(ctx, objectID)
	if err != nil {
		return task, errors.Wrapf(
			err,
			"error retrieving task %q from store",
			id,
		)
	}
	return task, nil
}

func (t *tasksService) SetActive(
	ctx context.Context,
	id string,
	active bool,
) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return meta.NewErrNotFound("Task", id)
	}
	if err := t.tasksStore.SetActive(
		ctx,
		objectID,
		active,
		time.Now().UTC(),
	); err != nil {
		return errors.Wrapf(err, "error updating task %q active state", id)
	}
	return nil
}

func (t *tasksService) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return meta.NewErrNotFound("Task", id)
	}
	if err := t.tasksStore.Delete(ctx, objectID); err != nil {
		return errors.Wrapf(err, "error deleting task %q", id)
	}
	return nil
}
