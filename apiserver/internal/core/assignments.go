package core

import (
	"context"
	"time"

	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentsService is the specialized interface for managing Assignments.
type AssignmentsService interface {
	// Create assigns an existing task to a user. Assigning the same task to
	// the same user twice is a conflict.
	Create(
		ctx context.Context,
		taskID string,
		userID string,
		assignedBy string,
	) (sdkCore.Assignment, error)
	// CreateCustom creates a brand-new task and assigns it to a user. The
	// task's lifetime is tied to the assignment's.
	CreateCustom(
		ctx context.Context,
		task sdkCore.Task,
		userID string,
		assignedBy string,
	) (sdkCore.Assignment, error)
	// ListRecent returns up to limit assignments, most recent first.
	ListRecent(
		ctx context.Context,
		limit int64,
	) (sdkCore.AssignmentList, error)
	// Delete removes an assignment, cascading to its task if the task was
	// custom-made for it.
	Delete(ctx context.Context, id string) error
}

// AssignmentsStore is an interface for components that implement Assignment
// persistence concerns.
type AssignmentsStore interface {
	Create(ctx context.Context, assignment sdkCore.Assignment) error
	Get(
		ctx context.Context,
		id primitive.ObjectID,
	) (sdkCore.Assignment, error)
	// GetByTaskAndUser retrieves the assignment binding the provided task to
	// the provided user, if one exists.
	GetByTaskAndUser(
		ctx context.Context,
		taskID primitive.ObjectID,
		userID primitive.ObjectID,
	) (sdkCore.Assignment, error)
	ListRecent(
		ctx context.Context,
		limit int64,
	) (sdkCore.AssignmentList, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type assignmentsService struct {
	assignmentsStore AssignmentsStore
	tasksStore       TasksStore
	usersStore       UsersStore
}

// NewAssignmentsService returns a specialized interface for managing
// Assignments.
func NewAssignmentsService(
	assignmentsStore AssignmentsStore,
	tasksStore TasksStore,
	usersStore UsersStore,
) AssignmentsService {
	return &assignmentsService{
		assignmentsStore: assignmentsStore,
		tasksStore:       tasksStore,
		usersStore:       usersStore,
	}
}

func (a *assignmentsService) Create(
	ctx context.Context,
	taskID string,
	userID string,
	assignedBy string,
) (sdkCore.Assignment, error) {
	assignment := sdkCore.Assignment{}
	taskObjectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return assignment, meta.NewErrNotFound("Task", taskID)
	}
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return assignment, meta.NewErrNotFound("User", userID)
	}
	if _, err = a.tasksStore.Get(ctx, taskObjectID); err != nil {
		return assignment, errors.Wrapf(
			err,
			"error retrieving task %q from store",
			taskID,
		)
	}
	if _, err = a.usersStore.Get(ctx, userObjectID); err != nil {
		return assignment, errors.Wrapf(
			err,
			"error retrieving user %q from store",
			userID,
		)
	}
	if _, err = a.assignmentsStore.GetByTaskAndUser(
		ctx,
		taskObjectID,
		userObjectID,
	); err == nil {
		return assignment, meta.NewErrConflict(
			"Assignment",
			"",
			"The task is already assigned to this user.",
		)
	} else if _, ok := errors.Cause(err).(*meta.ErrNotFound); !ok {
		return assignment, errors.Wrap(
			err,
			"error searching for existing assignment",
		)
	}
	assignment = sdkCore.Assignment{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "Assignment",
		},
		ID:         primitive.NewObjectID(),
		TaskID:     taskObjectID,
		UserID:     userObjectID,
		Type:       sdkCore.AssignmentTypeIndividual,
		AssignedBy: assignedBy,
		Assigned:   time.Now().UTC(),
	}
	if err = a.assignmentsStore.Create(ctx, assignment); err != nil {
		return assignment, errors.Wrap(err, "error storing new assignment")
	}
	return assignment, nil
}

func (a *assignmentsService) CreateCustom(
	ctx context.Context,
	task sdkCore.Task,
	userID string,
	assignedBy string,
) (sdkCore.Assignment, error) {
	assignment := sdkCore.Assignment{}
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return assignment, meta.NewErrNotFound("User", userID)
	}
	user, err := a.usersStore.Get(ctx, userObjectID)
	if err != nil {
		return assignment, errors.Wrapf(
			err,
			"error retrieving user %q from store",
			userID,
		)
	}
	task.TypeMeta = meta.TypeMeta{
		APIVersion: meta.APIVersion,
		Kind:       "Task",
	}
	task.ID = primitive.NewObjectID()
	task.Type = sdkCore.AssignmentTypeCustom
	if task.Track == "" {
		task.Track = user.Profile.CodingTrack
	}
	task.IsActive = true
	task.CreatedBy = assignedBy
	task.Created = time.Now().UTC()
	// The task is written first so a failure between the two writes leaves
	// an unassigned task rather than an assignment pointing at nothing.
	if err = a.tasksStore.Create(ctx, task); err != nil {
		return assignment, errors.Wrapf(
			err,
			"error storing custom task %q",
			task.Title,
		)
	}
	assignment = sdkCore.Assignment{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "Assignment",
		},
		ID:         primitive.NewObjectID(),
		TaskID:     task.ID,
		UserID:     userObjectID,
		Type:       sdkCore.AssignmentTypeCustom,
		AssignedBy: assignedBy,
		Assigned:   time.Now().UTC(),
	}
	if err = a.assignmentsStore.Create(ctx, assignment); err != nil {
		return assignment, errors.Wrap(
			err,
			"error storing new custom assignment",
		)
	}
	return assignment, nil
}

func (a *assignmentsService) ListRecent(
	ctx context.Context,
	limit int64,
) (sdkCore.AssignmentList, error) {
	if limit <= 0 {
		limit = 20
	}
	assignments, err := a.assignmentsStore.ListRecent(ctx, limit)
	if err != nil {
		return assignments, errors.Wrap(
			err,
			"error retrieving assignments from store",
		)
	}
	return assignments, nil
}

func (a *assignmentsService) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return meta.NewErrNotFound("Assignment", id)
	}
	assignment, err := a.assignmentsStore.Get(ctx, objectID)
	if err != nil {
		return errors.Wrapf(
			err,
			"error retrieving assignment %q from store",
			id,
		)
	}
	if err = a.assignmentsStore.Delete(ctx, objectID); err != nil {
		return errors.Wrapf(err, "error deleting assignment %q", id)
	}
	// A custom task exists only for its assignment.
	if assignment.Type == sdkCore.AssignmentTypeCustom {
		if err = a.tasksStore.Delete(ctx, assignment.TaskID); err != nil {
			return errors.Wrapf(
				err,
				"error deleting custom task %q",
				assignment.TaskID.Hex(),
			)
		}
	}
	return nil
}
