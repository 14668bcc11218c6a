package core

import (
	"context"
	"testing"
	"time"

	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssignmentsServiceCreate(t *testing.T) {
	task := sdkCore.Task{
		ID:    primitive.NewObjectID(),
		Title: "Build a REST API",
	}
	user := sdkCore.User{
		ID:       primitive.NewObjectID(),
		Username: "jas",
	}
	assignmentsStore := newFakeAssignmentsStore()
	service := NewAssignmentsService(
		assignmentsStore,
		newFakeTasksStore(task),
		newFakeUsersStore(user),
	)

	assignment, err := service.Create(
		context.Background(),
		task.ID.Hex(),
		user.ID.Hex(),
		"tony",
	)
	require.NoError(t, err)
	require.Equal(t, task.ID, assignment.TaskID)
	require.Equal(t, user.ID, assignment.UserID)
	require.Equal(t, sdkCore.AssignmentTypeIndividual, assignment.Type)
	require.Equal(t, "tony", assignment.AssignedBy)
	require.Len(t, assignmentsStore.assignments, 1)
}

func TestAssignmentsServiceCreateDuplicate(t *testing.T) {
	task := sdkCore.Task{ID: primitive.NewObjectID()}
	user := sdkCore.User{ID: primitive.NewObjectID()}
	assignmentsStore := newFakeAssignmentsStore()
	service := NewAssignmentsService(
		assignmentsStore,
		newFakeTasksStore(task),
		newFakeUsersStore(user),
	)

	_, err := service.Create(
		context.Background(),
		task.ID.Hex(),
		user.ID.Hex(),
		"tony",
	)
	require.NoError(t, err)

	_, err = service.Create(
		context.Background(),
		task.ID.Hex(),
		user.ID.Hex(),
		"tony",
	)
	require.Error(t, err)
	require.IsType(t, &meta.ErrConflict{}, err)
	require.Len(t, assignmentsStore.assignments, 1)
}

func TestAssignmentsServiceCreateUnknownTask(t *testing.T) {
	user := sdkCore.User{ID: primitive.NewObjectID()}
	service := NewAssignmentsService(
		newFakeAssignmentsStore(),
		newFakeTasksStore(),
		newFakeUsersStore(user),
	)
	_, err := service.Create(
		context.Background(),
		primitive.NewObjectID().Hex(),
		user.ID.Hex(),
		"tony",
	)
	require.Error(t, err)
	require.IsType(t, &meta.ErrNotFound{}, errors.Cause(err))
}

func TestAssignmentsServiceCreateCustom(t *testing.T) {
	user := sdkCore.User{
		ID: primitive.NewObjectID(),
		Profile: sdkCore.UserProfile{
			CodingTrack: "dsa",
		},
	}
	assignmentsStore := newFakeAssignmentsStore()
	tasksStore := newFakeTasksStore()
	service := NewAssignmentsService(
		assignmentsStore,
		tasksStore,
		newFakeUsersStore(user),
	)

	assignment, err := service.CreateCustom(
		context.Background(),
		sdkCore.Task{
			Title:  "Implement a B-tree",
			Points: 100,
		},
		user.ID.Hex(),
		"tony",
	)
	require.NoError(t, err)
	require.Equal(t, sdkCore.AssignmentTypeCustom, assignment.Type)

	// The one-off task should exist, typed custom, defaulted to the user's
	// own track.
	task, err := tasksStore.Get(context.Background(), assignment.TaskID)
	require.NoError(t, err)
	require.Equal(t, sdkCore.AssignmentTypeCustom, task.Type)
	require.Equal(t, "dsa", task.Track)
	require.True(t, task.IsActive)
}

func TestAssignmentsServiceDeleteCascadesToCustomTask(t *testing.T) {
	user := sdkCore.User{ID: primitive.NewObjectID()}
	assignmentsStore := newFakeAssignmentsStore()
	tasksStore := newFakeTasksStore()
	service := NewAssignmentsService(
		assignmentsStore,
		tasksStore,
		newFakeUsersStore(user),
	)

	assignment, err := service.CreateCustom(
		context.Background(),
		sdkCore.Task{Title: "One-off"},
		user.ID.Hex(),
		"tony",
	)
	require.NoError(t, err)
	require.Len(t, tasksStore.tasks, 1)

	err = service.Delete(context.Background(), assignment.ID.Hex())
	require.NoError(t, err)
	require.Empty(t, assignmentsStore.assignments)
	require.Empty(t, tasksStore.tasks)
}

func TestAssignmentsServiceDeleteLeavesCatalogTask(t *testing.T) {
	task := sdkCore.Task{
		ID:   primitive.NewObjectID(),
		Type: TaskTypeRegular,
	}
	user := sdkCore.User{ID: primitive.NewObjectID()}
	assignmentsStore := newFakeAssignmentsStore()
	tasksStore := newFakeTasksStore(task)
	service := NewAssignmentsService(
		assignmentsStore,
		tasksStore,
		newFakeUsersStore(user),
	)

	assignment, err := service.Create(
		context.Background(),
		task.ID.Hex(),
		user.ID.Hex(),
		"tony",
	)
	require.NoError(t, err)

	err = service.Delete(context.Background(), assignment.ID.Hex())
	require.NoError(t, err)
	require.Empty(t, assignmentsStore.assignments)
	// Catalog tasks outlive their assignments.
	require.Len(t, tasksStore.tasks, 1)
}

func TestAssignmentsServiceListRecent(t *testing.T) {
	assignmentsStore := newFakeAssignmentsStore()
	service := NewAssignmentsService(
		assignmentsStore,
		newFakeTasksStore(),
		newFakeUsersStore(),
	)
	for i := 0; i < 5; i++ {
		require.NoError(
			t,
			assignmentsStore.Create(
				context.Background(),
				sdkCore.Assignment{
					ID:       primitive.NewObjectID(),
					Assigned: time.Now().Add(time.Duration(i) * time.Minute),
				},
			),
		)
	}
	assignments, err := service.ListRecent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, assignments.Items, 3)
	require.True(
		t,
		assignments.Items[0].Assigned.After(assignments.Items[1].Assigned),
	)
}
