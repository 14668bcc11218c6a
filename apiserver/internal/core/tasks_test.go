package core

import (
	"context"
	"testing"

	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/stretchr/testify/require"
)

func TestTasksServiceCreate(t *testing.T) {
	tasksStore := newFakeTasksStore()
	service := NewTasksService(tasksStore)

	task, err := service.Create(
		context.Background(),
		sdkCore.Task{
			Title:      "Build a CLI",
			Track:      "app",
			Difficulty: "medium",
			Points:     75,
			IsActive:   true,
			CreatedBy:  "tony",
		},
	)
	require.NoError(t, err)
	require.False(t, task.ID.IsZero())
	require.Equal(t, TaskTypeRegular, task.Type)
	require.False(t, task.Created.IsZero())
	require.Nil(t, task.Updated)
	require.Len(t, tasksStore.tasks, 1)
}

func TestTasksServiceSetActive(t *testing.T) {
	tasksStore := newFakeTasksStore()
	service := NewTasksService(tasksStore)

	task, err := service.Create(
		context.Background(),
		sdkCore.Task{Title: "Toggleable", IsActive: true},
	)
	require.NoError(t, err)

	require.NoError(
		t,
		service.SetActive(context.Background(), task.ID.Hex(), false),
	)
	updated, err := tasksStore.Get(context.Background(), task.ID)
	require.NoError(t, err)
	require.False(t, updated.IsActive)
	// Toggling stamps the update time.
	require.NotNil(t, updated.Updated)
}

func TestTasksServiceGetUnknown(t *testing.T) {
	service := NewTasksService(newFakeTasksStore())
	_, err := service.Get(context.Background(), "not-a-hex-id")
	require.Error(t, err)
	require.IsType(t, &meta.ErrNotFound{}, err)
}
