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

func TestSubmissionsServiceReviewApproval(t *testing.T) {
	user := sdkCore.User{ID: primitive.NewObjectID()}
	submission := sdkCore.Submission{
		ID:     primitive.NewObjectID(),
		UserID: user.ID,
		Status: sdkCore.SubmissionStatusPending,
	}
	submissionsStore := newFakeSubmissionsStore(submission)
	usersStore := newFakeUsersStore(user)
	service := NewSubmissionsService(submissionsStore, usersStore)

	err := service.Review(
		context.Background(),
		submission.ID.Hex(),
		sdkCore.SubmissionReview{
			Status:   sdkCore.SubmissionStatusApproved,
			Points:   50,
			Feedback: "Nice work.",
		},
	)
	require.NoError(t, err)

	updated, err := submissionsStore.Get(context.Background(), submission.ID)
	require.NoError(t, err)
	require.Equal(t, sdkCore.SubmissionStatusApproved, updated.Status)
	require.Equal(t, 50, updated.PointsAwarded)
	require.NotNil(t, updated.Reviewed)

	rewarded := usersStore.users[user.ID]
	require.Equal(t, int64(50), rewarded.Stats.Points)
	require.Equal(t, int64(1), rewarded.Stats.TasksCompleted)
}

func TestSubmissionsServiceReviewReApprovalDoesNotDoubleAward(t *testing.T) {
	user := sdkCore.User{ID: primitive.NewObjectID()}
	submission := sdkCore.Submission{
		ID:     primitive.NewObjectID(),
		UserID: user.ID,
		Status: sdkCore.SubmissionStatusPending,
	}
	submissionsStore := newFakeSubmissionsStore(submission)
	usersStore := newFakeUsersStore(user)
	service := NewSubmissionsService(submissionsStore, usersStore)

	review := sdkCore.SubmissionReview{
		Status: sdkCore.SubmissionStatusApproved,
		Points: 50,
	}
	require.NoError(
		t,
		service.Review(context.Background(), submission.ID.Hex(), review),
	)
	require.NoError(
		t,
		service.Review(context.Background(), submission.ID.Hex(), review),
	)

	rewarded := usersStore.users[user.ID]
	require.Equal(t, int64(50), rewarded.Stats.Points)
	require.Equal(t, int64(1), rewarded.Stats.TasksCompleted)
}

func TestSubmissionsServiceReviewRejection(t *testing.T) {
	user := sdkCore.User{ID: primitive.NewObjectID()}
	submission := sdkCore.Submission{
		ID:     primitive.NewObjectID(),
		UserID: user.ID,
		Status: sdkCore.SubmissionStatusPending,
	}
	submissionsStore := newFakeSubmissionsStore(submission)
	usersStore := newFakeUsersStore(user)
	service := NewSubmissionsService(submissionsStore, usersStore)

	err := service.Review(
		context.Background(),
		submission.ID.Hex(),
		sdkCore.SubmissionReview{
			Status:   sdkCore.SubmissionStatusRejected,
			Feedback: "Try again.",
		},
	)
	require.NoError(t, err)
	require.Zero(t, usersStore.users[user.ID].Stats.Points)
	require.Zero(t, usersStore.users[user.ID].Stats.TasksCompleted)
}

func TestSubmissionsServiceReviewInvalidStatus(t *testing.T) {
	service := NewSubmissionsService(
		newFakeSubmissionsStore(),
		newFakeUsersStore(),
	)
	err := service.Review(
		context.Background(),
		primitive.NewObjectID().Hex(),
		sdkCore.SubmissionReview{Status: "maybe"},
	)
	require.Error(t, err)
	require.IsType(t, &meta.ErrBadRequest{}, err)
}

func TestSubmissionsServiceReviewUnknownSubmission(t *testing.T) {
	service := NewSubmissionsService(
		newFakeSubmissionsStore(),
		newFakeUsersStore(),
	)
	err := service.Review(
		context.Background(),
		primitive.NewObjectID().Hex(),
		sdkCore.SubmissionReview{Status: sdkCore.SubmissionStatusApproved},
	)
	require.Error(t, err)
	require.IsType(t, &meta.ErrNotFound{}, errors.Cause(err))
}

func TestSubmissionsServiceStats(t *testing.T) {
	submissionsStore := newFakeSubmissionsStore(
		sdkCore.Submission{
			ID:     primitive.NewObjectID(),
			Status: sdkCore.SubmissionStatusPending,
		},
		sdkCore.Submission{
			ID:     primitive.NewObjectID(),
			Status: sdkCore.SubmissionStatusApproved,
		},
		sdkCore.Submission{
			ID:     primitive.NewObjectID(),
			Status: sdkCore.SubmissionStatusApproved,
		},
		sdkCore.Submission{
			ID:     primitive.NewObjectID(),
			Status: sdkCore.SubmissionStatusRejected,
		},
	)
	service := NewSubmissionsService(submissionsStore, newFakeUsersStore())
	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), stats.Total)
	require.Equal(t, int64(1), stats.Pending)
	require.Equal(t, int64(2), stats.Approved)
	require.Equal(t, int64(1), stats.Rejected)
}

func TestSubmissionsServiceListOrder(t *testing.T) {
	now := time.Now()
	submissionsStore := newFakeSubmissionsStore(
		sdkCore.Submission{
			ID:        primitive.NewObjectID(),
			Status:    sdkCore.SubmissionStatusPending,
			Submitted: now.Add(-time.Hour),
		},
		sdkCore.Submission{
			ID:        primitive.NewObjectID(),
			Status:    sdkCore.SubmissionStatusPending,
			Submitted: now,
		},
	)
	service := NewSubmissionsService(submissionsStore, newFakeUsersStore())

	newestFirst, err := service.List(
		context.Background(),
		sdkCore.SubmissionsSelector{},
	)
	require.NoError(t, err)
	require.Len(t, newestFirst.Items, 2)
	require.True(
		t,
		newestFirst.Items[0].Submitted.After(newestFirst.Items[1].Submitted),
	)

	oldestFirst, err := service.List(
		context.Background(),
		sdkCore.SubmissionsSelector{OldestFirst: true},
	)
	require.NoError(t, err)
	require.True(
		t,
		oldestFirst.Items[0].Submitted.Before(oldestFirst.Items[1].Submitted),
	)
}
