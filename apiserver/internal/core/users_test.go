package core

import (
	"context"
	"testing"
	"time"

	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUsersServiceListFilters(t *testing.T) {
	now := time.Now()
	usersStore := newFakeUsersStore(
		sdkCore.User{
			ID:         primitive.NewObjectID(),
			Username:   "jas",
			IsActive:   true,
			Registered: now,
			Profile:    sdkCore.UserProfile{CodingTrack: "webdev"},
		},
		sdkCore.User{
			ID:         primitive.NewObjectID(),
			Username:   "sam",
			IsActive:   false,
			Registered: now.Add(-time.Hour),
			Profile:    sdkCore.UserProfile{CodingTrack: "webdev"},
		},
		sdkCore.User{
			ID:         primitive.NewObjectID(),
			Username:   "kai",
			IsActive:   true,
			Registered: now.Add(-2 * time.Hour),
			Profile:    sdkCore.UserProfile{CodingTrack: "ai"},
		},
	)
	service := NewUsersService(usersStore)

	all, err := service.List(context.Background(), sdkCore.UsersSelector{})
	require.NoError(t, err)
	require.Len(t, all.Items, 3)
	// Newest registration first
	require.Equal(t, "jas", all.Items[0].Username)

	webdev, err := service.List(
		context.Background(),
		sdkCore.UsersSelector{Track: "webdev"},
	)
	require.NoError(t, err)
	require.Len(t, webdev.Items, 2)

	active := true
	activeWebdev, err := service.List(
		context.Background(),
		sdkCore.UsersSelector{Track: "webdev", Active: &active},
	)
	require.NoError(t, err)
	require.Len(t, activeWebdev.Items, 1)
	require.Equal(t, "jas", activeWebdev.Items[0].Username)
}

func TestUsersServiceGetUnknown(t *testing.T) {
	service := NewUsersService(newFakeUsersStore())

	// A malformed id and an unknown id look the same to callers.
	_, err := service.Get(context.Background(), "not-a-hex-id")
	require.Error(t, err)
	require.IsType(t, &meta.ErrNotFound{}, err)

	_, err = service.Get(
		context.Background(),
		primitive.NewObjectID().Hex(),
	)
	require.Error(t, err)
}

func TestUsersServiceTrackCounts(t *testing.T) {
	usersStore := newFakeUsersStore(
		sdkCore.User{
			ID:      primitive.NewObjectID(),
			Profile: sdkCore.UserProfile{CodingTrack: "ai"},
		},
		sdkCore.User{
			ID:      primitive.NewObjectID(),
			Profile: sdkCore.UserProfile{CodingTrack: "ai"},
		},
		sdkCore.User{
			ID:      primitive.NewObjectID(),
			Profile: sdkCore.UserProfile{CodingTrack: "dsa"},
		},
	)
	service := NewUsersService(usersStore)
	counts, err := service.TrackCounts(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), counts.Counts["ai"])
	require.Equal(t, int64(1), counts.Counts["dsa"])
}
