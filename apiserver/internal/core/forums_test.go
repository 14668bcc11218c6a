package core

import (
	"context"
	"testing"
	"time"

	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestForumsServiceCreate(t *testing.T) {
	forumsStore := newFakeForumsStore()
	service := NewForumsService(forumsStore)

	forum, err := service.Create(
		context.Background(),
		sdkCore.Forum{
			Title:       "Show and tell",
			Description: "Share what you're building.",
			CreatedBy: sdkCore.ForumCreator{
				Name:  "tony",
				Email: "tony@innoverse.example.com",
			},
		},
	)
	require.NoError(t, err)
	require.NotEmpty(t, forum.ID)
	require.False(t, forum.Created.IsZero())
	require.Len(t, forumsStore.forums, 1)

	// A second forum gets a distinct id.
	forum2, err := service.Create(
		context.Background(),
		sdkCore.Forum{Title: "Off topic"},
	)
	require.NoError(t, err)
	require.NotEqual(t, forum.ID, forum2.ID)
}

func TestForumsServiceDeleteCascadesToComments(t *testing.T) {
	forumsStore := newFakeForumsStore()
	service := NewForumsService(forumsStore)

	forum, err := service.Create(
		context.Background(),
		sdkCore.Forum{Title: "Doomed"},
	)
	require.NoError(t, err)
	forumsStore.comments[forum.ID] = []sdkCore.ForumComment{
		{ID: "c1", ForumID: forum.ID},
		{ID: "c2", ForumID: forum.ID},
	}

	err = service.Delete(context.Background(), forum.ID)
	require.NoError(t, err)
	require.Empty(t, forumsStore.forums)
	require.Empty(t, forumsStore.comments)
}

func TestForumsServiceDeleteUnknown(t *testing.T) {
	service := NewForumsService(newFakeForumsStore())
	err := service.Delete(context.Background(), "no-such-forum")
	require.Error(t, err)
	require.IsType(t, &meta.ErrNotFound{}, errors.Cause(err))
}

func TestForumsServiceListIncludesCommentCounts(t *testing.T) {
	forumsStore := newFakeForumsStore()
	service := NewForumsService(forumsStore)

	forum, err := service.Create(
		context.Background(),
		sdkCore.Forum{Title: "Busy"},
	)
	require.NoError(t, err)
	forumsStore.comments[forum.ID] = []sdkCore.ForumComment{
		{ID: "c1", ForumID: forum.ID},
		{ID: "c2", ForumID: forum.ID},
		{ID: "c3", ForumID: forum.ID},
	}

	forums, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, forums.Items, 1)
	require.Equal(t, int64(3), forums.Items[0].CommentCount)
}

func TestForumsServiceRecentComments(t *testing.T) {
	forumsStore := newFakeForumsStore()
	service := NewForumsService(forumsStore)

	forum, err := service.Create(
		context.Background(),
		sdkCore.Forum{Title: "Busy"},
	)
	require.NoError(t, err)
	now := time.Now()
	for i := 0; i < 10; i++ {
		forumsStore.comments[forum.ID] = append(
			forumsStore.comments[forum.ID],
			sdkCore.ForumComment{
				ForumID: forum.ID,
				Created: now.Add(time.Duration(i) * time.Minute),
			},
		)
	}

	comments, err := service.RecentComments(context.Background(), forum.ID, 5)
	require.NoError(t, err)
	require.Len(t, comments.Items, 5)
	require.True(
		t,
		comments.Items[0].Created.After(comments.Items[1].Created),
	)
}
