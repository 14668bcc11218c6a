package core

import (
	"context"
	"time"

	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// ForumsService is the specialized interface for managing Forums.
type ForumsService interface {
	// Create opens a new forum.
	Create(ctx context.Context, forum sdkCore.Forum) (sdkCore.Forum, error)
	// List returns all forums with their comment counts, newest first.
	List(ctx context.Context) (sdkCore.ForumList, error)
	// Delete removes a forum along with every comment posted in it.
	Delete(ctx context.Context, id string) error
	// RecentComments returns up to limit comments from a forum, newest
	// first.
	RecentComments(
		ctx context.Context,
		forumID string,
		limit int64,
	) (sdkCore.ForumCommentList, error)
}

// ForumsStore is an interface for components that implement Forum persistence
// concerns.
type ForumsStore interface {
	Create(ctx context.Context, forum sdkCore.Forum) error
	// List returns all forums, newest first, with comment counts filled in.
	List(ctx context.Context) (sdkCore.ForumList, error)
	Get(ctx context.Context, id string) (sdkCore.Forum, error)
	Delete(ctx context.Context, id string) error
	// DeleteComments removes every comment belonging to the identified
	// forum.
	DeleteComments(ctx context.Context, forumID string) error
	RecentComments(
		ctx context.Context,
		forumID string,
		limit int64,
	) (sdkCore.ForumCommentList, error)
}

type forumsService struct {
	forumsStore ForumsStore
}

// NewForumsService returns a specialized interface for managing Forums.
func NewForumsService(forumsStore ForumsStore) ForumsService {
	return &forumsService{
		forumsStore: forumsStore,
	}
}

func (f *forumsService) Create(
	ctx context.Context,
	forum sdkCore.Forum,
) (sdkCore.Forum, error) {
	forum.TypeMeta = meta.TypeMeta{
		APIVersion: meta.APIVersion,
		Kind:       "Forum",
	}
	forum.ID = uuid.NewV4().String()
	forum.Created = time.Now().UTC()
	forum.CommentCount = 0
	if err := f.forumsStore.Create(ctx, forum); err != nil {
		return forum, errors.Wrapf(
			err,
			"error storing new forum %q",
			forum.Title,
		)
	}
	return forum, nil
}

func (f *forumsService) List(
	ctx context.Context,
) (sdkCore.ForumList, error) {
	forums, err := f.forumsStore.List(ctx)
	if err != nil {
		return forums, errors.Wrap(err, "error retrieving forums from store")
	}
	return forums, nil
}

func (f *forumsService) Delete(ctx context.Context, id string) error {
	if _, err := f.forumsStore.Get(ctx, id); err != nil {
		return errors.Wrapf(
			err,
			"error retrieving forum %q from store",
			id,
		)
	}
	// Comments go first so a failure can't orphan them.
	if err := f.forumsStore.DeleteComments(ctx, id); err != nil {
		return errors.Wrapf(err, "error deleting comments in forum %q", id)
	}
	if err := f.forumsStore.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "error deleting forum %q", id)
	}
	return nil
}

func (f *forumsService) RecentComments(
	ctx context.Context,
	forumID string,
	limit int64,
) (sdkCore.ForumCommentList, error) {
	if limit <= 0 {
		limit = 5
	}
	if _, err := f.forumsStore.Get(ctx, forumID); err != nil {
		return sdkCore.ForumCommentList{}, errors.Wrapf(
			err,
			"error retrieving forum %q from store",
			forumID,
		)
	}
	comments, err := f.forumsStore.RecentComments(ctx, forumID, limit)
	if err != nil {
		return comments, errors.Wrapf(
			err,
			"error retrieving comments in forum %q",
			forumID,
		)
	}
	return comments, nil
}
