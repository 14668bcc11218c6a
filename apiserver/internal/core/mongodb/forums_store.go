package mongodb

import (
	"context"

	"github.com/innoverse/admin/apiserver/internal/core"
	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type forumsStore struct {
	collection         *mongo.Collection
	commentsCollection *mongo.Collection
}

// NewForumsStore returns a MongoDB-based implementation of the
// core.ForumsStore interface.
func NewForumsStore(database *mongo.Database) (core.ForumsStore, error) {
	return &forumsStore{
		collection:         database.Collection("forums"),
		commentsCollection: database.Collection("forum_comments"),
	}, nil
}

func (f *forumsStore) Create(
	ctx context.Context,
	forum sdkCore.Forum,
) error {
	if _, err := f.collection.InsertOne(ctx, forum); err != nil {
		return errors.Wrapf(err, "error inserting new forum %q", forum.Title)
	}
	return nil
}

func (f *forumsStore) List(ctx context.Context) (sdkCore.ForumList, error) {
	forums := sdkCore.ForumList{Items: []sdkCore.Forum{}}
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := f.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return forums, errors.Wrap(err, "error finding forums")
	}
	if err = cur.All(ctx, &forums.Items); err != nil {
		return forums, errors.Wrap(err, "error decoding forums")
	}
	for i, forum := range forums.Items {
		count, err := f.commentsCollection.CountDocuments(
			ctx,
			bson.M{"forum_id": forum.ID},
		)
		if err != nil {
			return forums, errors.Wrapf(
				err,
				"error counting comments in forum %q",
				forum.ID,
			)
		}
		forums.Items[i].CommentCount = count
	}
	return forums, nil
}

func (f *forumsStore) Get(
	ctx context.Context,
	id string,
) (sdkCore.Forum, error) {
	forum := sdkCore.Forum{}
	res := f.collection.FindOne(ctx, bson.M{"_id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return forum, meta.NewErrNotFound("Forum", id)
	}
	if res.Err() != nil {
		return forum, errors.Wrapf(res.Err(), "error finding forum %q", id)
	}
	if err := res.Decode(&forum); err != nil {
		return forum, errors.Wrapf(err, "error decoding forum %q", id)
	}
	return forum, nil
}

func (f *forumsStore) Delete(ctx context.Context, id string) error {
	res, err := f.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "error deleting forum %q", id)
	}
	if res.DeletedCount == 0 {
		return meta.NewErrNotFound("Forum", id)
	}
	return nil
}

func (f *forumsStore) DeleteComments(
	ctx context.Context,
	forumID string,
) error {
	if _, err := f.commentsCollection.DeleteMany(
		ctx,
		bson.M{"forum_id": forumID},
	); err != nil {
		return errors.Wrapf(
			err,
			"error deleting comments in forum %q",
			forumID,
		)
	}
	return nil
}

func (f *forumsStore) RecentComments(
	ctx context.Context,
	forumID string,
	limit int64,
) (sdkCore.ForumCommentList, error) {
	comments := sdkCore.ForumCommentList{Items: []sdkCore.ForumComment{}}
	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit)
	cur, err := f.commentsCollection.Find(
		ctx,
		bson.M{"forum_id": forumID},
		findOptions,
	)
	if err != nil {
		return comments, errors.Wrapf(
			err,
			"error finding comments in forum %q",
			forumID,
		)
	}
	if err = cur.All(ctx, &comments.Items); err != nil {
		return comments, errors.Wrap(err, "error decoding comments")
	}
	return comments, nil
}
