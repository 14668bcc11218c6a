package mongodb

import (
	"context"

	"github.com/innoverse/admin/apiserver/internal/core"
	"github.com/innoverse/admin/apiserver/internal/lib/mongodb"
	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type assignmentsStore struct {
	collection *mongo.Collection
}

// NewAssignmentsStore returns a MongoDB-based implementation of the
// core.AssignmentsStore interface.
func NewAssignmentsStore(
	database *mongo.Database,
) (core.AssignmentsStore, error) {
	ctx, cancel :=
		context.WithTimeout(context.Background(), mongodb.Timeout)
	defer cancel()
	unique := true
	collection := database.Collection("task_assignments")
	// The same task can only be assigned to the same user once
	if _, err := collection.Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "task_id", Value: 1},
				{Key: "user_id", Value: 1},
			},
			Options: &options.IndexOptions{
				Unique: &unique,
			},
		},
	); err != nil {
		return nil, errors.Wrap(
			err,
			"error adding indexes to assignments collection",
		)
	}
	return &assignmentsStore{
		collection: collection,
	}, nil
}

func (a *assignmentsStore) Create(
	ctx context.Context,
	assignment sdkCore.Assignment,
) error {
	if _, err := a.collection.InsertOne(ctx, assignment); err != nil {
		if writeErr, ok := err.(mongo.WriteException); ok &&
			len(writeErr.WriteErrors) == 1 &&
			writeErr.WriteErrors[0].Code == 11000 {
			return meta.NewErrConflict(
				"Assignment",
				"",
				"The task is already assigned to this user.",
			)
		}
		return errors.Wrap(err, "error inserting new assignment")
	}
	return nil
}

func (a *assignmentsStore) Get(
	ctx context.Context,
	id primitive.ObjectID,
) (sdkCore.Assignment, error) {
	assignment := sdkCore.Assignment{}
	res := a.collection.FindOne(ctx, bson.M{"_id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return assignment, meta.NewErrNotFound("Assignment", id.Hex())
	}
	if res.Err() != nil {
		return assignment, errors.Wrapf(
			res.Err(),
			"error finding assignment %q",
			id.Hex(),
		)
	}
	if err := res.Decode(&assignment); err != nil {
		return assignment, errors.Wrapf(
			err,
			"error decoding assignment %q",
			id.Hex(),
		)
	}
	return assignment, nil
}

func (a *assignmentsStore) GetByTaskAndUser(
	ctx context.Context,
	taskID primitive.ObjectID,
	userID primitive.ObjectID,
) (sdkCore.Assignment, error) {
	assignment := sdkCore.Assignment{}
	res := a.collection.FindOne(
		ctx,
		bson.M{
			"task_id": taskID,
			"user_id": userID,
		},
	)
	if res.Err() == mongo.ErrNoDocuments {
		return assignment, meta.NewErrNotFound("Assignment", "")
	}
	if res.Err() != nil {
		return assignment, errors.Wrap(res.Err(), "error finding assignment")
	}
	if err := res.Decode(&assignment); err != nil {
		return assignment, errors.Wrap(err, "error decoding assignment")
	}
	return assignment, nil
}

func (a *assignmentsStore) ListRecent(
	ctx context.Context,
	limit int64,
) (sdkCore.AssignmentList, error) {
	assignments := sdkCore.AssignmentList{Items: []sdkCore.Assignment{}}
	findOptions := options.Find().
		SetSort(bson.M{"assigned_at": -1}).
		SetLimit(limit)
	cur, err := a.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return assignments, errors.Wrap(err, "error finding assignments")
	}
	if err = cur.All(ctx, &assignments.Items); err != nil {
		return assignments, errors.Wrap(err, "error decoding assignments")
	}
	return assignments, nil
}

func (a *assignmentsStore) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) error {
	res, err := a.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "error deleting assignment %q", id.Hex())
	}
	if res.DeletedCount == 0 {
		return meta.NewErrNotFound("Assignment", id.Hex())
	}
	return nil
}
