package mongodb

import (
	"context"
	"time"

	"github.com/innoverse/admin/apiserver/internal/core"
	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type tasksStore struct {
	collection *mongo.Collection
}

// NewTasksStore returns a MongoDB-based implementation of the
// core.TasksStore interface.
func NewTasksStore(database *mongo.Database) (core.TasksStore, error) {
	return &tasksStore{
		collection: database.Collection("tasks"),
	}, nil
}

func (t *tasksStore) Create(ctx context.Context, task sdkCore.Task) error {
	if _, err := t.collection.InsertOne(ctx, task); err != nil {
		return errors.Wrapf(err, "error inserting new task %q", task.Title)
	}
	return nil
}

func (t *tasksStore) List(
	ctx context.Context,
	selector sdkCore.TasksSelector,
) (sdkCore.TaskList, error) {
	tasks := sdkCore.TaskList{Items: []sdkCore.Task{}}
	criteria := bson.M{}
	if selector.Track != "" {
		criteria["track"] = selector.Track
	}
	if selector.Difficulty != "" {
		criteria["difficulty"] = selector.Difficulty
	}
	if selector.Active != nil {
		criteria["is_active"] = *selector.Active
	}
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := t.collection.Find(ctx, criteria, findOptions)
	if err != nil {
		return tasks, errors.Wrap(err, "error finding tasks")
	}
	if err = cur.All(ctx, &tasks.Items); err != nil {
		return tasks, errors.Wrap(err, "error decoding tasks")
	}
	return tasks, nil
}

func (t *tasksStore) Get(
	ctx context.Context,
	id primitive.ObjectID,
) (sdkCore.Task, error) {
	task := sdkCore.Task{}
	res := t.collection.FindOne(ctx, bson.M{"_id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return task, meta.NewErrNotFound("Task", id.Hex())
	}
	if res.Err() != nil {
		return task, errors.Wrapf(
			res.Err(),
			"error finding task %q",
			id.Hex(),
		)
	}
	if err := res.Decode(&task); err != nil {
		return task, errors.Wrapf(err, "error decoding task %q", id.Hex())
	}
	return task, nil
}

func (t *tasksStore) SetActive(
	ctx context.Context,
	id primitive.ObjectID,
	active bool,
	when time.Time,
) error {
	res, err := t.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$set": bson.M{
				"is_active":  active,
				"updated_at": when,
			},
		},
	)
	if err != nil {
		return errors.Wrapf(err, "error updating task %q", id.Hex())
	}
	if res.MatchedCount == 0 {
		return meta.NewErrNotFound("Task", id.Hex())
	}
	return nil
}

func (t *tasksStore) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) error {
	res, err := t.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "error deleting task %q", id.Hex())
	}
	if res.DeletedCount == 0 {
		return meta.NewErrNotFound("Task", id.Hex())
	}
	return nil
}
