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

type usersStore struct {
	collection *mongo.Collection
}

// NewUsersStore returns a MongoDB-based implementation of the
// core.UsersStore interface.
func NewUsersStore(database *mongo.Database) (core.UsersStore, error) {
	ctx, cancel :=
		context.WithTimeout(context.Background(), mongodb.Timeout)
	defer cancel()
	unique := true
	collection := database.Collection("users")
	if _, err := collection.Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.M{"username": 1},
			Options: &options.IndexOptions{
				Unique: &unique,
			},
		},
	); err != nil {
		return nil, errors.Wrap(
			err,
			"error adding indexes to users collection",
		)
	}
	return &usersStore{
		collection: collection,
	}, nil
}

func (u *usersStore) List(
	ctx context.Context,
	selector sdkCore.UsersSelector,
) (sdkCore.UserList, error) {
	users := sdkCore.UserList{Items: []sdkCore.User{}}
	criteria := bson.M{}
	if selector.Track != "" {
		criteria["profile.coding_track"] = selector.Track
	}
	if selector.Active != nil {
		criteria["is_active"] = *selector.Active
	}
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := u.collection.Find(ctx, criteria, findOptions)
	if err != nil {
		return users, errors.Wrap(err, "error finding users")
	}
	if err = cur.All(ctx, &users.Items); err != nil {
		return users, errors.Wrap(err, "error decoding users")
	}
	return users, nil
}

func (u *usersStore) Get(
	ctx context.Context,
	id primitive.ObjectID,
) (sdkCore.User, error) {
	user := sdkCore.User{}
	res := u.collection.FindOne(ctx, bson.M{"_id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return user, meta.NewErrNotFound("User", id.Hex())
	}
	if res.Err() != nil {
		return user, errors.Wrapf(
			res.Err(),
			"error finding user %q",
			id.Hex(),
		)
	}
	if err := res.Decode(&user); err != nil {
		return user, errors.Wrapf(err, "error decoding user %q", id.Hex())
	}
	return user, nil
}

func (u *usersStore) CountByTrack(
	ctx context.Context,
) (map[string]int64, error) {
	cur, err := u.collection.Aggregate(
		ctx,
		bson.A{
			bson.M{
				"$group": bson.M{
					"_id": "$profile.coding_track",
					"count": bson.M{
						"$sum": 1,
					},
				},
			},
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "error counting users by track")
	}
	results := []struct {
		Track string `bson:"_id"`
		Count int64  `bson:"count"`
	}{}
	if err = cur.All(ctx, &results); err != nil {
		return nil, errors.Wrap(err, "error decoding track counts")
	}
	counts := map[string]int64{}
	for _, result := range results {
		counts[result.Track] = result.Count
	}
	return counts, nil
}

func (u *usersStore) IncrementStats(
	ctx context.Context,
	id primitive.ObjectID,
	points int,
) error {
	res, err := u.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{
				"stats.points":          points,
				"stats.tasks_completed": 1,
			},
		},
	)
	if err != nil {
		return errors.Wrapf(
			err,
			"error updating stats for user %q",
			id.Hex(),
		)
	}
	if res.MatchedCount == 0 {
		return meta.NewErrNotFound("User", id.Hex())
	}
	return nil
}
