package mongodb

import (
	"context"
	"time"

	"github.com/innoverse/admin/apiserver/internal/authx"
	"github.com/innoverse/admin/apiserver/internal/lib/mongodb"
	sdkAuthx "github.com/innoverse/admin/sdk/authx"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type adminsStore struct {
	collection *mongo.Collection
}

// NewAdminsStore returns a MongoDB-based implementation of the
// authx.AdminsStore interface.
func NewAdminsStore(database *mongo.Database) (authx.AdminsStore, error) {
	ctx, cancel :=
		context.WithTimeout(context.Background(), mongodb.Timeout)
	defer cancel()
	unique := true
	collection := database.Collection("admins")
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
			"error adding indexes to admins collection",
		)
	}
	return &adminsStore{
		collection: collection,
	}, nil
}

func (a *adminsStore) GetByCredentials(
	ctx context.Context,
	username string,
	hashedPassword string,
) (sdkAuthx.Admin, error) {
	admin := sdkAuthx.Admin{}
	// Both fields participate in the query so that a credential check is a
	// single exact-match lookup.
	res := a.collection.FindOne(
		ctx,
		bson.M{
			"username": username,
			"password": hashedPassword,
		},
	)
	if res.Err() == mongo.ErrNoDocuments {
		return admin, meta.NewErrNotFound("Admin", username)
	}
	if res.Err() != nil {
		return admin, errors.Wrapf(
			res.Err(),
			"error finding admin %q",
			username,
		)
	}
	if err := res.Decode(&admin); err != nil {
		return admin, errors.Wrapf(err, "error decoding admin %q", username)
	}
	return admin, nil
}

func (a *adminsStore) GetByEmail(
	ctx context.Context,
	email string,
) (sdkAuthx.Admin, error) {
	admin := sdkAuthx.Admin{}
	res := a.collection.FindOne(ctx, bson.M{"email": email})
	if res.Err() == mongo.ErrNoDocuments {
		return admin, meta.NewErrNotFound("Admin", email)
	}
	if res.Err() != nil {
		return admin, errors.Wrapf(
			res.Err(),
			"error finding admin with email %q",
			email,
		)
	}
	if err := res.Decode(&admin); err != nil {
		return admin, errors.Wrapf(
			err,
			"error decoding admin with email %q",
			email,
		)
	}
	return admin, nil
}

func (a *adminsStore) UpdateLoginStats(
	ctx context.Context,
	id primitive.ObjectID,
	when time.Time,
) error {
	if _, err := a.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$set": bson.M{
				"last_login": when,
			},
			"$inc": bson.M{
				"login_count": 1,
			},
		},
	); err != nil {
		return errors.Wrapf(
			err,
			"error updating login stats for admin %q",
			id.Hex(),
		)
	}
	return nil
}
