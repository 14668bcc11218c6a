package mongodb

import (
	"context"

	"github.com/innoverse/admin/apiserver/internal/authx"
	"github.com/innoverse/admin/apiserver/internal/lib/mongodb"
	sdkAuthx "github.com/innoverse/admin/sdk/authx"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type sessionsStore struct {
	collection *mongo.Collection
}

// NewSessionsStore returns a MongoDB-based implementation of the
// authx.SessionsStore interface.
func NewSessionsStore(database *mongo.Database) (authx.SessionsStore, error) {
	ctx, cancel :=
		context.WithTimeout(context.Background(), mongodb.Timeout)
	defer cancel()
	unique := true
	collection := database.Collection("admin_sessions")
	if _, err := collection.Indexes().CreateMany(
		ctx,
		[]mongo.IndexModel{
			// One live session per admin
			{
				Keys: bson.M{"admin_id": 1},
				Options: &options.IndexOptions{
					Unique: &unique,
				},
			},
			{
				Keys: bson.M{"token": 1},
				Options: &options.IndexOptions{
					Unique: &unique,
				},
			},
		},
	); err != nil {
		return nil, errors.Wrap(
			err,
			"error adding indexes to sessions collection",
		)
	}
	return &sessionsStore{
		collection: collection,
	}, nil
}

func (s *sessionsStore) Upsert(
	ctx context.Context,
	session sdkAuthx.Session,
) error {
	upsert := true
	if _, err := s.collection.ReplaceOne(
		ctx,
		bson.M{"admin_id": session.AdminID},
		session,
		&options.ReplaceOptions{Upsert: &upsert},
	); err != nil {
		return errors.Wrapf(
			err,
			"error upserting session for admin %q",
			session.Username,
		)
	}
	return nil
}

func (s *sessionsStore) GetByToken(
	ctx context.Context,
	token string,
) (sdkAuthx.Session, error) {
	session := sdkAuthx.Session{}
	res := s.collection.FindOne(ctx, bson.M{"token": token})
	if res.Err() == mongo.ErrNoDocuments {
		// Don't echo the token back through error messages.
		return session, meta.NewErrNotFound("Session", "")
	}
	if res.Err() != nil {
		return session, errors.Wrap(res.Err(), "error finding session")
	}
	if err := res.Decode(&session); err != nil {
		return session, errors.Wrap(err, "error decoding session")
	}
	return session, nil
}

func (s *sessionsStore) Renew(
	ctx context.Context,
	token string,
	expires int64,
) error {
	res, err := s.collection.UpdateOne(
		ctx,
		bson.M{"token": token},
		bson.M{
			"$set": bson.M{
				"expires_at": expires,
			},
		},
	)
	if err != nil {
		return errors.Wrap(err, "error renewing session")
	}
	if res.MatchedCount == 0 {
		return meta.NewErrNotFound("Session", "")
	}
	return nil
}

func (s *sessionsStore) DeleteByToken(
	ctx context.Context,
	token string,
) error {
	// Deleting a session that doesn't exist is deliberately not an error.
	if _, err := s.collection.DeleteOne(
		ctx,
		bson.M{"token": token},
	); err != nil {
		return errors.Wrap(err, "error deleting session")
	}
	return nil
}

func (s *sessionsStore) DeleteExpired(
	ctx context.Context,
	before int64,
) (int64, error) {
	res, err := s.collection.DeleteMany(
		ctx,
		bson.M{
			"expires_at": bson.M{
				"$lt": before,
			},
		},
	)
	if err != nil {
		return 0, errors.Wrap(err, "error deleting expired sessions")
	}
	return res.DeletedCount, nil
}
