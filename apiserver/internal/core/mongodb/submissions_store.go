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

type submissionsStore struct {
	collection *mongo.Collection
}

// NewSubmissionsStore returns a MongoDB-based implementation of the
// core.SubmissionsStore interface.
func NewSubmissionsStore(
	database *mongo.Database,
) (core.SubmissionsStore, error) {
	return &submissionsStore{
		collection: database.Collection("submissions"),
	}, nil
}

func (s *submissionsStore) List(
	ctx context.Context,
	selector sdkCore.SubmissionsSelector,
) (sdkCore.SubmissionList, error) {
	submissions := sdkCore.SubmissionList{Items: []sdkCore.Submission{}}
	criteria := bson.M{}
	if selector.Status != "" {
		criteria["status"] = selector.Status
	}
	order := -1
	if selector.OldestFirst {
		order = 1
	}
	findOptions := options.Find().SetSort(bson.M{"submitted_at": order})
	cur, err := s.collection.Find(ctx, criteria, findOptions)
	if err != nil {
		return submissions, errors.Wrap(err, "error finding submissions")
	}
	if err = cur.All(ctx, &submissions.Items); err != nil {
		return submissions, errors.Wrap(err, "error decoding submissions")
	}
	return submissions, nil
}

func (s *submissionsStore) Get(
	ctx context.Context,
	id primitive.ObjectID,
) (sdkCore.Submission, error) {
	submission := sdkCore.Submission{}
	res := s.collection.FindOne(ctx, bson.M{"_id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return submission, meta.NewErrNotFound("Submission", id.Hex())
	}
	if res.Err() != nil {
		return submission, errors.Wrapf(
			res.Err(),
			"error finding submission %q",
			id.Hex(),
		)
	}
	if err := res.Decode(&submission); err != nil {
		return submission, errors.Wrapf(
			err,
			"error decoding submission %q",
			id.Hex(),
		)
	}
	return submission, nil
}

func (s *submissionsStore) UpdateReview(
	ctx context.Context,
	id primitive.ObjectID,
	status string,
	points int,
	feedback string,
	when time.Time,
) error {
	res, err := s.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$set": bson.M{
				"status":         status,
				"points_awarded": points,
				"feedback":       feedback,
				"reviewed_at":    when,
			},
		},
	)
	if err != nil {
		return errors.Wrapf(err, "error updating submission %q", id.Hex())
	}
	if res.MatchedCount == 0 {
		return meta.NewErrNotFound("Submission", id.Hex())
	}
	return nil
}

func (s *submissionsStore) CountByStatus(
	ctx context.Context,
) (sdkCore.SubmissionStats, error) {
	stats := sdkCore.SubmissionStats{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "SubmissionStats",
		},
	}
	cur, err := s.collection.Aggregate(
		ctx,
		bson.A{
			bson.M{
				"$group": bson.M{
					"_id": "$status",
					"count": bson.M{
						"$sum": 1,
					},
				},
			},
		},
	)
	if err != nil {
		return stats, errors.Wrap(err, "error counting submissions")
	}
	results := []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}{}
	if err = cur.All(ctx, &results); err != nil {
		return stats, errors.Wrap(err, "error decoding submission counts")
	}
	for _, result := range results {
		stats.Total += result.Count
		switch result.Status {
		case sdkCore.SubmissionStatusPending:
			stats.Pending = result.Count
		case sdkCore.SubmissionStatusApproved:
			stats.Approved = result.Count
		case sdkCore.SubmissionStatusRejected:
			stats.Rejected = result.Count
		}
	}
	return stats, nil
}
