package mongodb

import (
	"context"
	"sort"

	"github.com/innoverse/admin/apiserver/internal/core"
	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type analyticsStore struct {
	usersCollection       *mongo.Collection
	tasksCollection       *mongo.Collection
	submissionsCollection *mongo.Collection
	forumsCollection      *mongo.Collection
}

// NewAnalyticsStore returns a MongoDB-based implementation of the
// core.AnalyticsStore interface. It is read-only across several collections.
func NewAnalyticsStore(
	database *mongo.Database,
) (core.AnalyticsStore, error) {
	return &analyticsStore{
		usersCollection:       database.Collection("users"),
		tasksCollection:       database.Collection("tasks"),
		submissionsCollection: database.Collection("submissions"),
		forumsCollection:      database.Collection("forums"),
	}, nil
}

func (a *analyticsStore) Overview(
	ctx context.Context,
) (sdkCore.PlatformOverview, error) {
	overview := sdkCore.PlatformOverview{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "PlatformOverview",
		},
		RecentUsers:       []sdkCore.User{},
		RecentSubmissions: []sdkCore.SubmissionDigest{},
	}
	var err error
	if overview.TotalUsers, err =
		a.usersCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return overview, errors.Wrap(err, "error counting users")
	}
	if overview.TotalTasks, err =
		a.tasksCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return overview, errors.Wrap(err, "error counting tasks")
	}
	if overview.TotalSubmissions, err =
		a.submissionsCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return overview, errors.Wrap(err, "error counting submissions")
	}
	if overview.TotalForums, err =
		a.forumsCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return overview, errors.Wrap(err, "error counting forums")
	}

	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(5)
	cur, err := a.usersCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return overview, errors.Wrap(err, "error finding recent users")
	}
	if err = cur.All(ctx, &overview.RecentUsers); err != nil {
		return overview, errors.Wrap(err, "error decoding recent users")
	}

	// Recent submissions are joined with user and task documents so callers
	// get names instead of ids.
	cur, err = a.submissionsCollection.Aggregate(
		ctx,
		bson.A{
			bson.M{"$sort": bson.M{"submitted_at": -1}},
			bson.M{"$limit": 5},
			bson.M{
				"$lookup": bson.M{
					"from":         "users",
					"localField":   "user_id",
					"foreignField": "_id",
					"as":           "user",
				},
			},
			bson.M{
				"$lookup": bson.M{
					"from":         "tasks",
					"localField":   "task_id",
					"foreignField": "_id",
					"as":           "task",
				},
			},
			bson.M{
				"$project": bson.M{
					"status":       1,
					"submitted_at": 1,
					"username": bson.M{
						"$arrayElemAt": bson.A{"$user.username", 0},
					},
					"task_title": bson.M{
						"$arrayElemAt": bson.A{"$task.title", 0},
					},
				},
			},
		},
	)
	if err != nil {
		return overview, errors.Wrap(err, "error finding recent submissions")
	}
	if err = cur.All(ctx, &overview.RecentSubmissions); err != nil {
		return overview, errors.Wrap(err, "error decoding recent submissions")
	}
	return overview, nil
}

func (a *analyticsStore) Registrations(
	ctx context.Context,
) (sdkCore.RegistrationReport, error) {
	report := sdkCore.RegistrationReport{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "RegistrationReport",
		},
		Daily:   []sdkCore.DailyCount{},
		ByTrack: map[string]int64{},
	}
	cur, err := a.usersCollection.Aggregate(
		ctx,
		bson.A{
			bson.M{
				"$group": bson.M{
					"_id": bson.M{
						"$dateToString": bson.M{
							"format": "%Y-%m-%d",
							"date":   "$created_at",
						},
					},
					"count": bson.M{
						"$sum": 1,
					},
				},
			},
			bson.M{"$sort": bson.M{"_id": 1}},
		},
	)
	if err != nil {
		return report, errors.Wrap(err, "error grouping registrations by day")
	}
	if err = cur.All(ctx, &report.Daily); err != nil {
		return report, errors.Wrap(err, "error decoding daily registrations")
	}

	cur, err = a.usersCollection.Aggregate(
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
		return report, errors.Wrap(
			err,
			"error grouping registrations by track",
		)
	}
	trackCounts := []struct {
		Track string `bson:"_id"`
		Count int64  `bson:"count"`
	}{}
	if err = cur.All(ctx, &trackCounts); err != nil {
		return report, errors.Wrap(err, "error decoding track registrations")
	}
	for _, trackCount := range trackCounts {
		report.ByTrack[trackCount.Track] = trackCount.Count
	}
	return report, nil
}

func (a *analyticsStore) TaskPerformance(
	ctx context.Context,
) (sdkCore.TaskPerformanceReport, error) {
	report := sdkCore.TaskPerformanceReport{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "TaskPerformanceReport",
		},
		Items: []sdkCore.TaskPerformance{},
	}
	cur, err := a.submissionsCollection.Aggregate(
		ctx,
		bson.A{
			bson.M{
				"$group": bson.M{
					"_id": "$task_id",
					"total": bson.M{
						"$sum": 1,
					},
					"approved": bson.M{
						"$sum": bson.M{
							"$cond": bson.A{
								bson.M{
									"$eq": bson.A{"$status", "approved"},
								},
								1,
								0,
							},
						},
					},
				},
			},
			bson.M{
				"$lookup": bson.M{
					"from":         "tasks",
					"localField":   "_id",
					"foreignField": "_id",
					"as":           "task",
				},
			},
			bson.M{
				"$project": bson.M{
					"total":    1,
					"approved": 1,
					"title": bson.M{
						"$arrayElemAt": bson.A{"$task.title", 0},
					},
					"track": bson.M{
						"$arrayElemAt": bson.A{"$task.track", 0},
					},
				},
			},
		},
	)
	if err != nil {
		return report, errors.Wrap(
			err,
			"error grouping submissions by task",
		)
	}
	if err = cur.All(ctx, &report.Items); err != nil {
		return report, errors.Wrap(err, "error decoding task performance")
	}
	for i, item := range report.Items {
		if item.Total > 0 {
			report.Items[i].CompletionRate =
				float64(item.Approved) / float64(item.Total)
		}
	}
	sort.Slice(report.Items, func(i, j int) bool {
		return report.Items[i].CompletionRate >
			report.Items[j].CompletionRate
	})
	return report, nil
}

func (a *analyticsStore) Points(
	ctx context.Context,
	limit int64,
) (sdkCore.PointsReport, error) {
	report := sdkCore.PointsReport{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "PointsReport",
		},
		Leaders:       []sdkCore.PointsLeader{},
		TrackAverages: map[string]float64{},
	}
	cur, err := a.usersCollection.Aggregate(
		ctx,
		bson.A{
			bson.M{"$sort": bson.M{"stats.points": -1}},
			bson.M{"$limit": limit},
			bson.M{
				"$project": bson.M{
					"username":        1,
					"track":           "$profile.coding_track",
					"points":          "$stats.points",
					"tasks_completed": "$stats.tasks_completed",
				},
			},
		},
	)
	if err != nil {
		return report, errors.Wrap(err, "error finding points leaders")
	}
	if err = cur.All(ctx, &report.Leaders); err != nil {
		return report, errors.Wrap(err, "error decoding points leaders")
	}

	cur, err = a.usersCollection.Aggregate(
		ctx,
		bson.A{
			bson.M{
				"$group": bson.M{
					"_id": "$profile.coding_track",
					"average": bson.M{
						"$avg": "$stats.points",
					},
				},
			},
		},
	)
	if err != nil {
		return report, errors.Wrap(err, "error averaging points by track")
	}
	trackAverages := []struct {
		Track   string  `bson:"_id"`
		Average float64 `bson:"average"`
	}{}
	if err = cur.All(ctx, &trackAverages); err != nil {
		return report, errors.Wrap(err, "error decoding track averages")
	}
	for _, trackAverage := range trackAverages {
		report.TrackAverages[trackAverage.Track] = trackAverage.Average
	}
	return report, nil
}
