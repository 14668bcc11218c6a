package core

import (
	"context"
	"crypto/tls"
	"net/http"
	"strconv"
	"time"

	"github.com/innoverse/admin/sdk/internal/restmachinery"
	"github.com/innoverse/admin/sdk/meta"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionDigest is a submission joined with its submitter's username and
// task title for display purposes.
type SubmissionDigest struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Username  string             `json:"username" bson:"username"`
	TaskTitle string             `json:"taskTitle" bson:"task_title"`
	Status    string             `json:"status" bson:"status"`
	Submitted time.Time          `json:"submitted" bson:"submitted_at"`
}

// PlatformOverview summarizes platform-wide totals and recent activity.
type PlatformOverview struct {
	meta.TypeMeta     `json:",inline"`
	TotalUsers        int64              `json:"totalUsers"`
	TotalTasks        int64              `json:"totalTasks"`
	TotalSubmissions  int64              `json:"totalSubmissions"`
	TotalForums       int64              `json:"totalForums"`
	RecentUsers       []User             `json:"recentUsers"`
	RecentSubmissions []SubmissionDigest `json:"recentSubmissions"`
}

// DailyCount is a date (YYYY-MM-DD) paired with an event count.
type DailyCount struct {
	Date  string `json:"date" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// RegistrationReport breaks user registrations down by day and by coding
// track.
type RegistrationReport struct {
	meta.TypeMeta `json:",inline"`
	Daily         []DailyCount     `json:"daily"`
	ByTrack       map[string]int64 `json:"byTrack"`
}

// TaskPerformance reports how a single task is faring across all
// submissions.
type TaskPerformance struct {
	TaskID         primitive.ObjectID `json:"taskID" bson:"_id"`
	Title          string             `json:"title" bson:"title"`
	Track          string             `json:"track" bson:"track"`
	Total          int64              `json:"total" bson:"total"`
	Approved       int64              `json:"approved" bson:"approved"`
	CompletionRate float64            `json:"completionRate" bson:"completion_rate"`
}

// TaskPerformanceReport lists task performance, best completion rate first.
type TaskPerformanceReport struct {
	meta.TypeMeta `json:",inline"`
	Items         []TaskPerformance `json:"items"`
}

// PointsLeader is one row of the points leaderboard.
type PointsLeader struct {
	Username       string `json:"username" bson:"username"`
	Track          string `json:"track" bson:"track"`
	Points         int64  `json:"points" bson:"points"`
	TasksCompleted int64  `json:"tasksCompleted" bson:"tasks_completed"`
}

// PointsReport carries the leaderboard and per-track point averages.
type PointsReport struct {
	meta.TypeMeta `json:",inline"`
	Leaders       []PointsLeader     `json:"leaders"`
	TrackAverages map[string]float64 `json:"trackAverages"`
}

// AnalyticsClient is the specialized client for platform analytics.
type AnalyticsClient interface {
	// Overview returns platform-wide totals and recent activity.
	Overview(context.Context) (PlatformOverview, error)
	// Registrations returns registration counts by day and by track.
	Registrations(context.Context) (RegistrationReport, error)
	// TaskPerformance returns per-task submission outcomes sorted by
	// completion rate.
	TaskPerformance(context.Context) (TaskPerformanceReport, error)
	// Points returns the top-limit points leaderboard and per-track averages.
	Points(ctx context.Context, limit int64) (PointsReport, error)
}

type analyticsClient struct {
	*restmachinery.BaseClient
}

// NewAnalyticsClient returns a specialized client for platform analytics.
func NewAnalyticsClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) AnalyticsClient {
	return &analyticsClient{
		BaseClient: &restmachinery.BaseClient{
			APIAddress: apiAddress,
			APIToken:   apiToken,
			HTTPClient: &http.Client{
				Transport: &http.Transport{
					TLSClientConfig: &tls.Config{
						InsecureSkipVerify: allowInsecure, // nolint: gosec
					},
				},
			},
		},
	}
}

func (a *analyticsClient) Overview(
	ctx context.Context,
) (PlatformOverview, error) {
	overview := PlatformOverview{}
	return overview, a.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/analytics/overview",
			AuthHeaders: a.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
			RespObj:     &overview,
		},
	)
}

func (a *analyticsClient) Registrations(
	ctx context.Context,
) (RegistrationReport, error) {
	report := RegistrationReport{}
	return report, a.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/analytics/registrations",
			AuthHeaders: a.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
			RespObj:     &report,
		},
	)
}

func (a *analyticsClient) TaskPerformance(
	ctx context.Context,
) (TaskPerformanceReport, error) {
	report := TaskPerformanceReport{}
	return report, a.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/analytics/task-performance",
			AuthHeaders: a.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
			RespObj:     &report,
		},
	)
}

func (a *analyticsClient) Points(
	ctx context.Context,
	limit int64,
) (PointsReport, error) {
	report := PointsReport{}
	queryParams := map[string]string{}
	if limit > 0 {
		queryParams["limit"] = strconv.FormatInt(limit, 10)
	}
	return report, a.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/analytics/points",
			AuthHeaders: a.BearerTokenAuthHeaders(),
			QueryParams: queryParams,
			SuccessCode: http.StatusOK,
			RespObj:     &report,
		},
	)
}
