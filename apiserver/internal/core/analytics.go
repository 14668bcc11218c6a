package core

import (
	"context"

	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/pkg/errors"
)

// AnalyticsService is the specialized interface for platform analytics.
type AnalyticsService interface {
	// Overview returns platform-wide totals and recent activity.
	Overview(ctx context.Context) (sdkCore.PlatformOverview, error)
	// Registrations returns registration counts by day and by track.
	Registrations(ctx context.Context) (sdkCore.RegistrationReport, error)
	// TaskPerformance returns per-task submission outcomes, best completion
	// rate first.
	TaskPerformance(
		ctx context.Context,
	) (sdkCore.TaskPerformanceReport, error)
	// Points returns the top-limit points leaderboard and per-track
	// averages.
	Points(ctx context.Context, limit int64) (sdkCore.PointsReport, error)
}

// AnalyticsStore is an interface for components that implement the read-side
// aggregations behind platform analytics.
type AnalyticsStore interface {
	Overview(ctx context.Context) (sdkCore.PlatformOverview, error)
	Registrations(ctx context.Context) (sdkCore.RegistrationReport, error)
	TaskPerformance(
		ctx context.Context,
	) (sdkCore.TaskPerformanceReport, error)
	Points(ctx context.Context, limit int64) (sdkCore.PointsReport, error)
}

type analyticsService struct {
	analyticsStore AnalyticsStore
}

// NewAnalyticsService returns a specialized interface for platform
// analytics.
func NewAnalyticsService(analyticsStore AnalyticsStore) AnalyticsService {
	return &analyticsService{
		analyticsStore: analyticsStore,
	}
}

func (a *analyticsService) Overview(
	ctx context.Context,
) (sdkCore.PlatformOverview, error) {
	overview, err := a.analyticsStore.Overview(ctx)
	if err != nil {
		return overview, errors.Wrap(err, "error building platform overview")
	}
	return overview, nil
}

func (a *analyticsService) Registrations(
	ctx context.Context,
) (sdkCore.RegistrationReport, error) {
	report, err := a.analyticsStore.Registrations(ctx)
	if err != nil {
		return report, errors.Wrap(err, "error building registration report")
	}
	return report, nil
}

func (a *analyticsService) TaskPerformance(
	ctx context.Context,
) (sdkCore.TaskPerformanceReport, error) {
	report, err := a.analyticsStore.TaskPerformance(ctx)
	if err != nil {
		return report, errors.Wrap(
			err,
			"error building task performance report",
		)
	}
	return report, nil
}

func (a *analyticsService) Points(
	ctx context.Context,
	limit int64,
) (sdkCore.PointsReport, error) {
	if limit <= 0 {
		limit = 10
	}
	report, err := a.analyticsStore.Points(ctx, limit)
	if err != nil {
		return report, errors.Wrap(err, "error building points report")
	}
	return report, nil
}
