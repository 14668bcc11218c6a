package core

import (
	"context"
	"time"

	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionsService is the specialized interface for managing Submissions.
type SubmissionsService interface {
	// List returns submissions matching the selector.
	List(
		ctx context.Context,
		selector sdkCore.SubmissionsSelector,
	) (sdkCore.SubmissionList, error)
	// Stats returns submission counts by review state.
	Stats(ctx context.Context) (sdkCore.SubmissionStats, error)
	// Review records a verdict on a submission. Exactly when a submission
	// transitions INTO the approved state, the submitting user's point total
	// and completed-task count grow accordingly.
	Review(
		ctx context.Context,
		id string,
		review sdkCore.SubmissionReview,
	) error
}

// SubmissionsStore is an interface for components that implement Submission
// persistence concerns.
type SubmissionsStore interface {
	List(
		ctx context.Context,
		selector sdkCore.SubmissionsSelector,
	) (sdkCore.SubmissionList, error)
	Get(
		ctx context.Context,
		id primitive.ObjectID,
	) (sdkCore.Submission, error)
	UpdateReview(
		ctx context.Context,
		id primitive.ObjectID,
		status string,
		points int,
		feedback string,
		when time.Time,
	) error
	CountByStatus(ctx context.Context) (sdkCore.SubmissionStats, error)
}

type submissionsService struct {
	submissionsStore SubmissionsStore
	usersStore       UsersStore
}

// NewSubmissionsService returns a specialized interface for managing
// Submissions.
func NewSubmissionsService(
	submissionsStore SubmissionsStore,
	usersStore UsersStore,
) SubmissionsService {
	return &submissionsService{
		submissionsStore: submissionsStore,
		usersStore:       usersStore,
	}
}

func (s *submissionsService) List(
	ctx context.Context,
	selector sdkCore.SubmissionsSelector,
) (sdkCore.SubmissionList, error) {
	submissions, err := s.submissionsStore.List(ctx, selector)
	if err != nil {
		return submissions, errors.Wrap(
			err,
			"error retrieving submissions from store",
		)
	}
	return submissions, nil
}

func (s *submissionsService) Stats(
	ctx context.Context,
) (sdkCore.SubmissionStats, error) {
	stats, err := s.submissionsStore.CountByStatus(ctx)
	if err != nil {
		return stats, errors.Wrap(err, "error counting submissions")
	}
	return stats, nil
}

func (s *submissionsService) Review(
	ctx context.Context,
	id string,
	review sdkCore.SubmissionReview,
) error {
	switch review.Status {
	case sdkCore.SubmissionStatusPending,
		sdkCore.SubmissionStatusApproved,
		sdkCore.SubmissionStatusRejected:
	default:
		return meta.NewErrBadRequest(
			"The review status must be one of \"pending\", \"approved\", or " +
				"\"rejected\".",
		)
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return meta.NewErrNotFound("Submission", id)
	}
	submission, err := s.submissionsStore.Get(ctx, objectID)
	if err != nil {
		return errors.Wrapf(
			err,
			"error retrieving submission %q from store",
			id,
		)
	}
	if err = s.submissionsStore.UpdateReview(
		ctx,
		objectID,
		review.Status,
		review.Points,
		review.Feedback,
		time.Now().UTC(),
	); err != nil {
		return errors.Wrapf(err, "error updating submission %q", id)
	}
	// Points are awarded on the transition into approved and only then.
	// Re-approving an approved submission must not double-award.
	if review.Status == sdkCore.SubmissionStatusApproved &&
		submission.Status != sdkCore.SubmissionStatusApproved {
		if err = s.usersStore.IncrementStats(
			ctx,
			submission.UserID,
			review.Points,
		); err != nil {
			return errors.Wrapf(
				err,
				"error awarding points to user %q",
				submission.UserID.Hex(),
			)
		}
	}
	return nil
}
