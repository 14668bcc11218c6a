package core

import (
	"context"

	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UsersService is the specialized interface for browsing Users. The admin
// surface never creates or mutates users directly; their stats change only as
// a side effect of submission review.
type UsersService interface {
	// List returns users matching the selector, newest registrations first.
	List(
		ctx context.Context,
		selector sdkCore.UsersSelector,
	) (sdkCore.UserList, error)
	// Get retrieves a single user by id.
	Get(ctx context.Context, id string) (sdkCore.User, error)
	// TrackCounts returns per-track enrollment counts.
	TrackCounts(ctx context.Context) (sdkCore.UserTrackCounts, error)
}

// UsersStore is an interface for components that implement User persistence
// concerns.
type UsersStore interface {
	List(
		ctx context.Context,
		selector sdkCore.UsersSelector,
	) (sdkCore.UserList, error)
	Get(ctx context.Context, id primitive.ObjectID) (sdkCore.User, error)
	CountByTrack(ctx context.Context) (map[string]int64, error)
	// IncrementStats adds the provided points to a user's point total and
	// bumps their completed-task count by one.
	IncrementStats(
		ctx context.Context,
		id primitive.ObjectID,
		points int,
	) error
}

type usersService struct {
	usersStore UsersStore
}

// NewUsersService returns a specialized interface for browsing Users.
func NewUsersService(usersStore UsersStore) UsersService {
	return &usersService{
		usersStore: usersStore,
	}
}

func (u *usersService) List(
	ctx context.Context,
	selector sdkCore.UsersSelector,
) (sdkCore.UserList, error) {
	users, err := u.usersStore.List(ctx, selector)
	if err != nil {
		return users, errors.Wrap(err, "error retrieving users from store")
	}
	return users, nil
}

func (u *usersService) Get(
	ctx context.Context,
	id string,
) (sdkCore.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return sdkCore.User{}, meta.NewErrNotFound("User", id)
	}
	user, err := u.usersStore.Get(ctx, objectID)
	if err != nil {
		return user, errors.Wrapf(
			err,
			"error retrieving user %q from store",
			id,
		)
	}
	return user, nil
}

func (u *usersService) TrackCounts(
	ctx context.Context,
) (sdkCore.UserTrackCounts, error) {
	counts, err := u.usersStore.CountByTrack(ctx)
	if err != nil {
		return sdkCore.UserTrackCounts{}, errors.Wrap(
			err,
			"error counting users by track",
		)
	}
	return sdkCore.UserTrackCounts{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "UserTrackCounts",
		},
		Counts: counts,
	}, nil
}
