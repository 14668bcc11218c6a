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

// UserProfile encapsulates a student's learning preferences.
type UserProfile struct {
	CodingTrack string `json:"codingTrack" bson:"coding_track"`
}

// UserStats encapsulates a student's cumulative progress. It is mutated only
// as a side effect of submission review.
type UserStats struct {
	Points         int64 `json:"points" bson:"points"`
	TasksCompleted int64 `json:"tasksCompleted" bson:"tasks_completed"`
}

// User represents a student registered on the platform. The admin surface is
// strictly read-only with respect to users.
type User struct {
	meta.TypeMeta `json:",inline" bson:",inline"`
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Username      string             `json:"username" bson:"username"`
	Email         string             `json:"email" bson:"email"`
	IsActive      bool               `json:"isActive" bson:"is_active"`
	Registered    time.Time          `json:"registered" bson:"created_at"`
	Profile       UserProfile        `json:"profile" bson:"profile"`
	Stats         UserStats          `json:"stats" bson:"stats"`
}

// UserList is an ordered list of Users, newest registrations first.
type UserList struct {
	meta.TypeMeta `json:",inline"`
	Items         []User `json:"items"`
}

// UsersSelector represents useful criteria for selecting Users for listing.
type UsersSelector struct {
	// Track, if non-empty, selects only users enrolled in that coding track.
	Track string
	// Active, if non-nil, selects only users whose is_active flag matches.
	Active *bool
}

// UserTrackCounts reports how many users are enrolled in each coding track.
type UserTrackCounts struct {
	meta.TypeMeta `json:",inline"`
	Counts        map[string]int64 `json:"counts"`
}

// UsersClient is the specialized client for browsing Users.
type UsersClient interface {
	// List returns users matching the selector, newest first.
	List(context.Context, UsersSelector) (UserList, error)
	// Get retrieves a single user by id.
	Get(ctx context.Context, id string) (User, error)
	// TrackCounts returns per-track enrollment counts.
	TrackCounts(context.Context) (UserTrackCounts, error)
}

type usersClient struct {
	*restmachinery.BaseClient
}

// NewUsersClient returns a specialized client for browsing Users.
func NewUsersClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) UsersClient {
	return &usersClient{
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

func (u *usersClient) List(
	ctx context.Context,
	selector UsersSelector,
) (UserList, error) {
	users := UserList{}
	queryParams := map[string]string{}
	if selector.Track != "" {
		queryParams["track"] = selector.Track
	}
	if selector.Active != nil {
		queryParams["active"] = strconv.FormatBool(*selector.Active)
	}
	return users, u.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/users",
			AuthHeaders: u.BearerTokenAuthHeaders(),
			QueryParams: queryParams,
			SuccessCode: http.StatusOK,
			RespObj:     &users,
		},
	)
}

func (u *usersClient) Get(ctx context.Context, id string) (User, error) {
	user := User{}
	return user, u.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/users/" + id,
			AuthHeaders: u.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
			RespObj:     &user,
		},
	)
}

func (u *usersClient) TrackCounts(
	ctx context.Context,
) (UserTrackCounts, error) {
	counts := UserTrackCounts{}
	return counts, u.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/users/track-counts",
			AuthHeaders: u.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
			RespObj:     &counts,
		},
	)
}
