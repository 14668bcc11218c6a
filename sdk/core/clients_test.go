package core

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/innoverse/admin/sdk/meta"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testAPIToken = "thisisafaketoken"

func TestNewAPIClient(t *testing.T) {
	client := NewAPIClient("http://localhost", testAPIToken, false)
	require.IsType(t, &apiClient{}, client)
	require.NotNil(t, client.Users())
	require.NotNil(t, client.Tasks())
	require.NotNil(t, client.Assignments())
	require.NotNil(t, client.Submissions())
	require.NotNil(t, client.Forums())
	require.NotNil(t, client.Analytics())
}

func TestUsersClientList(t *testing.T) {
	active := true
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/v2/users", r.URL.Path)
				require.Equal(t, "webdev", r.URL.Query().Get("track"))
				require.Equal(t, "true", r.URL.Query().Get("active"))
				require.Equal(
					t,
					"Bearer "+testAPIToken,
					r.Header.Get("Authorization"),
				)
				bodyBytes, err := json.Marshal(
					UserList{
						Items: []User{
							{
								ID:       primitive.NewObjectID(),
								Username: "jas",
							},
						},
					},
				)
				require.NoError(t, err)
				w.Write(bodyBytes) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testAPIToken, false)
	users, err := client.List(
		context.Background(),
		UsersSelector{Track: "webdev", Active: &active},
	)
	require.NoError(t, err)
	require.Len(t, users.Items, 1)
	require.Equal(t, "jas", users.Items[0].Username)
}

func TestTasksClientSetActive(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPut, r.Method)
				require.Equal(t, "/v2/tasks/abc123/active", r.URL.Path)
				status := TaskActiveStatus{}
				err := json.NewDecoder(r.Body).Decode(&status)
				require.NoError(t, err)
				require.False(t, status.Active)
			},
		),
	)
	defer server.Close()
	client := NewTasksClient(server.URL, testAPIToken, false)
	err := client.SetActive(context.Background(), "abc123", false)
	require.NoError(t, err)
}

func TestAssignmentsClientCreateConflict(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/v2/assignments", r.URL.Path)
				bodyBytes, err := json.Marshal(
					meta.NewErrConflict(
						"Assignment",
						"",
						"The task is already assigned to this user.",
					),
				)
				require.NoError(t, err)
				w.WriteHeader(http.StatusConflict)
				w.Write(bodyBytes) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := NewAssignmentsClient(server.URL, testAPIToken, false)
	_, err := client.Create(
		context.Background(),
		primitive.NewObjectID().Hex(),
		primitive.NewObjectID().Hex(),
	)
	require.Error(t, err)
	require.IsType(t, &meta.ErrConflict{}, err)
}

func TestSubmissionsClientReview(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPut, r.Method)
				require.Equal(t, "/v2/submissions/abc123/review", r.URL.Path)
				review := SubmissionReview{}
				err := json.NewDecoder(r.Body).Decode(&review)
				require.NoError(t, err)
				require.Equal(t, SubmissionStatusApproved, review.Status)
				require.Equal(t, 50, review.Points)
			},
		),
	)
	defer server.Close()
	client := NewSubmissionsClient(server.URL, testAPIToken, false)
	err := client.Review(
		context.Background(),
		"abc123",
		SubmissionReview{Status: SubmissionStatusApproved, Points: 50},
	)
	require.NoError(t, err)
}

func TestForumsClientRecentComments(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/v2/forums/abc123/comments", r.URL.Path)
				require.Equal(t, "5", r.URL.Query().Get("limit"))
				bodyBytes, err := json.Marshal(
					ForumCommentList{
						Items: []ForumComment{
							{
								ID:      "comment1",
								ForumID: "abc123",
								Author:  "jas",
								Created: time.Now(),
							},
						},
					},
				)
				require.NoError(t, err)
				w.Write(bodyBytes) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := NewForumsClient(server.URL, testAPIToken, false)
	comments, err := client.RecentComments(context.Background(), "abc123", 5)
	require.NoError(t, err)
	require.Len(t, comments.Items, 1)
	require.Equal(t, "jas", comments.Items[0].Author)
}

func TestAnalyticsClientOverview(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/v2/analytics/overview", r.URL.Path)
				bodyBytes, err := json.Marshal(
					PlatformOverview{TotalUsers: 42, TotalTasks: 7},
				)
				require.NoError(t, err)
				w.Write(bodyBytes) // nolint: errcheck
			},
		),
	)
	defer server.Close()
	client := NewAnalyticsClient(server.URL, testAPIToken, false)
	overview, err := client.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(42), overview.TotalUsers)
	require.Equal(t, int64(7), overview.TotalTasks)
}

func TestTrackName(t *testing.T) {
	require.Equal(t, "Web Development", TrackName("webdev"))
	require.Equal(t, "mystery", TrackName("mystery"))
}
