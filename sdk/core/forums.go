package core

import (
	"context"
	"crypto/tls"
	"net/http"
	"strconv"
	"time"

	"github.com/innoverse/admin/sdk/internal/restmachinery"
	"github.com/innoverse/admin/sdk/meta"
)

// ForumCreator identifies who opened a forum.
type ForumCreator struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Forum represents a discussion space. Forums use string UUIDs as ids because
// their ids travel verbatim through comment documents.
type Forum struct {
	meta.TypeMeta `json:",inline" bson:",inline"`
	ID            string       `json:"id" bson:"_id"`
	Title         string       `json:"title" bson:"title"`
	Description   string       `json:"description" bson:"description"`
	CreatedBy     ForumCreator `json:"createdBy" bson:"created_by"`
	Created       time.Time    `json:"created" bson:"created_at"`
	// CommentCount is computed at read time and never persisted.
	CommentCount int64 `json:"commentCount" bson:"-"`
}

// ForumList is an ordered list of Forums, newest first.
type ForumList struct {
	meta.TypeMeta `json:",inline"`
	Items         []Forum `json:"items"`
}

// ForumComment represents a single post within a forum.
type ForumComment struct {
	meta.TypeMeta `json:",inline" bson:",inline"`
	ID            string    `json:"id" bson:"_id"`
	ForumID       string    `json:"forumID" bson:"forum_id"`
	Author        string    `json:"author" bson:"author"`
	Content       string    `json:"content" bson:"content"`
	Created       time.Time `json:"created" bson:"created_at"`
}

// ForumCommentList is an ordered list of ForumComments, newest first.
type ForumCommentList struct {
	meta.TypeMeta `json:",inline"`
	Items         []ForumComment `json:"items"`
}

// ForumsClient is the specialized client for managing Forums.
type ForumsClient interface {
	// Create opens a new forum.
	Create(context.Context, Forum) (Forum, error)
	// List returns all forums with their comment counts, newest first.
	List(context.Context) (ForumList, error)
	// Delete removes a forum and all of its comments.
	Delete(ctx context.Context, id string) error
	// RecentComments returns up to limit comments from a forum, newest first.
	RecentComments(
		ctx context.Context,
		forumID string,
		limit int64,
	) (ForumCommentList, error)
}

type forumsClient struct {
	*restmachinery.BaseClient
}

// NewForumsClient returns a specialized client for managing Forums.
func NewForumsClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) ForumsClient {
	return &forumsClient{
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

func (f *forumsClient) Create(
	ctx context.Context,
	forum Forum,
) (Forum, error) {
	createdForum := Forum{}
	return createdForum, f.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "v2/forums",
			AuthHeaders: f.BearerTokenAuthHeaders(),
			ReqBodyObj:  forum,
			SuccessCode: http.StatusCreated,
			RespObj:     &createdForum,
		},
	)
}

func (f *forumsClient) List(ctx context.Context) (ForumList, error) {
	forums := ForumList{}
	return forums, f.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/forums",
			AuthHeaders: f.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
			RespObj:     &forums,
		},
	)
}

func (f *forumsClient) Delete(ctx context.Context, id string) error {
	return f.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodDelete,
			Path:        "v2/forums/" + id,
			AuthHeaders: f.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
		},
	)
}

func (f *forumsClient) RecentComments(
	ctx context.Context,
	forumID string,
	limit int64,
) (ForumCommentList, error) {
	comments := ForumCommentList{}
	queryParams := map[string]string{}
	if limit > 0 {
		queryParams["limit"] = strconv.FormatInt(limit, 10)
	}
	return comments, f.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v2/forums/" + forumID + "/comments",
			AuthHeaders: f.BearerTokenAuthHeaders(),
			QueryParams: queryParams,
			SuccessCode: http.StatusOK,
			RespObj:     &comments,
		},
	)
}
