package core

import (
	"context"
	"sort"
	"time"

	sdkCore "github.com/innoverse/admin/sdk/core"
	"github.com/innoverse/admin/sdk/meta"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUsersStore struct {
	users map[primitive.ObjectID]sdkCore.User
}

func newFakeUsersStore(users ...sdkCore.User) *fakeUsersStore {
	store := &fakeUsersStore{
		users: map[primitive.ObjectID]sdkCore.User{},
	}
	for _, user := range users {
		store.users[user.ID] = user
	}
	return store
}

func (f *fakeUsersStore) List(
	_ context.Context,
	selector sdkCore.UsersSelector,
) (sdkCore.UserList, error) {
	users := sdkCore.UserList{Items: []sdkCore.User{}}
	for _, user := range f.users {
		if selector.Track != "" &&
			user.Profile.CodingTrack != selector.Track {
			continue
		}
		if selector.Active != nil && user.IsActive != *selector.Active {
			continue
		}
		users.Items = append(users.Items, user)
	}
	sort.Slice(users.Items, func(i, j int) bool {
		return users.Items[i].Registered.After(users.Items[j].Registered)
	})
	return users, nil
}

func (f *fakeUsersStore) Get(
	_ context.Context,
	id primitive.ObjectID,
) (sdkCore.User, error) {
	user, ok := f.users[id]
	if !ok {
		return user, meta.NewErrNotFound("User", id.Hex())
	}
	return user, nil
}

func (f *fakeUsersStore) CountByTrack(
	_ context.Context,
) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, user := range f.users {
		counts[user.Profile.CodingTrack]++
	}
	return counts, nil
}

func (f *fakeUsersStore) IncrementStats(
	_ context.Context,
	id primitive.ObjectID,
	points int,
) error {
	user, ok := f.users[id]
	if !ok {
		return meta.NewErrNotFound("User", id.Hex())
	}
	user.Stats.Points += int64(points)
	user.Stats.TasksCompleted++
	f.users[id] = user
	return nil
}

type fakeTasksStore struct {
	tasks map[primitive.ObjectID]sdkCore.Task
}

func newFakeTasksStore(tasks ...sdkCore.Task) *fakeTasksStore {
	store := &fakeTasksStore{
		tasks: map[primitive.ObjectID]sdkCore.Task{},
	}
	for _, task := range tasks {
		store.tasks[task.ID] = task
	}
	return store
}

func (f *fakeTasksStore) Create(
	_ context.Context,
	task sdkCore.Task,
) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTasksStore) List(
	_ context.Context,
	selector sdkCore.TasksSelector,
) (sdkCore.TaskList, error) {
	tasks := sdkCore.TaskList{Items: []sdkCore.Task{}}
	for _, task := range f.tasks {
		if selector.Track != "" && task.Track != selector.Track {
			continue
		}
		if selector.Difficulty != "" &&
			task.Difficulty != selector.Difficulty {
			continue
		}
		if selector.Active != nil && task.IsActive != *selector.Active {
			continue
		}
		tasks.Items = append(tasks.Items, task)
	}
	return tasks, nil
}

func (f *fakeTasksStore) Get(
	_ context.Context,
	id primitive.ObjectID,
) (sdkCore.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return task, meta.NewErrNotFound("Task", id.Hex())
	}
	return task, nil
}

func (f *fakeTasksStore) SetActive(
	_ context.Context,
	id primitive.ObjectID,
	active bool,
	when time.Time,
) error {
	task, ok := f.tasks[id]
	if !ok {
		return meta.NewErrNotFound("Task", id.Hex())
	}
	task.IsActive = active
	task.Updated = &when
	f.tasks[id] = task
	return nil
}

func (f *fakeTasksStore) Delete(
	_ context.Context,
	id primitive.ObjectID,
) error {
	if _, ok := f.tasks[id]; !ok {
		return meta.NewErrNotFound("Task", id.Hex())
	}
	delete(f.tasks, id)
	return nil
}

type fakeAssignmentsStore struct {
	assignments map[primitive.ObjectID]sdkCore.Assignment
}

func newFakeAssignmentsStore() *fakeAssignmentsStore {
	return &fakeAssignmentsStore{
		assignments: map[primitive.ObjectID]sdkCore.Assignment{},
	}
}

func (f *fakeAssignmentsStore) Create(
	_ context.Context,
	assignment sdkCore.Assignment,
) error {
	f.assignments[assignment.ID] = assignment
	return nil
}

func (f *fakeAssignmentsStore) Get(
	_ context.Context,
	id primitive.ObjectID,
) (sdkCore.Assignment, error) {
	assignment, ok := f.assignments[id]
	if !ok {
		return assignment, meta.NewErrNotFound("Assignment", id.Hex())
	}
	return assignment, nil
}

func (f *fakeAssignmentsStore) GetByTaskAndUser(
	_ context.Context,
	taskID primitive.ObjectID,
	userID primitive.ObjectID,
) (sdkCore.Assignment, error) {
	for _, assignment := range f.assignments {
		if assignment.TaskID == taskID && assignment.UserID == userID {
			return assignment, nil
		}
	}
	return sdkCore.Assignment{}, meta.NewErrNotFound("Assignment", "")
}

func (f *fakeAssignmentsStore) ListRecent(
	_ context.Context,
	limit int64,
) (sdkCore.AssignmentList, error) {
	assignments := sdkCore.AssignmentList{Items: []sdkCore.Assignment{}}
	for _, assignment := range f.assignments {
		assignments.Items = append(assignments.Items, assignment)
	}
	sort.Slice(assignments.Items, func(i, j int) bool {
		return assignments.Items[i].Assigned.After(
			assignments.Items[j].Assigned,
		)
	})
	if int64(len(assignments.Items)) > limit {
		assignments.Items = assignments.Items[:limit]
	}
	return assignments, nil
}

func (f *fakeAssignmentsStore) Delete(
	_ context.Context,
	id primitive.ObjectID,
) error {
	if _, ok := f.assignments[id]; !ok {
		return meta.NewErrNotFound("Assignment", id.Hex())
	}
	delete(f.assignments, id)
	return nil
}

type fakeSubmissionsStore struct {
	submissions map[primitive.ObjectID]sdkCore.Submission
}

func newFakeSubmissionsStore(
	submissions ...sdkCore.Submission,
) *fakeSubmissionsStore {
	store := &fakeSubmissionsStore{
		submissions: map[primitive.ObjectID]sdkCore.Submission{},
	}
	for _, submission := range submissions {
		store.submissions[submission.ID] = submission
	}
	return store
}

func (f *fakeSubmissionsStore) List(
	_ context.Context,
	selector sdkCore.SubmissionsSelector,
) (sdkCore.SubmissionList, error) {
	submissions := sdkCore.SubmissionList{Items: []sdkCore.Submission{}}
	for _, submission := range f.submissions {
		if selector.Status != "" && submission.Status != selector.Status {
			continue
		}
		submissions.Items = append(submissions.Items, submission)
	}
	sort.Slice(submissions.Items, func(i, j int) bool {
		if selector.OldestFirst {
			return submissions.Items[i].Submitted.Before(
				submissions.Items[j].Submitted,
			)
		}
		return submissions.Items[i].Submitted.After(
			submissions.Items[j].Submitted,
		)
	})
	return submissions, nil
}

func (f *fakeSubmissionsStore) Get(
	_ context.Context,
	id primitive.ObjectID,
) (sdkCore.Submission, error) {
	submission, ok := f.submissions[id]
	if !ok {
		return submission, meta.NewErrNotFound("Submission", id.Hex())
	}
	return submission, nil
}

func (f *fakeSubmissionsStore) UpdateReview(
	_ context.Context,
	id primitive.ObjectID,
	status string,
	points int,
	feedback string,
	when time.Time,
) error {
	submission, ok := f.submissions[id]
	if !ok {
		return meta.NewErrNotFound("Submission", id.Hex())
	}
	submission.Status = status
	submission.PointsAwarded = points
	submission.Feedback = feedback
	submission.Reviewed = &when
	f.submissions[id] = submission
	return nil
}

func (f *fakeSubmissionsStore) CountByStatus(
	_ context.Context,
) (sdkCore.SubmissionStats, error) {
	stats := sdkCore.SubmissionStats{}
	for _, submission := range f.submissions {
		stats.Total++
		switch submission.Status {
		case sdkCore.SubmissionStatusPending:
			stats.Pending++
		case sdkCore.SubmissionStatusApproved:
			stats.Approved++
		case sdkCore.SubmissionStatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}

type fakeForumsStore struct {
	forums   map[string]sdkCore.Forum
	comments map[string][]sdkCore.ForumComment
}

func newFakeForumsStore() *fakeForumsStore {
	return &fakeForumsStore{
		forums:   map[string]sdkCore.Forum{},
		comments: map[string][]sdkCore.ForumComment{},
	}
}

func (f *fakeForumsStore) Create(
	_ context.Context,
	forum sdkCore.Forum,
) error {
	f.forums[forum.ID] = forum
	return nil
}

func (f *fakeForumsStore) List(
	_ context.Context,
) (sdkCore.ForumList, error) {
	forums := sdkCore.ForumList{Items: []sdkCore.Forum{}}
	for _, forum := range f.forums {
		forum.CommentCount = int64(len(f.comments[forum.ID]))
		forums.Items = append(forums.Items, forum)
	}
	sort.Slice(forums.Items, func(i, j int) bool {
		return forums.Items[i].Created.After(forums.Items[j].Created)
	})
	return forums, nil
}

func (f *fakeForumsStore) Get(
	_ context.Context,
	id string,
) (sdkCore.Forum, error) {
	forum, ok := f.forums[id]
	if !ok {
		return forum, meta.NewErrNotFound("Forum", id)
	}
	return forum, nil
}

func (f *fakeForumsStore) Delete(_ context.Context, id string) error {
	if _, ok := f.forums[id]; !ok {
		return meta.NewErrNotFound("Forum", id)
	}
	delete(f.forums, id)
	return nil
}

func (f *fakeForumsStore) DeleteComments(
	_ context.Context,
	forumID string,
) error {
	delete(f.comments, forumID)
	return nil
}

func (f *fakeForumsStore) RecentComments(
	_ context.Context,
	forumID string,
	limit int64,
) (sdkCore.ForumCommentList, error) {
	comments := sdkCore.ForumCommentList{
		Items: append([]sdkCore.ForumComment{}, f.comments[forumID]...),
	}
	sort.Slice(comments.Items, func(i, j int) bool {
		return comments.Items[i].Created.After(comments.Items[j].Created)
	})
	if int64(len(comments.Items)) > limit {
		comments.Items = comments.Items[:limit]
	}
	return comments, nil
}
