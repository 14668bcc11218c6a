package core

// APIClient is the root of a tree of more specialized clients for managing
// the platform's core resources.
type APIClient interface {
	// Users returns a specialized client for browsing Users.
	Users() UsersClient
	// Tasks returns a specialized client for managing Tasks.
	Tasks() TasksClient
	// Assignments returns a specialized client for managing Assignments.
	Assignments() AssignmentsClient
	// Submissions returns a specialized client for managing Submissions.
	Submissions() SubmissionsClient
	// Forums returns a specialized client for managing Forums.
	Forums() ForumsClient
	// Analytics returns a specialized client for platform analytics.
	Analytics() AnalyticsClient
}

type apiClient struct {
	usersClient       UsersClient
	tasksClient       TasksClient
	assignmentsClient AssignmentsClient
	submissionsClient SubmissionsClient
	forumsClient      ForumsClient
	analyticsClient   AnalyticsClient
}

// NewAPIClient returns an APIClient for managing the platform's core
// resources.
func NewAPIClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) APIClient {
	return &apiClient{
		usersClient:       NewUsersClient(apiAddress, apiToken, allowInsecure),
		tasksClient:       NewTasksClient(apiAddress, apiToken, allowInsecure),
		assignmentsClient: NewAssignmentsClient(apiAddress, apiToken, allowInsecure),
		submissionsClient: NewSubmissionsClient(apiAddress, apiToken, allowInsecure),
		forumsClient:      NewForumsClient(apiAddress, apiToken, allowInsecure),
		analyticsClient:   NewAnalyticsClient(apiAddress, apiToken, allowInsecure),
	}
}

func (a *apiClient) Users() UsersClient {
	return a.usersClient
}

func (a *apiClient) Tasks() TasksClient {
	return a.tasksClient
}

func (a *apiClient) Assignments() AssignmentsClient {
	return a.assignmentsClient
}

func (a *apiClient) Submissions() SubmissionsClient {
	return a.submissionsClient
}

func (a *apiClient) Forums() ForumsClient {
	return a.forumsClient
}

func (a *apiClient) Analytics() AnalyticsClient {
	return a.analyticsClient
}
