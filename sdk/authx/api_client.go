package authx

// APIClient is the root of a tree of more specialized clients for managing
// platform authentication concerns.
type APIClient interface {
	// Sessions returns a specialized client for managing Sessions.
	Sessions() SessionsClient
}

type apiClient struct {
	sessionsClient SessionsClient
}

// NewAPIClient returns an APIClient for managing platform authentication
// concerns.
func NewAPIClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) APIClient {
	return &apiClient{
		sessionsClient: NewSessionsClient(apiAddress, apiToken, allowInsecure),
	}
}

func (a *apiClient) Sessions() SessionsClient {
	return a.sessionsClient
}
