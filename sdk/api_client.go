package sdk

import (
	"github.com/innoverse/admin/sdk/authx"
	"github.com/innoverse/admin/sdk/core"
)

// APIClient is the root of a tree of more specialized API clients within the
// SDK.
type APIClient interface {
	// Authx returns a specialized client for managing authentication
	// concerns.
	Authx() authx.APIClient
	// Core returns a specialized client for managing the platform's core
	// resources.
	Core() core.APIClient
}

type apiClient struct {
	authxClient authx.APIClient
	coreClient  core.APIClient
}

// NewAPIClient returns an APIClient.
func NewAPIClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) APIClient {
	return &apiClient{
		authxClient: authx.NewAPIClient(apiAddress, apiToken, allowInsecure),
		coreClient:  core.NewAPIClient(apiAddress, apiToken, allowInsecure),
	}
}

func (a *apiClient) Authx() authx.APIClient {
	return a.authxClient
}

func (a *apiClient) Core() core.APIClient {
	return a.coreClient
}
