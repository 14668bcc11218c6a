package oidc

import (
	"context"
	"errors"

	"github.com/coreos/go-oidc"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/oauth2"
)

const envconfigPrefix = "OIDC"

type config struct {
	Enabled bool `envconfig:"ENABLED"`
	// ProviderURL examples:
	//   Google: https://accounts.google.com
	//   Azure Active Directory: https://login.microsoftonline.com/{tenant id}/v2.0
	ProviderURL  string `envconfig:"PROVIDER_URL" default:"https://accounts.google.com"` // nolint: lll
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
	RedirectURL  string `envconfig:"REDIRECT_URL"`
}

// GetConfigAndVerifierFromEnvironment returns OAuth2 client configuration and
// an OIDC identity token verifier, all derived from environment variables. If
// OIDC-based authentication is not enabled, both will be nil.
func GetConfigAndVerifierFromEnvironment() (
	*oauth2.Config,
	*oidc.IDTokenVerifier,
	error,
) {
	c := config{}
	if err := envconfig.Process(envconfigPrefix, &c); err != nil {
		return nil, nil, err
	}

	if !c.Enabled {
		return nil, nil, nil // We're not using OIDC
	}

	if c.ClientID == "" {
		return nil, nil, errors.New(
			"with OIDC enabled, a value is required for the OIDC_CLIENT_ID " +
				"environment variable",
		)
	}
	if c.ClientSecret == "" {
		return nil, nil, errors.New(
			"with OIDC enabled, a value is required for the OIDC_CLIENT_SECRET " +
				"environment variable",
		)
	}
	if c.RedirectURL == "" {
		return nil, nil, errors.New(
			"with OIDC enabled, a value is required for the OIDC_REDIRECT_URL " +
				"environment variable",
		)
	}

	provider, err := oidc.NewProvider(context.TODO(), c.ProviderURL)
	if err != nil {
		return nil, nil, err
	}

	config := &oauth2.Config{
		Endpoint:     provider.Endpoint(),
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		// The email and profile scopes are what allow the callback to learn who
		// authenticated.
		Scopes: []string{oidc.ScopeOpenID, "profile", "email"},
	}

	verifier := provider.Verifier(
		&oidc.Config{
			ClientID: c.ClientID,
		},
	)

	return config, verifier, nil
}
