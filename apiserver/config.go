package main

import (
	"context"

	"github.com/innoverse/admin/apiserver/internal/authx"
	authxMongodb "github.com/innoverse/admin/apiserver/internal/authx/mongodb"
	authxREST "github.com/innoverse/admin/apiserver/internal/authx/rest"
	"github.com/innoverse/admin/apiserver/internal/core"
	coreMongodb "github.com/innoverse/admin/apiserver/internal/core/mongodb"
	coreREST "github.com/innoverse/admin/apiserver/internal/core/rest"
	"github.com/innoverse/admin/apiserver/internal/lib/mongodb"
	"github.com/innoverse/admin/apiserver/internal/lib/oidc"
	"github.com/innoverse/admin/apiserver/internal/lib/restmachinery"
	"github.com/pkg/errors"
)

// getAPIServerFromEnvironment assembles the whole API server: configuration,
// the datastore, domain services, and REST endpoints.
func getAPIServerFromEnvironment() (
	restmachinery.Server,
	authx.SessionsService,
	error,
) {
	apiConfig, err := restmachinery.GetConfigFromEnvironment()
	if err != nil {
		return nil, nil, errors.Wrap(
			err,
			"error getting api server configuration from environment",
		)
	}

	database, err := mongodb.Database()
	if err != nil {
		return nil, nil, errors.Wrap(err, "error connecting to database")
	}

	sessionsStore, err := authxMongodb.NewSessionsStore(database)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error initializing sessions store")
	}
	adminsStore, err := authxMongodb.NewAdminsStore(database)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error initializing admins store")
	}
	usersStore, err := coreMongodb.NewUsersStore(database)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error initializing users store")
	}
	tasksStore, err := coreMongodb.NewTasksStore(database)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error initializing tasks store")
	}
	assignmentsStore, err := coreMongodb.NewAssignmentsStore(database)
	if err != nil {
		return nil, nil, errors.Wrap(
			err,
			"error initializing assignments store",
		)
	}
	submissionsStore, err := coreMongodb.NewSubmissionsStore(database)
	if err != nil {
		return nil, nil, errors.Wrap(
			err,
			"error initializing submissions store",
		)
	}
	forumsStore, err := coreMongodb.NewForumsStore(database)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error initializing forums store")
	}
	analyticsStore, err := coreMongodb.NewAnalyticsStore(database)
	if err != nil {
		return nil, nil, errors.Wrap(
			err,
			"error initializing analytics store",
		)
	}

	oauth2Config, oidcTokenVerifier, err :=
		oidc.GetConfigAndVerifierFromEnvironment()
	if err != nil {
		return nil, nil, errors.Wrap(
			err,
			"error getting oidc configuration from environment",
		)
	}

	sessionsService := authx.NewSessionsService(
		sessionsStore,
		adminsStore,
		oauth2Config,
		oidcTokenVerifier,
	)
	usersService := core.NewUsersService(usersStore)
	tasksService := core.NewTasksService(tasksStore)
	assignmentsService := core.NewAssignmentsService(
		assignmentsStore,
		tasksStore,
		usersStore,
	)
	submissionsService := core.NewSubmissionsService(
		submissionsStore,
		usersStore,
	)
	forumsService := core.NewForumsService(forumsStore)
	analyticsService := core.NewAnalyticsService(analyticsStore)

	baseEndpoints := &restmachinery.BaseEndpoints{
		TokenAuthFilter: authxREST.NewTokenAuthFilter(
			sessionsService.Validate,
		),
	}

	server := restmachinery.NewServer(
		apiConfig,
		baseEndpoints,
		[]restmachinery.Endpoints{
			authxREST.NewSessionsEndpoints(baseEndpoints, sessionsService),
			coreREST.NewUsersEndpoints(baseEndpoints, usersService),
			coreREST.NewTasksEndpoints(baseEndpoints, tasksService),
			coreREST.NewAssignmentsEndpoints(
				baseEndpoints,
				assignmentsService,
			),
			coreREST.NewSubmissionsEndpoints(
				baseEndpoints,
				submissionsService,
			),
			coreREST.NewForumsEndpoints(baseEndpoints, forumsService),
			coreREST.NewAnalyticsEndpoints(baseEndpoints, analyticsService),
		},
		func() error {
			ctx, cancel :=
				context.WithTimeout(context.Background(), mongodb.Timeout)
			defer cancel()
			if err := database.Client().Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "error pinging database")
			}
			return nil
		},
	)

	return server, sessionsService, nil
}
