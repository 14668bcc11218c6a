package mongodb

import (
	"context"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const envconfigPrefix = "MONGODB"

// Timeout bounds every individual datastore round trip.
const Timeout = 5 * time.Second

type config struct {
	ConnectionString string `envconfig:"CONNECTION_STRING" required:"true"`
	Database         string `envconfig:"DATABASE" default:"Cluster0"`
}

// Database returns a connection to the MongoDB database specified by
// environment variables.
func Database() (*mongo.Database, error) {
	c := config{}
	if err := envconfig.Process(envconfigPrefix, &c); err != nil {
		return nil, errors.Wrap(
			err,
			"error getting mongo configuration from environment",
		)
	}

	connectCtx, connectCancel :=
		context.WithTimeout(context.Background(), 10*time.Second)
	defer connectCancel()
	client, err := mongo.Connect(
		connectCtx,
		options.Client().ApplyURI(c.ConnectionString).SetWriteConcern(
			writeconcern.New(writeconcern.WMajority()),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "error connecting to mongo")
	}
	return client.Database(c.Database), nil
}
