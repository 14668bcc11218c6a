package main

import (
	"context"
	"log"
	"time"

	"github.com/innoverse/admin/internal/version"
	"github.com/pkg/errors"
)

// sessionSweepInterval controls how often expired sessions are cleared out of
// the datastore. Token validation rejects expired sessions on its own; this
// just keeps dead records from piling up.
const sessionSweepInterval = time.Hour

func main() {
	log.Printf(
		"Innoverse Admin API Server -- version %s -- commit %s",
		version.Version(),
		version.Commit(),
	)

	server, sessionsService, err := getAPIServerFromEnvironment()
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		ticker := time.NewTicker(sessionSweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			count, err := sessionsService.SweepExpired(context.Background())
			if err != nil {
				log.Println(
					errors.Wrap(err, "error sweeping expired sessions"),
				)
				continue
			}
			if count > 0 {
				log.Printf("swept %d expired session(s)", count)
			}
		}
	}()

	log.Println(server.ListenAndServe())
}
