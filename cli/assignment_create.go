package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func assignmentCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 2 {
		return errors.New(
			"assignment create requires two arguments-- a task ID and a " +
				"user ID",
		)
	}
	taskID := c.Args().Get(0)
	userID := c.Args().Get(1)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting inno-admin client")
	}

	assignment, err :=
		client.Core().Assignments().Create(c.Context, taskID, userID)
	if err != nil {
		return err
	}

	fmt.Printf("Created assignment %s.\n", assignment.ID.Hex())
	return nil
}
