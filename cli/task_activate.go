package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func taskActivate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"task activate requires one argument-- a task ID",
		)
	}
	id := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting inno-admin client")
	}

	if err := client.Core().Tasks().SetActive(c.Context, id, true); err != nil {
		return err
	}

	fmt.Printf("Activated task %s.\n", id)
	return nil
}

func taskDeactivate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"task deactivate requires one argument-- a task ID",
		)
	}
	id := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting inno-admin client")
	}

	if err :=
		client.Core().Tasks().SetActive(c.Context, id, false); err != nil {
		return err
	}

	fmt.Printf("Deactivated task %s.\n", id)
	return nil
}
