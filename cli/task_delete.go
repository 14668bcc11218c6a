package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func taskDelete(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"task delete requires one argument-- a task ID",
		)
	}
	id := c.Args().Get(0)

	confirmed, err := confirmed(c)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting inno-admin client")
	}

	if err := client.Core().Tasks().Delete(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Deleted task %s.\n", id)
	return nil
}
