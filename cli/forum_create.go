package main

import (
	"fmt"

	"github.com/innoverse/admin/sdk/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func forumCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("forum create requires no arguments")
	}

	// Command-specific flags
	forum := core.Forum{
		Title:       c.String(flagTitle),
		Description: c.String(flagDescription),
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting inno-admin client")
	}

	forum, err = client.Core().Forums().Create(c.Context, forum)
	if err != nil {
		return err
	}

	fmt.Printf("Created forum %s.\n", forum.ID)
	return nil
}
