package main

import (
	"fmt"
	"time"

	"github.com/innoverse/admin/sdk/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func taskCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("task create requires no arguments")
	}

	// Command-specific flags
	task := core.Task{
		Title:        c.String(flagTitle),
		Description:  c.String(flagDescription),
		Track:        c.String(flagTrack),
		Difficulty:   c.String(flagDifficulty),
		Points:       c.Int(flagPoints),
		Requirements: c.StringSlice(flagRequired),
	}
	if dueDate := c.String(flagDueDate); dueDate != "" {
		due, err := time.Parse("2006-01-02", dueDate)
		if err != nil {
			return errors.Wrapf(
				err,
				"error parsing due date %q; please use YYYY-MM-DD",
				dueDate,
			)
		}
		task.DueDate = &due
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting inno-admin client")
	}

	task, err = client.Core().Tasks().Create(c.Context, task)
	if err != nil {
		return err
	}

	fmt.Printf("Created task %s.\n", task.ID.Hex())
	return nil
}
