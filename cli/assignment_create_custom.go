package main

import (
	"fmt"
	"time"

	"github.com/innoverse/admin/sdk/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func assignmentCreateCustom(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"assignment create-custom requires one argument-- a user ID",
		)
	}
	userID := c.Args().Get(0)

	// Command-specific flags
	customAssignment := core.CustomAssignment{
		UserID: userID,
		Task: core.Task{
			Title:        c.String(flagTitle),
			Description:  c.String(flagDescription),
			Track:        c.String(flagTrack),
			Difficulty:   c.String(flagDifficulty),
			Points:       c.Int(flagPoints),
			Requirements: c.StringSlice(flagRequired),
		},
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
		customAssignment.Task.DueDate = &due
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting inno-admin client")
	}

	assignment, err :=
		client.Core().Assignments().CreateCustom(c.Context, customAssignment)
	if err != nil {
		return err
	}

	fmt.Printf(
		"Created custom assignment %s for user %s.\n",
		assignment.ID.Hex(),
		userID,
	)
	return nil
}
