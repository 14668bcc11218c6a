package main

import (
	"fmt"

	"github.com/innoverse/admin/sdk/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func submissionReview(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"submission review requires one argument-- a submission ID",
		)
	}
	id := c.Args().Get(0)

	// Command-specific flags
	review := core.SubmissionReview{
		Status:   c.String(flagStatus),
		Points:   c.Int(flagPoints),
		Feedback: c.String(flagFeedback),
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting inno-admin client")
	}

	if err :=
		client.Core().Submissions().Review(c.Context, id, review); err != nil {
		return err
	}

	fmt.Printf("Reviewed submission %s as %s.\n", id, review.Status)
	return nil
}
