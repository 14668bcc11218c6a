package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/innoverse/admin/sdk/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func submissionList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("submission list requires no arguments")
	}

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting inno-admin client")
	}

	selector := core.SubmissionsSelector{
		Status:      c.String(flagStatus),
		OldestFirst: c.Bool(flagOldest),
	}

	submissions, err := client.Core().Submissions().List(c.Context, selector)
	if err != nil {
		return err
	}

	if len(submissions.Items) == 0 {
		fmt.Println("No submissions found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "TASK", "USER", "STATUS", "POINTS", "SUBMITTED")
		for _, submission := range submissions.Items {
			table.AddRow(
				submission.ID.Hex(),
				submission.TaskID.Hex(),
				submission.UserID.Hex(),
				submission.Status,
				submission.PointsAwarded,
				submission.Submitted,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(submissions)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list submissions operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(submissions, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list submissions operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
