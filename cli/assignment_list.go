package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func assignmentList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("assignment list requires no arguments")
	}

	// Command-specific flags
	limit := c.Int64(flagLimit)
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting inno-admin client")
	}

	assignments, err := client.Core().Assignments().ListRecent(c.Context, limit)
	if err != nil {
		return err
	}

	if len(assignments.Items) == 0 {
		fmt.Println("No assignments found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "TASK", "USER", "TYPE", "ASSIGNED BY", "ASSIGNED")
		for _, assignment := range assignments.Items {
			table.AddRow(
				assignment.ID.Hex(),
				assignment.TaskID.Hex(),
				assignment.UserID.Hex(),
				assignment.Type,
				assignment.AssignedBy,
				assignment.Assigned,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(assignments)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list assignments operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(assignments, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list assignments operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
