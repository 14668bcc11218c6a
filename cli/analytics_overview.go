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

func analyticsOverview(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("analytics overview requires no arguments")
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

	overview, err := client.Core().Analytics().Overview(c.Context)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("USERS", "TASKS", "SUBMISSIONS", "FORUMS")
		table.AddRow(
			overview.TotalUsers,
			overview.TotalTasks,
			overview.TotalSubmissions,
			overview.TotalForums,
		)
		fmt.Println(table)

		if len(overview.RecentUsers) > 0 {
			fmt.Println("\nRecent registrations:")
			usersTable := uitable.New()
			usersTable.AddRow("USERNAME", "EMAIL", "REGISTERED")
			for _, user := range overview.RecentUsers {
				usersTable.AddRow(user.Username, user.Email, user.Registered)
			}
			fmt.Println(usersTable)
		}

		if len(overview.RecentSubmissions) > 0 {
			fmt.Println("\nRecent submissions:")
			submissionsTable := uitable.New()
			submissionsTable.AddRow("USER", "TASK", "STATUS", "SUBMITTED")
			for _, submission := range overview.RecentSubmissions {
				submissionsTable.AddRow(
					submission.Username,
					submission.TaskTitle,
					submission.Status,
					submission.Submitted,
				)
			}
			fmt.Println(submissionsTable)
		}

	case "yaml":
		yamlBytes, err := yaml.Marshal(overview)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from analytics overview operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(overview, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from analytics overview operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
