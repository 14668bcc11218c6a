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

func userList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("user list requires no arguments")
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

	selector := core.UsersSelector{
		Track: c.String(flagTrack),
	}
	if c.IsSet(flagActive) {
		active := c.Bool(flagActive)
		selector.Active = &active
	}

	users, err := client.Core().Users().List(c.Context, selector)
	if err != nil {
		return err
	}

	if len(users.Items) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow(
			"USERNAME",
			"EMAIL",
			"TRACK",
			"POINTS",
			"TASKS",
			"REGISTERED",
			"ACTIVE?",
		)
		for _, user := range users.Items {
			table.AddRow(
				user.Username,
				user.Email,
				core.TrackName(user.Profile.CodingTrack),
				user.Stats.Points,
				user.Stats.TasksCompleted,
				user.Registered,
				user.IsActive,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(users)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list users operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(users, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list users operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
