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

func taskList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("task list requires no arguments")
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

	selector := core.TasksSelector{
		Track:      c.String(flagTrack),
		Difficulty: c.String(flagDifficulty),
	}
	if c.IsSet(flagActive) {
		active := c.Bool(flagActive)
		selector.Active = &active
	}

	tasks, err := client.Core().Tasks().List(c.Context, selector)
	if err != nil {
		return err
	}

	if len(tasks.Items) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow(
			"ID",
			"TITLE",
			"TRACK",
			"DIFFICULTY",
			"POINTS",
			"TYPE",
			"ACTIVE?",
		)
		for _, task := range tasks.Items {
			table.AddRow(
				task.ID.Hex(),
				task.Title,
				core.TrackName(task.Track),
				task.Difficulty,
				task.Points,
				task.Type,
				task.IsActive,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(tasks)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list tasks operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list tasks operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
