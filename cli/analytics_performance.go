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

func analyticsPerformance(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("analytics performance requires no arguments")
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

	report, err := client.Core().Analytics().TaskPerformance(c.Context)
	if err != nil {
		return err
	}

	if len(report.Items) == 0 {
		fmt.Println("No task performance data found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("TASK", "TRACK", "SUBMISSIONS", "APPROVED", "COMPLETION")
		for _, task := range report.Items {
			table.AddRow(
				task.Title,
				core.TrackName(task.Track),
				task.Total,
				task.Approved,
				fmt.Sprintf("%.1f%%", task.CompletionRate*100),
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(report)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from analytics performance operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from analytics performance operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
