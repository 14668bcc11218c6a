package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/innoverse/admin/sdk/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func analyticsPoints(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("analytics points requires no arguments")
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

	report, err := client.Core().Analytics().Points(c.Context, limit)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("RANK", "USERNAME", "TRACK", "POINTS", "TASKS")
		for i, leader := range report.Leaders {
			table.AddRow(
				i+1,
				leader.Username,
				core.TrackName(leader.Track),
				leader.Points,
				leader.TasksCompleted,
			)
		}
		fmt.Println(table)

		if len(report.TrackAverages) > 0 {
			tracks := make([]string, 0, len(report.TrackAverages))
			for track := range report.TrackAverages {
				tracks = append(tracks, track)
			}
			sort.Strings(tracks)
			fmt.Println("\nAverage points by track:")
			trackTable := uitable.New()
			trackTable.AddRow("TRACK", "AVERAGE")
			for _, track := range tracks {
				trackTable.AddRow(
					core.TrackName(track),
					fmt.Sprintf("%.1f", report.TrackAverages[track]),
				)
			}
			fmt.Println(trackTable)
		}

	case "yaml":
		yamlBytes, err := yaml.Marshal(report)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from analytics points operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from analytics points operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
