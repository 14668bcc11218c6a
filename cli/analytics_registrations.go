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

func analyticsRegistrations(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("analytics registrations requires no arguments")
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

	report, err := client.Core().Analytics().Registrations(c.Context)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("DATE", "REGISTRATIONS")
		for _, day := range report.Daily {
			table.AddRow(day.Date, day.Count)
		}
		fmt.Println(table)

		if len(report.ByTrack) > 0 {
			tracks := make([]string, 0, len(report.ByTrack))
			for track := range report.ByTrack {
				tracks = append(tracks, track)
			}
			sort.Strings(tracks)
			fmt.Println("\nBy track:")
			trackTable := uitable.New()
			trackTable.AddRow("TRACK", "REGISTRATIONS")
			for _, track := range tracks {
				trackTable.AddRow(
					core.TrackName(track),
					report.ByTrack[track],
				)
			}
			fmt.Println(trackTable)
		}

	case "yaml":
		yamlBytes, err := yaml.Marshal(report)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from analytics registrations operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from analytics registrations operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
