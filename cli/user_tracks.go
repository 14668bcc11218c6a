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

func userTracks(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("user tracks requires no arguments")
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

	trackCounts, err := client.Core().Users().TrackCounts(c.Context)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		tracks := make([]string, 0, len(trackCounts.Counts))
		for track := range trackCounts.Counts {
			tracks = append(tracks, track)
		}
		sort.Strings(tracks)
		table := uitable.New()
		table.AddRow("TRACK", "USERS")
		for _, track := range tracks {
			table.AddRow(core.TrackName(track), trackCounts.Counts[track])
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(trackCounts)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from user tracks operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(trackCounts, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from user tracks operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
