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

func submissionStats(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("submission stats requires no arguments")
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

	stats, err := client.Core().Submissions().Stats(c.Context)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("TOTAL", "PENDING", "APPROVED", "REJECTED")
		table.AddRow(stats.Total, stats.Pending, stats.Approved, stats.Rejected)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(stats)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from submission stats operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from submission stats operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
