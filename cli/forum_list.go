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

func forumList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("forum list requires no arguments")
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

	forums, err := client.Core().Forums().List(c.Context)
	if err != nil {
		return err
	}

	if len(forums.Items) == 0 {
		fmt.Println("No forums found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "TITLE", "CREATED BY", "COMMENTS", "CREATED")
		for _, forum := range forums.Items {
			table.AddRow(
				forum.ID,
				forum.Title,
				forum.CreatedBy.Name,
				forum.CommentCount,
				forum.Created,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(forums)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list forums operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(forums, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list forums operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
