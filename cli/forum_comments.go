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

func forumComments(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"forum comments requires one argument-- a forum ID",
		)
	}
	id := c.Args().Get(0)

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

	comments, err := client.Core().Forums().RecentComments(c.Context, id, limit)
	if err != nil {
		return err
	}

	if len(comments.Items) == 0 {
		fmt.Println("No comments found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("AUTHOR", "CONTENT", "CREATED")
		for _, comment := range comments.Items {
			table.AddRow(
				comment.Author,
				comment.Content,
				comment.Created,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(comments)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from forum comments operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(comments, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from forum comments operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
