package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

func whoami(c *cli.Context) error {
	client, err := getClient(c)
	if err != nil {
		return err
	}

	session, err := client.Authx().Sessions().Whoami(c.Context)
	if err != nil {
		return err
	}

	fmt.Printf(
		"You are logged in as %s. Your session expires at %s.\n",
		session.Username,
		time.Unix(session.Expires, 0).Local().Format(time.RFC1123),
	)
	return nil
}
