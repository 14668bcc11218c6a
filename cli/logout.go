package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func logout(c *cli.Context) error {
	client, err := getClient(c)
	if err == nil {
		// Revoking the session server-side is best effort. Even if it fails,
		// we still want to wipe the local configuration.
		client.Authx().Sessions().Delete(c.Context) // nolint: errcheck
	}

	if err := deleteConfig(); err != nil {
		return err
	}

	fmt.Println("Logout was successful.")
	return nil
}
