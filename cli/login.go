package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/innoverse/admin/sdk/authx"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func login(c *cli.Context) error {
	address := c.String(flagServer)
	browseToAuthURL := c.Bool(flagBrowse)
	password := c.String(flagPassword)
	token := c.String(flagToken)
	useOIDC := c.Bool(flagOIDC)
	username := c.String(flagUsername)

	if token != "" {
		// The caller already has a token-- e.g. one minted by the OIDC
		// callback-- so there's nothing to exchange. Just save it.
		if err := saveConfig(
			&config{
				APIAddress: address,
				APIToken:   token,
			},
		); err != nil {
			return errors.Wrap(err, "error persisting configuration")
		}
		fmt.Println("Login was successful.")
		return nil
	}

	if useOIDC {
		authURL := fmt.Sprintf("%s/v2/session/auth", address)
		if browseToAuthURL {
			var err error
			switch runtime.GOOS {
			case "linux":
				err = exec.Command("xdg-open", authURL).Start()
			case "windows":
				err = exec.Command(
					"rundll32",
					"url.dll,FileProtocolHandler",
					authURL,
				).Start()
			case "darwin":
				err = exec.Command("open", authURL).Start()
			default:
				err = errors.New("unsupported OS")
			}
			if err != nil {
				return errors.Wrapf(
					err,
					"error opening authentication URL using the system's "+
						"default web browser.\n\nPlease visit  %s  to complete "+
						"authentication\n",
					authURL,
				)
			}
			fmt.Println(
				"Complete authentication in your browser, then use " +
					"`inno-admin login --token` with the token you receive.",
			)
			return nil
		}
		fmt.Printf(
			"Please visit  %s  to complete authentication, then use "+
				"`inno-admin login --token` with the token you receive.\n",
			authURL,
		)
		return nil
	}

	if username == "" {
		return errors.New(
			"please specify a username with the --username flag",
		)
	}
	reader := bufio.NewReader(os.Stdin)
	for password == "" {
		fmt.Print("Password? ")
		var err error
		if password, err = reader.ReadString('\n'); err != nil {
			return errors.Wrap(err, "error reading password from stdin")
		}
		password = strings.TrimSpace(password)
	}

	client := authx.NewSessionsClient(address, "", c.Bool(flagInsecure))
	sessionToken, err := client.Create(c.Context, username, password)
	if err != nil {
		return errors.Wrap(err, "error creating session")
	}

	if err := saveConfig(
		&config{
			APIAddress: address,
			APIToken:   sessionToken.Value,
		},
	); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	fmt.Println("Login was successful.")
	return nil
}
