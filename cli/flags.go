package main

import "github.com/urfave/cli/v2"

const (
	flagActive      = "active"
	flagBrowse      = "browse"
	flagDescription = "description"
	flagDifficulty  = "difficulty"
	flagDueDate     = "due"
	flagFeedback    = "feedback"
	flagInsecure    = "insecure"
	flagLimit       = "limit"
	flagOIDC        = "oidc"
	flagOldest      = "oldest"
	flagOutput      = "output"
	flagPassword    = "password"
	flagPoints      = "points"
	flagRequired    = "requirements"
	flagServer      = "server"
	flagStatus      = "status"
	flagTitle       = "title"
	flagToken       = "token"
	flagTrack       = "track"
	flagUser        = "user"
	flagUsername    = "username"
	flagYes         = "yes"
)

var (
	cliFlagOutput = &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage: "Return output in another format. Supported formats: table, " +
			"yaml, json",
		Value: "table",
	}
	cliFlagYes = &cli.BoolFlag{
		Name:    flagYes,
		Aliases: []string{"y"},
		Usage:   "Non-interactively confirm the action",
	}
)
