package main

import (
	"fmt"
	"os"

	"github.com/innoverse/admin/internal/signals"
	"github.com/innoverse/admin/internal/version"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "inno-admin"
	app.Usage = "Administer the Innoverse coding education platform"
	app.Version = fmt.Sprintf(
		"%s -- commit %s",
		version.Version(),
		version.Commit(),
	)
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:  "login",
			Usage: "Log in to the API server",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    flagBrowse,
					Aliases: []string{"b"},
					Usage: "Use the system's default web browser to complete " +
						"OpenID Connect authentication; not applicable when " +
						"--username or --token is used",
				},
				&cli.BoolFlag{
					Name:  flagOIDC,
					Usage: "Authenticate using OpenID Connect",
				},
				&cli.StringFlag{
					Name:    flagPassword,
					Aliases: []string{"p"},
					Usage: "Specify the password non-interactively; only " +
						"applicable when --username is used",
				},
				&cli.StringFlag{
					Name:     flagServer,
					Aliases:  []string{"s"},
					Usage:    "Log in to the API server at the specified address",
					Required: true,
				},
				&cli.StringFlag{
					Name: flagToken,
					Usage: "Log in using an existing session token-- e.g. one " +
						"issued at the end of OpenID Connect authentication",
				},
				&cli.StringFlag{
					Name:    flagUsername,
					Aliases: []string{"u"},
					Usage:   "Authenticate using a username and password",
				},
			},
			Action: login,
		},
		{
			Name:   "logout",
			Usage:  "Log out of the API server",
			Action: logout,
		},
		{
			Name:   "whoami",
			Usage:  "Show the current session",
			Action: whoami,
		},
		{
			Name:  "user",
			Usage: "Manage users",
			Subcommands: []*cli.Command{
				{
					Name:      "get",
					Usage:     "Get a user",
					ArgsUsage: "USER_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: userGet,
				},
				{
					Name:  "list",
					Usage: "List users",
					Flags: []cli.Flag{
						cliFlagOutput,
						&cli.BoolFlag{
							Name:  flagActive,
							Usage: "Return only active or only inactive users",
						},
						&cli.StringFlag{
							Name: flagTrack,
							Usage: "Return only users on the specified coding " +
								"track",
						},
					},
					Action: userList,
				},
				{
					Name:  "tracks",
					Usage: "Show user counts by coding track",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: userTracks,
				},
			},
		},
		{
			Name:  "task",
			Usage: "Manage tasks",
			Subcommands: []*cli.Command{
				{
					Name:      "activate",
					Usage:     "Make a task visible to students",
					ArgsUsage: "TASK_ID",
					Action:    taskActivate,
				},
				{
					Name:  "create",
					Usage: "Create a new task",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:     flagTitle,
							Aliases:  []string{"t"},
							Usage:    "The task title",
							Required: true,
						},
						&cli.StringFlag{
							Name:    flagDescription,
							Aliases: []string{"d"},
							Usage:   "The task description",
						},
						&cli.StringFlag{
							Name:     flagTrack,
							Usage:    "The coding track the task belongs to",
							Required: true,
						},
						&cli.StringFlag{
							Name:  flagDifficulty,
							Usage: "The task difficulty",
						},
						&cli.IntFlag{
							Name:  flagPoints,
							Usage: "Points awarded for an approved submission",
						},
						&cli.StringFlag{
							Name:  flagDueDate,
							Usage: "The task due date (YYYY-MM-DD)",
						},
						&cli.StringSliceFlag{
							Name:  flagRequired,
							Usage: "A task requirement; may be specified multiple times",
						},
					},
					Action: taskCreate,
				},
				{
					Name:      "deactivate",
					Usage:     "Hide a task from students",
					ArgsUsage: "TASK_ID",
					Action:    taskDeactivate,
				},
				{
					Name:      "delete",
					Usage:     "Delete a task",
					ArgsUsage: "TASK_ID",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: taskDelete,
				},
				{
					Name:  "list",
					Usage: "List tasks",
					Flags: []cli.Flag{
						cliFlagOutput,
						&cli.BoolFlag{
							Name:  flagActive,
							Usage: "Return only active or only inactive tasks",
						},
						&cli.StringFlag{
							Name:  flagDifficulty,
							Usage: "Return only tasks of the specified difficulty",
						},
						&cli.StringFlag{
							Name:  flagTrack,
							Usage: "Return only tasks on the specified coding track",
						},
					},
					Action: taskList,
				},
			},
		},
		{
			Name:  "assignment",
			Usage: "Manage task assignments",
			Subcommands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Assign an existing task to a user",
					ArgsUsage: "TASK_ID USER_ID",
					Action:    assignmentCreate,
				},
				{
					Name: "create-custom",
					Usage: "Create a new task and assign it to a user in one " +
						"operation",
					ArgsUsage: "USER_ID",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:     flagTitle,
							Aliases:  []string{"t"},
							Usage:    "The task title",
							Required: true,
						},
						&cli.StringFlag{
							Name:    flagDescription,
							Aliases: []string{"d"},
							Usage:   "The task description",
						},
						&cli.StringFlag{
							Name: flagTrack,
							Usage: "The coding track the task belongs to; " +
								"defaults to the user's own track",
						},
						&cli.StringFlag{
							Name:  flagDifficulty,
							Usage: "The task difficulty",
						},
						&cli.IntFlag{
							Name:  flagPoints,
							Usage: "Points awarded for an approved submission",
						},
						&cli.StringFlag{
							Name:  flagDueDate,
							Usage: "The task due date (YYYY-MM-DD)",
						},
						&cli.StringSliceFlag{
							Name:  flagRequired,
							Usage: "A task requirement; may be specified multiple times",
						},
					},
					Action: assignmentCreateCustom,
				},
				{
					Name:      "delete",
					Usage:     "Delete an assignment",
					ArgsUsage: "ASSIGNMENT_ID",
					Description: "Deleting an assignment of type \"custom\" " +
						"also deletes its task.",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: assignmentDelete,
				},
				{
					Name:  "list",
					Usage: "List recent assignments",
					Flags: []cli.Flag{
						cliFlagOutput,
						&cli.Int64Flag{
							Name:    flagLimit,
							Aliases: []string{"l"},
							Usage:   "Return at most the specified number of assignments",
						},
					},
					Action: assignmentList,
				},
			},
		},
		{
			Name:  "submission",
			Usage: "Manage submissions",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List submissions",
					Flags: []cli.Flag{
						cliFlagOutput,
						&cli.BoolFlag{
							Name:  flagOldest,
							Usage: "Sort oldest first instead of newest first",
						},
						&cli.StringFlag{
							Name: flagStatus,
							Usage: "Return only submissions in the specified " +
								"review state",
						},
					},
					Action: submissionList,
				},
				{
					Name:      "review",
					Usage:     "Record a verdict on a submission",
					ArgsUsage: "SUBMISSION_ID",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:     flagStatus,
							Usage:    `The verdict; one of "approved" or "rejected"`,
							Required: true,
						},
						&cli.IntFlag{
							Name:  flagPoints,
							Usage: "Points to award; only applicable on approval",
						},
						&cli.StringFlag{
							Name:  flagFeedback,
							Usage: "Feedback for the submitting user",
						},
					},
					Action: submissionReview,
				},
				{
					Name:  "stats",
					Usage: "Show submission counts by review state",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: submissionStats,
				},
			},
		},
		{
			Name:  "forum",
			Usage: "Manage discussion forums",
			Subcommands: []*cli.Command{
				{
					Name:      "comments",
					Usage:     "Show recent comments from a forum",
					ArgsUsage: "FORUM_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
						&cli.Int64Flag{
							Name:    flagLimit,
							Aliases: []string{"l"},
							Usage:   "Return at most the specified number of comments",
						},
					},
					Action: forumComments,
				},
				{
					Name:  "create",
					Usage: "Open a new forum",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:     flagTitle,
							Aliases:  []string{"t"},
							Usage:    "The forum title",
							Required: true,
						},
						&cli.StringFlag{
							Name:    flagDescription,
							Aliases: []string{"d"},
							Usage:   "The forum description",
						},
					},
					Action: forumCreate,
				},
				{
					Name:      "delete",
					Usage:     "Delete a forum and all of its comments",
					ArgsUsage: "FORUM_ID",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: forumDelete,
				},
				{
					Name:  "list",
					Usage: "List forums",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: forumList,
				},
			},
		},
		{
			Name:  "analytics",
			Usage: "Report on platform activity",
			Subcommands: []*cli.Command{
				{
					Name:  "overview",
					Usage: "Show platform-wide totals and recent activity",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: analyticsOverview,
				},
				{
					Name:  "performance",
					Usage: "Show per-task submission outcomes",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: analyticsPerformance,
				},
				{
					Name:  "points",
					Usage: "Show the points leaderboard and per-track averages",
					Flags: []cli.Flag{
						cliFlagOutput,
						&cli.Int64Flag{
							Name:    flagLimit,
							Aliases: []string{"l"},
							Usage:   "Return at most the specified number of leaders",
						},
					},
					Action: analyticsPoints,
				},
				{
					Name:  "registrations",
					Usage: "Show registration counts by day and by coding track",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: analyticsRegistrations,
				},
			},
		},
	}
	fmt.Println()
	if err := app.RunContext(signals.Context(), os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
