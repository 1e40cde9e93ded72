package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	env := &environment{}

	app := &cli.App{
		Name:  "raceboard",
		Usage: "query and maintain cycling race results",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a TOML configuration file",
				EnvVars: []string{"RACEBOARD_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "format",
				Value: formatJSON,
				Usage: "output format: json or yaml",
			},
		},
		Before: env.setup,
		After:  env.teardown,
		Commands: []*cli.Command{
			raceCommand(env),
			cyclistResultsCommand(env),
			eventCommand(env),
			eventsCommand(env),
			publicEventsCommand(env),
			organizationCommand(env),
			rankingPointsCommand(env),
			userCommand(env),
			createEventCommand(env),
			ownerSignupCommand(env),
			migrateCommand(env),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "raceboard:", err)
		os.Exit(1)
	}
}
