package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"raceboard/internal/domain/entities"
	"raceboard/internal/infrastructure/database"
)

// exitNotFound is the status of a query that resolved to nothing.
const exitNotFound = 3

func (e *environment) show(c *cli.Context, v any, found bool) error {
	if !found {
		return cli.Exit("not found", exitNotFound)
	}
	return render(c.App.Writer, e.format, v)
}

func raceCommand(e *environment) *cli.Command {
	return &cli.Command{
		Name:      "race",
		Usage:     "show a race and its results by its public keys",
		ArgsUsage: "EVENT CATEGORY GENDER LENGTH",
		Action: func(c *cli.Context) error {
			if c.NArg() != 4 {
				return cli.Exit("race needs EVENT CATEGORY GENDER LENGTH", 2)
			}
			svc, err := e.services(c.Context)
			if err != nil {
				return err
			}
			args := c.Args()
			race, err := svc.races.ResolveRace(c.Context, args.Get(0), args.Get(1), args.Get(2), args.Get(3))
			if err != nil {
				return err
			}
			return e.show(c, race, race != nil)
		},
	}
}

func cyclistResultsCommand(e *environment) *cli.Command {
	return &cli.Command{
		Name:      "cyclist-results",
		Usage:     "list every result of a cyclist",
		ArgsUsage: "CYCLIST",
		Action: func(c *cli.Context) error {
			svc, err := e.services(c.Context)
			if err != nil {
				return err
			}
			results, err := svc.races.RaceResultsForCyclist(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			return e.show(c, results, results != nil)
		},
	}
}

func eventCommand(e *environment) *cli.Command {
	return &cli.Command{
		Name:      "event",
		Usage:     "show an event and its races",
		ArgsUsage: "EVENT",
		Action: func(c *cli.Context) error {
			svc, err := e.services(c.Context)
			if err != nil {
				return err
			}
			event, err := svc.events.EventWithRaces(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			return e.show(c, event, event != nil)
		},
	}
}

func eventsCommand(e *environment) *cli.Command {
	return &cli.Command{
		Name:      "events",
		Usage:     "list the events of an organization, newest first",
		ArgsUsage: "ORGANIZATION",
		Action: func(c *cli.Context) error {
			svc, err := e.services(c.Context)
			if err != nil {
				return err
			}
			events, err := svc.events.EventsByOrganization(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			return e.show(c, events, true)
		},
	}
}

func publicEventsCommand(e *environment) *cli.Command {
	return &cli.Command{
		Name:  "public-events",
		Usage: "list the published events of a year",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "year", Value: time.Now().Year(), Usage: "calendar year"},
		},
		Action: func(c *cli.Context) error {
			svc, err := e.services(c.Context)
			if err != nil {
				return err
			}
			events, err := svc.events.PublicEvents(c.Context, c.Int("year"))
			if err != nil {
				return err
			}
			return e.show(c, events, true)
		},
	}
}

func organizationCommand(e *environment) *cli.Command {
	return &cli.Command{
		Name:      "organization",
		Usage:     "show an organization with its event count",
		ArgsUsage: "ORGANIZATION",
		Action: func(c *cli.Context) error {
			svc, err := e.services(c.Context)
			if err != nil {
				return err
			}
			org, err := svc.organizations.Organization(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			return e.show(c, org, org != nil)
		},
	}
}

func rankingPointsCommand(e *environment) *cli.Command {
	return &cli.Command{
		Name:      "ranking-points",
		Usage:     "show the point table of a ranking system",
		ArgsUsage: "RANKING_SYSTEM",
		Action: func(c *cli.Context) error {
			svc, err := e.services(c.Context)
			if err != nil {
				return err
			}
			points, err := svc.rankings.RankingPoints(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			return e.show(c, points, points != nil)
		},
	}
}

func userCommand(e *environment) *cli.Command {
	lookup := func(name, usage, arg string, find func(*services, *cli.Context) (entities.User, error)) *cli.Command {
		return &cli.Command{
			Name:      name,
			Usage:     usage,
			ArgsUsage: arg,
			Action: func(c *cli.Context) error {
				svc, err := e.services(c.Context)
				if err != nil {
					return err
				}
				u, err := find(svc, c)
				if err != nil {
					return err
				}
				return e.show(c, userView(u), u != nil)
			},
		}
	}

	return &cli.Command{
		Name:  "user",
		Usage: "show a user",
		Subcommands: []*cli.Command{
			lookup("current", "the user bound to an identity provider subject", "AUTH_ID",
				func(s *services, c *cli.Context) (entities.User, error) {
					return s.users.CurrentUser(c.Context, c.Args().First())
				}),
			lookup("email", "the user with an email address", "EMAIL",
				func(s *services, c *cli.Context) (entities.User, error) {
					return s.users.UserByEmail(c.Context, c.Args().First())
				}),
			lookup("id", "the user with a public key", "USER",
				func(s *services, c *cli.Context) (entities.User, error) {
					return s.users.UserByID(c.Context, c.Args().First())
				}),
		},
	}
}

// userView adds the role tag to the rendered user.
func userView(u entities.User) any {
	if u == nil {
		return nil
	}
	return struct {
		Role string        `json:"role"`
		User entities.User `json:"user"`
	}{Role: string(u.Role()), User: u}
}

func payloadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "actor", Required: true, Usage: "identity provider subject of the caller"},
		&cli.StringFlag{Name: "payload", Value: "-", Usage: "JSON payload file, - for stdin"},
	}
}

func readPayload(c *cli.Context, dst any) error {
	var r io.Reader = c.App.Reader
	if path := c.String("payload"); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("read payload: %w", err)
	}
	return nil
}

func createEventCommand(e *environment) *cli.Command {
	return &cli.Command{
		Name:  "create-event",
		Usage: "create an event and its races in one step",
		Flags: payloadFlags(),
		Action: func(c *cli.Context) error {
			var payload entities.NewEvent
			if err := readPayload(c, &payload); err != nil {
				return err
			}
			svc, err := e.services(c.Context)
			if err != nil {
				return err
			}
			res, err := svc.events.CreateEvent(c.Context, c.String("actor"), payload)
			if err != nil {
				return err
			}
			return e.show(c, res, true)
		},
	}
}

func ownerSignupCommand(e *environment) *cli.Command {
	return &cli.Command{
		Name:  "owner-signup",
		Usage: "complete the signup of an invited organization owner",
		Flags: payloadFlags(),
		Action: func(c *cli.Context) error {
			var payload entities.OwnerSignup
			if err := readPayload(c, &payload); err != nil {
				return err
			}
			svc, err := e.services(c.Context)
			if err != nil {
				return err
			}
			res, err := svc.organizations.CompleteOwnerSignup(c.Context, c.String("actor"), payload)
			if err != nil {
				return err
			}
			return e.show(c, res, true)
		},
	}
}

func migrateCommand(e *environment) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					return database.RunMigrations(e.cfg.Database.URL, e.log)
				},
			},
			{
				Name:  "down",
				Usage: "revert the last migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to revert"},
				},
				Action: func(c *cli.Context) error {
					return database.RollbackMigrations(e.cfg.Database.URL, c.Int("steps"), e.log)
				},
			},
		},
	}
}
