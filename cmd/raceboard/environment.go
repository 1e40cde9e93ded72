package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"raceboard/internal/application"
	"raceboard/internal/config"
	"raceboard/internal/infrastructure/database"
	"raceboard/internal/infrastructure/logging"
)

// environment holds what every command needs. The database is opened on
// first use so that migrate and help never touch a pool.
type environment struct {
	cfg    *config.Config
	log    *zap.SugaredLogger
	format string

	store *database.Store
}

type services struct {
	races         *application.RaceResultService
	events        *application.EventService
	organizations *application.OrganizationService
	rankings      *application.RankingService
	users         *application.UserService
}

func (e *environment) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	format, err := parseFormat(c.String("format"))
	if err != nil {
		return err
	}
	e.cfg, e.log, e.format = cfg, log, format
	return nil
}

func (e *environment) teardown(*cli.Context) error {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.log.Warnw("closing database", "err", err)
		}
	}
	if e.log != nil {
		_ = e.log.Sync()
	}
	return nil
}

func (e *environment) services(ctx context.Context) (*services, error) {
	if e.store == nil {
		pool, err := database.NewPool(ctx, e.cfg.Database, e.log)
		if err != nil {
			return nil, err
		}
		e.store = database.NewStore(pool)
	}

	q := e.store.Queries
	procedures := database.NewProcedureRepository(q)
	tracer := otel.Tracer("raceboard")

	return &services{
		races: application.NewRaceResultService(
			database.NewLookupRepository(q),
			database.NewRaceRepository(e.store.Bun),
			e.log, tracer,
		),
		events: application.NewEventService(
			database.NewEventRepository(q, e.store.Bun),
			procedures,
			e.log, tracer,
		),
		organizations: application.NewOrganizationService(
			database.NewOrganizationRepository(q),
			procedures,
			e.log, tracer,
		),
		rankings: application.NewRankingService(database.NewRankingRepository(q), e.log, tracer),
		users:    application.NewUserService(database.NewUserRepository(q, e.log), e.log, tracer),
	}, nil
}
