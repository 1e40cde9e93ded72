package application

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/ports/input"
	"raceboard/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo     output.EventRepository
	procedureRepo output.ProcedureRepository
	telemetry
}

func NewEventService(
	eventRepo output.EventRepository,
	procedureRepo output.ProcedureRepository,
	log *zap.SugaredLogger,
	tracer trace.Tracer,
) *EventService {
	return &EventService{
		eventRepo:     eventRepo,
		procedureRepo: procedureRepo,
		telemetry:     newTelemetry(log, tracer),
	}
}

func (s *EventService) EventWithRaces(ctx context.Context, eventID string) (*entities.EventWithRaces, error) {
	return withTelemetry(s.telemetry, ctx, "EventWithRaces", eventID, func(ctx context.Context) (*entities.EventWithRaces, error) {
		if eventID == "" {
			return nil, domain.ErrNotFound
		}
		return s.eventRepo.FindWithRaces(ctx, eventID)
	})
}

// EventsByOrganization lists the events of an organization, newest first.
func (s *EventService) EventsByOrganization(ctx context.Context, organizationID string) ([]entities.Event, error) {
	return withTelemetry(s.telemetry, ctx, "EventsByOrganization", organizationID, func(ctx context.Context) ([]entities.Event, error) {
		return s.eventRepo.FindByOrganization(ctx, organizationID)
	})
}

// PublicEvents lists the published events of a year in date order.
func (s *EventService) PublicEvents(ctx context.Context, year int) ([]entities.Event, error) {
	return withTelemetry(s.telemetry, ctx, "PublicEvents", strconv.Itoa(year), func(ctx context.Context) ([]entities.Event, error) {
		return s.eventRepo.FindPublicByYear(ctx, year)
	})
}

// CreateEvent assigns public keys to the event and its races where the
// caller left them empty, validates the payload and inserts everything in
// one procedure call.
func (s *EventService) CreateEvent(ctx context.Context, actorAuthID string, payload entities.NewEvent) (entities.NewEventResult, error) {
	if payload.PublicID == "" {
		payload.PublicID = domain.NewPublicKey()
	}
	races := make([]entities.NewRace, len(payload.Races))
	for i, race := range payload.Races {
		if race.PublicID == "" {
			race.PublicID = domain.NewPublicKey()
		}
		races[i] = race
	}
	payload.Races = races

	return withWriteTelemetry(s.telemetry, ctx, "CreateEvent", payload.PublicID, func(ctx context.Context) (entities.NewEventResult, error) {
		if err := validatePayload(payload); err != nil {
			return entities.NewEventResult{}, err
		}
		return s.procedureRepo.CreateEventWithRaces(ctx, actorAuthID, payload)
	})
}
