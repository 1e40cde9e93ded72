package database

import (
	"context"

	"github.com/uptrace/bun"

	"raceboard/internal/domain/entities"
	"raceboard/internal/infrastructure/database/relations"
	"raceboard/internal/infrastructure/database/sqlc_generated"
	"raceboard/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository reads events: flat listings through sqlc, the event with
// its races through bun.
type EventRepository struct {
	q  *sqlc_generated.Queries
	db bun.IDB
}

func NewEventRepository(q *sqlc_generated.Queries, db bun.IDB) *EventRepository {
	return &EventRepository{q: q, db: db}
}

func (r *EventRepository) FindWithRaces(ctx context.Context, publicID string) (*entities.EventWithRaces, error) {
	event := new(relations.Event)
	err := r.db.NewSelect().
		Model(event).
		Relation("Organization").
		Relation("Creator").
		Relation("Races", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("race.start_at ASC NULLS LAST", "race.created_at ASC")
		}).
		Relation("Races.RaceCategory").
		Relation("Races.RaceCategoryGender").
		Relation("Races.RaceCategoryLength").
		Relation("Races.RankingSystem").
		Where("event.public_id = ?", publicID).
		WhereOr("event.public_id IS NULL AND event.id::text = ?", publicID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, wrapErr("get event with races", err)
	}
	return flattenEvent(event), nil
}

func (r *EventRepository) FindByOrganization(ctx context.Context, organizationPublicID string) ([]entities.Event, error) {
	rows, err := r.q.ListEventsByOrganization(ctx, organizationPublicID)
	if err != nil {
		return nil, wrapErr("list events by organization", err)
	}
	return mapSlice(rows, func(row sqlc_generated.ListEventsByOrganizationRow) entities.Event {
		return eventToDomain(row.Event, row.OrganizationPublicID, row.CreatorPublicID)
	}), nil
}

func (r *EventRepository) FindPublicByYear(ctx context.Context, year int) ([]entities.Event, error) {
	rows, err := r.q.ListPublicEventsByYear(ctx, int32(year))
	if err != nil {
		return nil, wrapErr("list public events by year", err)
	}
	return mapSlice(rows, func(row sqlc_generated.ListPublicEventsByYearRow) entities.Event {
		return eventToDomain(row.Event, row.OrganizationPublicID, row.CreatorPublicID)
	}), nil
}
