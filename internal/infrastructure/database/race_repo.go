package database

import (
	"context"

	"github.com/uptrace/bun"

	"raceboard/internal/domain/entities"
	"raceboard/internal/infrastructure/database/relations"
	"raceboard/internal/ports/output"
)

var _ output.RaceRepository = (*RaceRepository)(nil)

// RaceRepository implements output.RaceRepository with bun relation
// fetches.
type RaceRepository struct {
	db bun.IDB
}

func NewRaceRepository(db bun.IDB) *RaceRepository {
	return &RaceRepository{db: db}
}

func orderByPlace(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Order("race_result.place ASC")
}

func (r *RaceRepository) FindWithResults(ctx context.Context, keys output.RaceInternalKeys) (*entities.RaceWithResults, error) {
	race := new(relations.Race)
	err := r.db.NewSelect().
		Model(race).
		Relation("Event").
		Relation("RaceCategory").
		Relation("RaceCategoryGender").
		Relation("RaceCategoryLength").
		Relation("RankingSystem").
		Relation("RaceResults", orderByPlace).
		Relation("RaceResults.Cyclist").
		Relation("RaceResults.Cyclist.User").
		Relation("RaceResults.RankingPoint").
		Relation("RaceResults.RankingPoint.RankingSystem").
		Where("race.event_id = ?", keys.Event).
		Where("race.race_category_id = ?", keys.Category).
		Where("race.race_category_gender_id = ?", keys.Gender).
		Where("race.race_category_length_id = ?", keys.Length).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, wrapErr("get race with results", err)
	}
	return flattenRace(race), nil
}

func (r *RaceRepository) FindCyclistResults(ctx context.Context, cyclistPublicID string) ([]entities.CyclistRaceResult, error) {
	cyclist := new(relations.Cyclist)
	err := r.db.NewSelect().
		Model(cyclist).
		Relation("User").
		Relation("RaceResults", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("race__event.date_time DESC", "race_result.place ASC")
		}).
		Relation("RaceResults.Race").
		Relation("RaceResults.Race.Event").
		Relation("RaceResults.Race.Event.Organization").
		Relation("RaceResults.Race.Event.Creator").
		Relation("RaceResults.Race.RaceCategory").
		Relation("RaceResults.Race.RaceCategoryGender").
		Relation("RaceResults.Race.RaceCategoryLength").
		Relation("RaceResults.Race.RankingSystem").
		Relation("RaceResults.RankingPoint").
		Relation("RaceResults.RankingPoint.RankingSystem").
		Where("cyclist.public_id = ?", cyclistPublicID).
		WhereOr("cyclist.public_id IS NULL AND cyclist.id::text = ?", cyclistPublicID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, wrapErr("get cyclist results", err)
	}
	return flattenCyclistResults(cyclist), nil
}
