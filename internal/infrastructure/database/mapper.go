package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/infrastructure/database/sqlc_generated"
	"raceboard/pkg/isotime"
)

// pgtypeTimestamptzToString formats a valid timestamp, or returns the
// current instant for a null one.
func pgtypeTimestamptzToString(t pgtype.Timestamptz) string {
	if !t.Valid {
		return isotime.Now()
	}
	return isotime.Format(t.Time)
}

func timeToString(t *time.Time) string {
	if t == nil {
		return isotime.Now()
	}
	return isotime.Format(*t)
}

// rawTimestamp keeps a timestamp that is already a string verbatim.
func rawTimestamp(s *string) string {
	if s == nil || *s == "" {
		return isotime.Now()
	}
	return *s
}

func pgStamps(created, updated pgtype.Timestamptz) entities.Timestamps {
	return entities.Timestamps{
		CreatedAt: pgtypeTimestamptzToString(created),
		UpdatedAt: pgtypeTimestamptzToString(updated),
	}
}

func timeStamps(created, updated *time.Time) entities.Timestamps {
	return entities.Timestamps{
		CreatedAt: timeToString(created),
		UpdatedAt: timeToString(updated),
	}
}

func rawStamps(created, updated *string) entities.Timestamps {
	return entities.Timestamps{
		CreatedAt: rawTimestamp(created),
		UpdatedAt: rawTimestamp(updated),
	}
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func int4Ptr(i pgtype.Int4) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int32)
	return &v
}

// mapSlice applies fn to every element. A nil input yields an empty,
// non-nil slice.
func mapSlice[T, U any](xs []T, fn func(T) U) []U {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		out = append(out, fn(x))
	}
	return out
}

func eventToDomain(e sqlc_generated.Event, organizationPublicID, creatorPublicID pgtype.Text) entities.Event {
	out := entities.Event{
		ID:             textKeys(entityEvent, e.ID, e.PublicID).DomainID(),
		Name:           e.Name,
		Description:    textPtr(e.Description),
		DateTime:       isotime.Format(e.DateTime),
		Year:           int(e.Year),
		City:           textPtr(e.City),
		State:          textPtr(e.State),
		Country:        textPtr(e.Country),
		Status:         domain.EventStatus(e.Status),
		IsPublic:       e.IsPublic,
		OrganizationID: textKeys(entityOrganization, e.OrganizationID, organizationPublicID).DomainID(),
		Timestamps:     pgStamps(e.CreatedAt, e.UpdatedAt),
	}
	if e.CreatedBy.Valid {
		creator := textKeys(entityUser, e.CreatedBy.UUID, creatorPublicID).DomainID()
		out.CreatedBy = &creator
	}
	return out
}

func organizationToDomain(o sqlc_generated.Organization) entities.Organization {
	return entities.Organization{
		ID:          textKeys(entityOrganization, o.ID, o.PublicID).DomainID(),
		Name:        o.Name,
		Description: textPtr(o.Description),
		State:       domain.OrganizationState(o.State),
		Timestamps:  pgStamps(o.CreatedAt, o.UpdatedAt),
	}
}

func rankingPointToDomain(rp sqlc_generated.RankingPoint, systemPublicID pgtype.Text) entities.RankingPoint {
	return entities.RankingPoint{
		ID:              textKeys(entityRankingPoint, rp.ID, rp.PublicID).DomainID(),
		RankingSystemID: textKeys(entityRankingSystem, rp.RankingSystemID, systemPublicID).DomainID(),
		Place:           int(rp.Place),
		Points:          int(rp.Points),
		Timestamps:      pgStamps(rp.CreatedAt, rp.UpdatedAt),
	}
}
