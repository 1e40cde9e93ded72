package database

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"raceboard/internal/infrastructure/database/relations"
	"raceboard/internal/infrastructure/metrics"
)

// Entity names, used as the metric label for legacy key fallbacks.
const (
	entityOrganization       = "organization"
	entityUser               = "user"
	entityCyclist            = "cyclist"
	entityEvent              = "event"
	entityRace               = "race"
	entityRaceResult         = "race_result"
	entityRaceCategory       = "race_category"
	entityRaceCategoryGender = "race_category_gender"
	entityRaceCategoryLength = "race_category_length"
	entityRankingSystem      = "ranking_system"
	entityRankingPoint       = "ranking_point"
)

// Keys pairs the internal and public identifiers of one row.
type Keys struct {
	Entity   string
	Internal string
	Public   string
}

// DomainID returns the identifier surfaced to callers: the public key, or
// the internal key for legacy rows that never got one.
func (k Keys) DomainID() string {
	if k.Public != "" {
		return k.Public
	}
	if k.Internal == "" {
		return ""
	}
	metrics.LegacyKeysTotal.WithLabelValues(k.Entity).Inc()
	return k.Internal
}

func textKeys(entity string, id uuid.UUID, public pgtype.Text) Keys {
	k := Keys{Entity: entity, Internal: id.String()}
	if public.Valid {
		k.Public = public.String
	}
	return k
}

func modelKeys(entity string, m relations.Keyed) Keys {
	k := Keys{Entity: entity, Internal: m.ID.String()}
	if m.PublicID != nil {
		k.Public = *m.PublicID
	}
	return k
}

// refID returns the domain id of a referenced row: from the loaded
// relation when there is one, the raw foreign key otherwise. Only the
// loaded relation can tell a legacy row apart, so the foreign key path is
// not counted as a legacy key.
func refID(entity string, fk uuid.UUID, rel relations.Keyer) string {
	if rel != nil {
		if k := rel.Key(); k != nil {
			return modelKeys(entity, *k).DomainID()
		}
	}
	return fk.String()
}
