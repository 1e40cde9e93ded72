package entities

import "raceboard/internal/domain"

// Timestamps is embedded in every domain record. Both fields are always
// populated ISO-8601 strings.
type Timestamps struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Event struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    *string            `json:"description"`
	DateTime       string             `json:"dateTime"`
	Year           int                `json:"year"`
	City           *string            `json:"city"`
	State          *string            `json:"state"`
	Country        *string            `json:"country"`
	Status         domain.EventStatus `json:"status"`
	IsPublic       bool               `json:"isPublic"`
	OrganizationID string             `json:"organizationId"`
	CreatedBy      *string            `json:"createdBy"`
	Timestamps
}

// IsFinished reports whether results can be expected for the event.
func (e *Event) IsFinished() bool {
	return e.Status == domain.EventStatusFinished
}

// EventWithRaces is the event-centric flattening: one event and its races,
// each carrying its category trio.
type EventWithRaces struct {
	Event
	Races []RaceWithCategories `json:"races"`
}
