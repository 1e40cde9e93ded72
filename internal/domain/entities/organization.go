package entities

import "raceboard/internal/domain"

type Organization struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description *string                  `json:"description"`
	State       domain.OrganizationState `json:"state"`
	// EventCount is only set by queries that aggregate it.
	EventCount *int `json:"eventCount,omitempty"`
	Timestamps
}
