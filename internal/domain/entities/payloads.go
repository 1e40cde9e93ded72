package entities

// NewEvent is the payload of the atomic event creation procedure. Public
// keys are generated by the caller so they can be used for a redirect
// without a second round trip.
type NewEvent struct {
	PublicID             string    `json:"public_id" validate:"required"`
	OrganizationPublicID string    `json:"organization_public_id" validate:"required"`
	Name                 string    `json:"name" validate:"required,max=200"`
	Description          *string   `json:"description,omitempty"`
	DateTime             string    `json:"date_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	City                 *string   `json:"city,omitempty"`
	State                *string   `json:"state,omitempty"`
	Country              *string   `json:"country,omitempty"`
	IsPublic             bool      `json:"is_public"`
	Races                []NewRace `json:"races" validate:"dive"`
}

type NewRace struct {
	PublicID                   string  `json:"public_id" validate:"required"`
	RaceCategoryPublicID       string  `json:"race_category_public_id" validate:"required"`
	RaceCategoryGenderPublicID string  `json:"race_category_gender_public_id" validate:"required"`
	RaceCategoryLengthPublicID string  `json:"race_category_length_public_id" validate:"required"`
	RankingSystemPublicID      string  `json:"ranking_system_public_id" validate:"required"`
	Name                       *string `json:"name,omitempty"`
	IsPublic                   bool    `json:"is_public"`
}

type NewEventResult struct {
	EventID string   `json:"eventId"`
	RaceIDs []string `json:"raceIds"`
}

// OwnerSignup completes the account of an invited organization owner and
// activates the organization.
type OwnerSignup struct {
	Email                string  `json:"email" validate:"required,email"`
	FirstName            string  `json:"first_name" validate:"required,max=100"`
	LastName             string  `json:"last_name" validate:"required,max=100"`
	OrganizationPublicID string  `json:"organization_public_id" validate:"required"`
	OrganizationName     *string `json:"organization_name,omitempty" validate:"omitempty,max=200"`
}

type OwnerSignupResult struct {
	UserID         string `json:"userId"`
	OrganizationID string `json:"organizationId"`
}
