package entities

type Race struct {
	ID                   string  `json:"id"`
	EventID              string  `json:"eventId"`
	RaceCategoryID       string  `json:"raceCategoryId"`
	RaceCategoryGenderID string  `json:"raceCategoryGenderId"`
	RaceCategoryLengthID string  `json:"raceCategoryLengthId"`
	RankingSystemID      string  `json:"rankingSystemId"`
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	StartAt              *string `json:"startAt"`
	IsPublic             bool    `json:"isPublic"`
	Timestamps
}

// LookupEntry is a row of one of the small fixed lookup tables: race
// category, gender category, length category.
type LookupEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Timestamps
}

type RaceWithCategories struct {
	Race
	RaceCategory       *LookupEntry `json:"raceCategory,omitempty"`
	RaceCategoryGender *LookupEntry `json:"raceCategoryGender,omitempty"`
	RaceCategoryLength *LookupEntry `json:"raceCategoryLength,omitempty"`
}

// RaceWithResults is the race-centric flattening. RaceResults is ordered by
// place, ascending, and callers rely on that order.
type RaceWithResults struct {
	Race
	RaceResults []RaceResultWithCyclist `json:"raceResults"`
}
