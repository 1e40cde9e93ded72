package entities

type RaceResult struct {
	ID             string  `json:"id"`
	RaceID         string  `json:"raceId"`
	CyclistID      string  `json:"cyclistId"`
	Place          int     `json:"place"`
	Time           *string `json:"time"`
	RankingPointID *string `json:"rankingPointId"`
	// Points is copied from the referenced ranking point; nil when the
	// result has none.
	Points *int `json:"points"`
	Timestamps
}

type RaceResultWithCyclist struct {
	RaceResult
	Cyclist      Cyclist       `json:"cyclist"`
	RankingPoint *RankingPoint `json:"rankingPoint,omitempty"`
}

// CyclistRaceResult is one row of the cyclist-centric flattening: a result
// with its race, event and category detail inlined.
type CyclistRaceResult struct {
	RaceResult
	Race               Race           `json:"race"`
	Event              *Event         `json:"event,omitempty"`
	RaceCategory       *LookupEntry   `json:"raceCategory,omitempty"`
	RaceCategoryGender *LookupEntry   `json:"raceCategoryGender,omitempty"`
	RaceCategoryLength *LookupEntry   `json:"raceCategoryLength,omitempty"`
	RankingSystem      *RankingSystem `json:"rankingSystem,omitempty"`
	RankingPoint       *RankingPoint  `json:"rankingPoint,omitempty"`
}
