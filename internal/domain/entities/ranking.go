package entities

type RankingSystem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Timestamps
}

// RankingPoint maps (ranking system, place) to points.
type RankingPoint struct {
	ID              string `json:"id"`
	RankingSystemID string `json:"rankingSystemId"`
	Place           int    `json:"place"`
	Points          int    `json:"points"`
	Timestamps
}
