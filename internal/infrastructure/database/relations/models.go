// Package relations holds the bun models used for nested relation fetches.
// Flat single-table reads go through sqlc_generated instead.
package relations

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Keyed holds the two identifiers every table carries. PublicID is nil for
// legacy rows.
type Keyed struct {
	ID       uuid.UUID `bun:"id,pk,type:uuid"`
	PublicID *string   `bun:"public_id"`
}

// Stamps holds the audit columns. Both are nullable in legacy rows.
type Stamps struct {
	CreatedAt *time.Time `bun:"created_at"`
	UpdatedAt *time.Time `bun:"updated_at"`
}

// Keyer is implemented by every model. Key returns nil on a nil receiver,
// which is how an unloaded belongs-to relation looks.
type Keyer interface {
	Key() *Keyed
}

type Organization struct {
	bun.BaseModel `bun:"table:organization,alias:org"`
	Keyed
	Name        string  `bun:"name,notnull"`
	Description *string `bun:"description"`
	State       string  `bun:"state,notnull"`
	Stamps
}

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	Keyed
	AuthID    *uuid.UUID `bun:"auth_id,type:uuid"`
	Email     string     `bun:"email,notnull"`
	FirstName string     `bun:"first_name,notnull"`
	LastName  string     `bun:"last_name,notnull"`
	Role      string     `bun:"role,notnull"`
	Stamps
}

type Cyclist struct {
	bun.BaseModel `bun:"table:cyclist,alias:cyclist"`
	Keyed
	UserID    *uuid.UUID `bun:"user_id,type:uuid"`
	FirstName string     `bun:"first_name,notnull"`
	LastName  string     `bun:"last_name,notnull"`
	Gender    *string    `bun:"gender"`
	BornYear  *int       `bun:"born_year"`
	Stamps

	// ORM relationships
	User        *User         `bun:"rel:belongs-to,join:user_id=id"`
	RaceResults []*RaceResult `bun:"rel:has-many,join:id=cyclist_id"`
}

type RaceCategory struct {
	bun.BaseModel `bun:"table:race_category,alias:rc"`
	Keyed
	Name        string  `bun:"name,notnull"`
	Description *string `bun:"description"`
	Stamps
}

type RaceCategoryGender struct {
	bun.BaseModel `bun:"table:race_category_gender,alias:rcg"`
	Keyed
	Name        string  `bun:"name,notnull"`
	Description *string `bun:"description"`
	Stamps
}

type RaceCategoryLength struct {
	bun.BaseModel `bun:"table:race_category_length,alias:rcl"`
	Keyed
	Name        string  `bun:"name,notnull"`
	Description *string `bun:"description"`
	Stamps
}

type RankingSystem struct {
	bun.BaseModel `bun:"table:ranking_system,alias:rs"`
	Keyed
	Name        string  `bun:"name,notnull"`
	Description *string `bun:"description"`
	Stamps
}

type RankingPoint struct {
	bun.BaseModel `bun:"table:ranking_point,alias:rp"`
	Keyed
	RankingSystemID uuid.UUID `bun:"ranking_system_id,notnull,type:uuid"`
	Place           int       `bun:"place,notnull"`
	Points          int       `bun:"points,notnull"`
	Stamps

	// ORM relationships
	RankingSystem *RankingSystem `bun:"rel:belongs-to,join:ranking_system_id=id"`
}

type Event struct {
	bun.BaseModel `bun:"table:event,alias:event"`
	Keyed
	Name           string     `bun:"name,notnull"`
	Description    *string    `bun:"description"`
	DateTime       time.Time  `bun:"date_time,notnull"`
	Year           int        `bun:"year,notnull"`
	City           *string    `bun:"city"`
	State          *string    `bun:"state"`
	Country        *string    `bun:"country"`
	Status         string     `bun:"status,notnull"`
	IsPublic       bool       `bun:"is_public,notnull"`
	OrganizationID uuid.UUID  `bun:"organization_id,notnull,type:uuid"`
	CreatedBy      *uuid.UUID `bun:"created_by,type:uuid"`
	Stamps

	// ORM relationships
	Organization *Organization `bun:"rel:belongs-to,join:organization_id=id"`
	Creator      *User         `bun:"rel:belongs-to,join:created_by=id"`
	Races        []*Race       `bun:"rel:has-many,join:id=event_id"`
}

type Race struct {
	bun.BaseModel `bun:"table:race,alias:race"`
	Keyed
	EventID              uuid.UUID  `bun:"event_id,notnull,type:uuid"`
	RaceCategoryID       uuid.UUID  `bun:"race_category_id,notnull,type:uuid"`
	RaceCategoryGenderID uuid.UUID  `bun:"race_category_gender_id,notnull,type:uuid"`
	RaceCategoryLengthID uuid.UUID  `bun:"race_category_length_id,notnull,type:uuid"`
	RankingSystemID      uuid.UUID  `bun:"ranking_system_id,notnull,type:uuid"`
	Name                 *string    `bun:"name"`
	Description          *string    `bun:"description"`
	StartAt              *time.Time `bun:"start_at"`
	IsPublic             bool       `bun:"is_public,notnull"`
	Stamps

	// ORM relationships
	Event              *Event              `bun:"rel:belongs-to,join:event_id=id"`
	RaceCategory       *RaceCategory       `bun:"rel:belongs-to,join:race_category_id=id"`
	RaceCategoryGender *RaceCategoryGender `bun:"rel:belongs-to,join:race_category_gender_id=id"`
	RaceCategoryLength *RaceCategoryLength `bun:"rel:belongs-to,join:race_category_length_id=id"`
	RankingSystem      *RankingSystem      `bun:"rel:belongs-to,join:ranking_system_id=id"`
	RaceResults        []*RaceResult       `bun:"rel:has-many,join:id=race_id"`
}

type RaceResult struct {
	bun.BaseModel `bun:"table:race_result,alias:race_result"`
	Keyed
	RaceID         uuid.UUID  `bun:"race_id,notnull,type:uuid"`
	CyclistID      uuid.UUID  `bun:"cyclist_id,notnull,type:uuid"`
	Place          int        `bun:"place,notnull"`
	Time           *string    `bun:"time"`
	RankingPointID *uuid.UUID `bun:"ranking_point_id,type:uuid"`
	Stamps

	// ORM relationships
	Race         *Race         `bun:"rel:belongs-to,join:race_id=id"`
	Cyclist      *Cyclist      `bun:"rel:belongs-to,join:cyclist_id=id"`
	RankingPoint *RankingPoint `bun:"rel:belongs-to,join:ranking_point_id=id"`
}

func key(k *Keyed) *Keyed {
	if k == nil || k.ID == uuid.Nil {
		return nil
	}
	return k
}

func (m *Organization) Key() *Keyed {
	if m == nil {
		return nil
	}
	return key(&m.Keyed)
}

func (m *User) Key() *Keyed {
	if m == nil {
		return nil
	}
	return key(&m.Keyed)
}

func (m *Cyclist) Key() *Keyed {
	if m == nil {
		return nil
	}
	return key(&m.Keyed)
}

func (m *RaceCategory) Key() *Keyed {
	if m == nil {
		return nil
	}
	return key(&m.Keyed)
}

func (m *RaceCategoryGender) Key() *Keyed {
	if m == nil {
		return nil
	}
	return key(&m.Keyed)
}

func (m *RaceCategoryLength) Key() *Keyed {
	if m == nil {
		return nil
	}
	return key(&m.Keyed)
}

func (m *RankingSystem) Key() *Keyed {
	if m == nil {
		return nil
	}
	return key(&m.Keyed)
}

func (m *RankingPoint) Key() *Keyed {
	if m == nil {
		return nil
	}
	return key(&m.Keyed)
}

func (m *Event) Key() *Keyed {
	if m == nil {
		return nil
	}
	return key(&m.Keyed)
}

func (m *Race) Key() *Keyed {
	if m == nil {
		return nil
	}
	return key(&m.Keyed)
}

func (m *RaceResult) Key() *Keyed {
	if m == nil {
		return nil
	}
	return key(&m.Keyed)
}

var (
	_ Keyer = (*Organization)(nil)
	_ Keyer = (*User)(nil)
	_ Keyer = (*Cyclist)(nil)
	_ Keyer = (*RaceCategory)(nil)
	_ Keyer = (*RaceCategoryGender)(nil)
	_ Keyer = (*RaceCategoryLength)(nil)
	_ Keyer = (*RankingSystem)(nil)
	_ Keyer = (*RankingPoint)(nil)
	_ Keyer = (*Event)(nil)
	_ Keyer = (*Race)(nil)
	_ Keyer = (*RaceResult)(nil)
)
