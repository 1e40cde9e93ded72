package database

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/serenize/snaker"

	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/infrastructure/database/sqlc_generated"
	"raceboard/internal/infrastructure/metrics"
)

// SessionUserRow is the jsonb document returned by get_session_user.
// Timestamps arrive as strings and are kept verbatim.
type SessionUserRow struct {
	Role      string            `json:"role"`
	User      *sessionIdentity  `json:"user"`
	Organizer *sessionOrganizer `json:"organizer"`
	Cyclist   *sessionCyclist   `json:"cyclist"`
}

type sessionIdentity struct {
	ID        string  `json:"id"`
	PublicID  *string `json:"public_id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

type sessionOrganizer struct {
	ID                   string  `json:"id"`
	OrganizationID       *string `json:"organization_id"`
	OrganizationPublicID *string `json:"organization_public_id"`
}

type sessionCyclist struct {
	ID       string  `json:"id"`
	PublicID *string `json:"public_id"`
	Gender   *string `json:"gender"`
	BornYear *int    `json:"born_year"`
	HasAuth  bool    `json:"has_auth"`
}

// UserLookupRow is the flat left-join row of the by-email and by-id user
// lookups. Organizer and cyclist columns are null for other roles.
type UserLookupRow = sqlc_generated.GetUserByEmailRow

// userShape is what both raw shapes normalize to before the role switch.
type userShape struct {
	role     string
	identity entities.Identity
	// organizationID is the domain id of the organizer's organization,
	// nil when there is no organizer row or it has no organization.
	organizationID *string
	cyclist        *cyclistShape
}

type cyclistShape struct {
	id       string
	gender   *string
	bornYear *int
	hasAuth  bool
}

func parseSessionUser(payload []byte) (SessionUserRow, error) {
	var row SessionUserRow
	if err := json.Unmarshal(payload, &row); err != nil {
		return SessionUserRow{}, fmt.Errorf("%w: decode session user: %v", domain.ErrIntegrity, err)
	}
	return row, nil
}

func (r SessionUserRow) shape() (userShape, error) {
	if r.User == nil {
		return userShape{}, missingField(r.Role, "user")
	}
	s := userShape{
		role: r.Role,
		identity: entities.Identity{
			ID:         keysFromStrings(entityUser, r.User.ID, r.User.PublicID).DomainID(),
			Email:      r.User.Email,
			FirstName:  r.User.FirstName,
			LastName:   r.User.LastName,
			Timestamps: rawStamps(r.User.CreatedAt, r.User.UpdatedAt),
		},
	}
	if r.Organizer != nil && r.Organizer.OrganizationID != nil {
		id := keysFromStrings(entityOrganization, *r.Organizer.OrganizationID, r.Organizer.OrganizationPublicID).DomainID()
		s.organizationID = &id
	}
	if r.Cyclist != nil {
		s.cyclist = &cyclistShape{
			id:       keysFromStrings(entityCyclist, r.Cyclist.ID, r.Cyclist.PublicID).DomainID(),
			gender:   r.Cyclist.Gender,
			bornYear: r.Cyclist.BornYear,
			hasAuth:  r.Cyclist.HasAuth,
		}
	}
	return s, nil
}

func lookupShape(r UserLookupRow) userShape {
	s := userShape{
		role: r.Role,
		identity: entities.Identity{
			ID:         textKeys(entityUser, r.ID, r.PublicID).DomainID(),
			Email:      r.Email,
			FirstName:  r.FirstName,
			LastName:   r.LastName,
			Timestamps: pgStamps(r.CreatedAt, r.UpdatedAt),
		},
	}
	if r.OrganizationID.Valid {
		id := textKeys(entityOrganization, r.OrganizationID.UUID, r.OrganizationPublicID).DomainID()
		s.organizationID = &id
	}
	if r.CyclistID.Valid {
		s.cyclist = &cyclistShape{
			id:       textKeys(entityCyclist, r.CyclistID.UUID, r.CyclistPublicID).DomainID(),
			gender:   textPtr(r.CyclistGender),
			bornYear: int4Ptr(r.CyclistBornYear),
			hasAuth:  r.AuthID.Valid,
		}
	}
	return s
}

// buildUser dispatches on the role tag. Each branch checks that the fields
// its shape needs are present.
func buildUser(s userShape) (entities.User, error) {
	user, err := buildUserShape(s)
	if err != nil {
		metrics.UserBuildsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	metrics.UserBuildsTotal.WithLabelValues(string(user.Role())).Inc()
	return user, nil
}

func buildUserShape(s userShape) (entities.User, error) {
	role := domain.Role(s.role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRole, s.role)
	}

	switch {
	case role == domain.RoleAdmin:
		return &entities.Admin{Identity: s.identity}, nil

	case role.IsOrganizer():
		if s.organizationID == nil {
			return nil, missingField(s.role, "organization_id")
		}
		return &entities.Organizer{
			Identity:       s.identity,
			OrganizationID: *s.organizationID,
			IsOwner:        role == domain.RoleOrganizerOwner,
		}, nil

	default:
		if s.cyclist == nil {
			return nil, missingField(s.role, "cyclist")
		}
		identity := s.identity
		identity.ID = s.cyclist.id
		return &entities.Cyclist{
			Identity: identity,
			Gender:   s.cyclist.gender,
			BornYear: s.cyclist.bornYear,
			HasAuth:  s.cyclist.hasAuth,
		}, nil
	}
}

func missingField(role, column string) error {
	return fmt.Errorf("%w: role %s requires %s", domain.ErrRoleShapeMismatch, role, snaker.SnakeToCamel(column))
}

func keysFromStrings(entity, internal string, public *string) Keys {
	k := Keys{Entity: entity, Internal: internal}
	if public != nil {
		k.Public = *public
	}
	return k
}

// parseAuthID reports whether s can be an identity provider subject.
func parseAuthID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	return id, err == nil
}
