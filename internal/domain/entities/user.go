package entities

import "raceboard/internal/domain"

// User is the authenticated user union. Exactly one of *Admin, *Organizer
// or *Cyclist implements it; switch on the concrete type or on Role().
// Base exposes the shared identity fields.
type User interface {
	Role() domain.Role
	Base() Identity
	isUser()
}

// Identity holds the fields shared by every user shape.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Timestamps
}

type Admin struct {
	Identity
}

func (*Admin) Role() domain.Role { return domain.RoleAdmin }
func (a *Admin) Base() Identity  { return a.Identity }
func (*Admin) isUser()           {}

type Organizer struct {
	Identity
	OrganizationID string `json:"organizationId"`
	IsOwner        bool   `json:"isOwner"`
}

func (o *Organizer) Role() domain.Role {
	if o.IsOwner {
		return domain.RoleOrganizerOwner
	}
	return domain.RoleOrganizerStaff
}
func (o *Organizer) Base() Identity { return o.Identity }
func (*Organizer) isUser()          {}

// Cyclist doubles as the cyclist shown in result tables, where Email is
// usually empty and HasAuth false for historical entries.
type Cyclist struct {
	Identity
	Gender   *string `json:"gender"`
	BornYear *int    `json:"bornYear"`
	HasAuth  bool    `json:"hasAuth"`
}

func (*Cyclist) Role() domain.Role { return domain.RoleCyclist }
func (c *Cyclist) Base() Identity  { return c.Identity }
func (*Cyclist) isUser()           {}

var (
	_ User = (*Admin)(nil)
	_ User = (*Organizer)(nil)
	_ User = (*Cyclist)(nil)
)
