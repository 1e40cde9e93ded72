package domain

// EventStatus is the lifecycle state of an event. The schema's CHECK
// constraints restrict stored values to these.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusAvailable EventStatus = "AVAILABLE"
	EventStatusSoldOut   EventStatus = "SOLD_OUT"
	EventStatusOngoing   EventStatus = "ONGOING"
	EventStatusFinished  EventStatus = "FINISHED"
)

// OrganizationState is the lifecycle state of an organization.
type OrganizationState string

const (
	OrganizationWaitingOwner OrganizationState = "WAITING_OWNER"
	OrganizationActive       OrganizationState = "ACTIVE"
	OrganizationDisabled     OrganizationState = "DISABLED"
)

// Role discriminates the authenticated user union.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleOrganizerOwner Role = "ORGANIZER_OWNER"
	RoleOrganizerStaff Role = "ORGANIZER_STAFF"
	RoleCyclist        Role = "CYCLIST"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOrganizerOwner, RoleOrganizerStaff, RoleCyclist:
		return true
	}
	return false
}

// IsOrganizer is true for both owner and staff organizers.
func (r Role) IsOrganizer() bool {
	return r == RoleOrganizerOwner || r == RoleOrganizerStaff
}
