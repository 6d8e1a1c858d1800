package entities

import "time"

// Event is a scheduled raid with role sign-up slots and a start countdown.
type Event struct {
	ID        int
	MessageID string
	ChannelID string
	CreatorID string
	Title     string
	StartTime time.Time

	// RoleSlots maps a role label to the mentions signed up for it, in
	// claim order. RoleOrder preserves the template's display order.
	RoleSlots map[string][]string
	RoleOrder []string

	// ActiveRoles maps a signed-up user to the single role they occupy.
	ActiveRoles map[string]string

	Cancelled bool
	CreatedAt time.Time
}

// HasRole reports whether label is part of this event's template.
func (e *Event) HasRole(label string) bool {
	_, ok := e.RoleSlots[label]
	return ok
}

// SignupCount returns the total number of users signed up across all slots.
func (e *Event) SignupCount() int {
	return len(e.ActiveRoles)
}
