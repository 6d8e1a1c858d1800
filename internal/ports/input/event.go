package input

import (
	"context"
	"time"
)

// SlotChange is the outcome of a sign-up toggle.
type SlotChange int

const (
	SlotSignedUp SlotChange = iota
	SlotUnsigned
)

// RoleSlotView is an immutable snapshot of one role slot for rendering.
type RoleSlotView struct {
	Label   string
	Members []string
}

// SlotToggleResult carries the toggle outcome plus a consistent snapshot of
// all slots, taken inside the registry's critical section.
type SlotToggleResult struct {
	Change SlotChange
	Slots  []RoleSlotView
}

// EventInfo is an immutable view of an event's fixed fields.
type EventInfo struct {
	ID        int
	ChannelID string
	CreatorID string
	Title     string
	StartTime time.Time
}

// EventUseCase is the event registry + sign-up coordinator contract.
type EventUseCase interface {
	CreateEvent(channelID, creatorID, title string, startTime time.Time, roleTemplate []string) EventInfo
	BindMessage(eventID int, messageID string) error
	LookupByMessageID(messageID string) (EventInfo, error)
	ToggleSlot(eventID int, roleLabel, userMention string) (SlotToggleResult, error)
	Cancel(eventID int) error
	// Active reports whether the event is still registered and not cancelled.
	Active(eventID int) bool
}

// CountdownUseCase tracks elapsed time toward an event start.
type CountdownUseCase interface {
	// Track blocks until the event starts or is cancelled; run it in its
	// own goroutine.
	Track(ctx context.Context, event EventInfo)
}
