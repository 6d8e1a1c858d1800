package application

import (
	"math/rand/v2"
	"sync"
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/input"
)

var _ input.EventUseCase = (*EventRegistry)(nil)

// EventRegistry owns the lifecycle of announced events and serializes slot
// claims across concurrently arriving interactions. One instance exists per
// announcement kind; the kinds differ only in the role template they pass to
// CreateEvent.
type EventRegistry struct {
	mu        sync.Mutex
	events    map[int]*entities.Event
	byMessage map[string]int
	now       func() time.Time
}

func NewEventRegistry() *EventRegistry {
	return &EventRegistry{
		events:    make(map[int]*entities.Event),
		byMessage: make(map[string]int),
		now:       time.Now,
	}
}

// CreateEvent allocates a fresh unique ID, initializes every template role to
// an empty slot, and stores the event.
func (r *EventRegistry) CreateEvent(channelID, creatorID, title string, startTime time.Time, roleTemplate []string) input.EventInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := rand.IntN(9000) + 1000
	for _, taken := r.events[id]; taken; _, taken = r.events[id] {
		id = rand.IntN(9000) + 1000
	}

	slots := make(map[string][]string, len(roleTemplate))
	order := make([]string, len(roleTemplate))
	for i, label := range roleTemplate {
		slots[label] = nil
		order[i] = label
	}

	event := &entities.Event{
		ID:          id,
		ChannelID:   channelID,
		CreatorID:   creatorID,
		Title:       title,
		StartTime:   startTime,
		RoleSlots:   slots,
		RoleOrder:   order,
		ActiveRoles: make(map[string]string),
		CreatedAt:   r.now(),
	}
	r.events[id] = event
	return eventInfo(event)
}

// BindMessage indexes the posted announcement so later interactions can be
// routed back to the event.
func (r *EventRegistry) BindMessage(eventID int, messageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.MessageID = messageID
	r.byMessage[messageID] = eventID
	return nil
}

func (r *EventRegistry) LookupByMessageID(messageID string) (input.EventInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byMessage[messageID]
	if !ok {
		return input.EventInfo{}, domain.ErrEventNotFound
	}
	return eventInfo(r.events[id]), nil
}

// ToggleSlot claims or releases a role slot for a user. The whole
// read-modify-write runs inside the registry's critical section so two
// concurrent presses can never produce a lost update, and a user can never
// hold more than one role.
func (r *EventRegistry) ToggleSlot(eventID int, roleLabel, userMention string) (input.SlotToggleResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return input.SlotToggleResult{}, domain.ErrEventNotFound
	}
	if event.Cancelled {
		return input.SlotToggleResult{}, domain.ErrEventCancelled
	}
	if !event.HasRole(roleLabel) {
		return input.SlotToggleResult{}, domain.ErrEventNotFound
	}

	if contains(event.RoleSlots[roleLabel], userMention) {
		event.RoleSlots[roleLabel] = remove(event.RoleSlots[roleLabel], userMention)
		delete(event.ActiveRoles, userMention)
		return input.SlotToggleResult{Change: input.SlotUnsigned, Slots: slotViews(event)}, nil
	}

	if _, taken := event.ActiveRoles[userMention]; taken {
		return input.SlotToggleResult{}, domain.ErrAlreadySignedUp
	}

	event.RoleSlots[roleLabel] = append(event.RoleSlots[roleLabel], userMention)
	event.ActiveRoles[userMention] = roleLabel
	return input.SlotToggleResult{Change: input.SlotSignedUp, Slots: slotViews(event)}, nil
}

// Cancel flags the event as cancelled and drops it from the registry.
// Cancelling an already-removed event reports ErrEventNotFound.
func (r *EventRegistry) Cancel(eventID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.Cancelled = true
	delete(r.events, eventID)
	delete(r.byMessage, event.MessageID)
	return nil
}

// Remove drops a fired event from the registry without flagging it cancelled.
func (r *EventRegistry) Remove(eventID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return
	}
	delete(r.events, eventID)
	delete(r.byMessage, event.MessageID)
}

// Active reports whether the event is still registered and not cancelled.
func (r *EventRegistry) Active(eventID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	return ok && !event.Cancelled
}

// slotViews snapshots the slot map in template order. Callers must hold r.mu.
func slotViews(event *entities.Event) []input.RoleSlotView {
	views := make([]input.RoleSlotView, len(event.RoleOrder))
	for i, label := range event.RoleOrder {
		members := make([]string, len(event.RoleSlots[label]))
		copy(members, event.RoleSlots[label])
		views[i] = input.RoleSlotView{Label: label, Members: members}
	}
	return views
}

func eventInfo(event *entities.Event) input.EventInfo {
	return input.EventInfo{
		ID:        event.ID,
		ChannelID: event.ChannelID,
		CreatorID: event.CreatorID,
		Title:     event.Title,
		StartTime: event.StartTime,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func remove(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
