package application

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidbot/internal/domain"
	"raidbot/internal/ports/input"
)

func newTestEvent(t *testing.T, r *EventRegistry, template ...string) input.EventInfo {
	t.Helper()
	info := r.CreateEvent("chan-1", "creator-1", "Test Raid", time.Now().Add(30*time.Minute), template)
	require.NoError(t, r.BindMessage(info.ID, fmt.Sprintf("msg-%d", info.ID)))
	return info
}

func membersOf(slots []input.RoleSlotView, label string) []string {
	for _, slot := range slots {
		if slot.Label == label {
			return slot.Members
		}
	}
	return nil
}

func TestToggleSlotScenario(t *testing.T) {
	r := NewEventRegistry()
	info := newTestEvent(t, r, "Tank", "Healer")

	// A claims Tank.
	res, err := r.ToggleSlot(info.ID, "Tank", "<@A>")
	require.NoError(t, err)
	assert.Equal(t, input.SlotSignedUp, res.Change)
	assert.Equal(t, []string{"<@A>"}, membersOf(res.Slots, "Tank"))

	// A claims Healer while holding Tank: rejected, no implicit move.
	_, err = r.ToggleSlot(info.ID, "Healer", "<@A>")
	assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)

	// A unclaims Tank.
	res, err = r.ToggleSlot(info.ID, "Tank", "<@A>")
	require.NoError(t, err)
	assert.Equal(t, input.SlotUnsigned, res.Change)
	assert.Empty(t, membersOf(res.Slots, "Tank"))

	// Now Healer is claimable.
	res, err = r.ToggleSlot(info.ID, "Healer", "<@A>")
	require.NoError(t, err)
	assert.Equal(t, input.SlotSignedUp, res.Change)
	assert.Equal(t, []string{"<@A>"}, membersOf(res.Slots, "Healer"))
}

func TestToggleSlotPreservesClaimOrder(t *testing.T) {
	r := NewEventRegistry()
	info := newTestEvent(t, r, "Tank")

	for _, user := range []string{"<@A>", "<@B>", "<@C>"} {
		_, err := r.ToggleSlot(info.ID, "Tank", user)
		require.NoError(t, err)
	}
	res, err := r.ToggleSlot(info.ID, "Tank", "<@B>")
	require.NoError(t, err)
	assert.Equal(t, []string{"<@A>", "<@C>"}, membersOf(res.Slots, "Tank"))
}

func TestToggleSlotUnknownEvent(t *testing.T) {
	r := NewEventRegistry()
	_, err := r.ToggleSlot(1234, "Tank", "<@A>")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestToggleSlotAtMostOneRoleUnderConcurrency(t *testing.T) {
	r := NewEventRegistry()
	info := newTestEvent(t, r, "Tank", "Healer", "DPS")

	const users = 50
	var wg sync.WaitGroup
	for u := 0; u < users; u++ {
		wg.Add(1)
		go func(u int) {
			defer wg.Done()
			mention := fmt.Sprintf("<@u%d>", u)
			for _, role := range []string{"Tank", "Healer", "DPS"} {
				// Only the first claim may succeed; the rest must be
				// rejected, never silently moved.
				_, err := r.ToggleSlot(info.ID, role, mention)
				if err != nil {
					assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)
				}
			}
		}(u)
	}
	wg.Wait()

	res, err := r.ToggleSlot(info.ID, "Tank", "<@observer>")
	require.NoError(t, err)

	seen := make(map[string]int)
	total := 0
	for _, slot := range res.Slots {
		for _, member := range slot.Members {
			seen[member]++
			total++
		}
	}
	for member, count := range seen {
		assert.Equalf(t, 1, count, "user %s holds %d roles", member, count)
	}
	// 50 users plus the observer.
	assert.Equal(t, users+1, total)
}

func TestCancelIsTerminalAndIdempotent(t *testing.T) {
	r := NewEventRegistry()
	info := newTestEvent(t, r, "Tank")

	require.NoError(t, r.Cancel(info.ID))
	assert.False(t, r.Active(info.ID))

	// Second cancel reports not-found, not a crash.
	assert.ErrorIs(t, r.Cancel(info.ID), domain.ErrEventNotFound)

	// The message index entry is gone too.
	_, err := r.LookupByMessageID(fmt.Sprintf("msg-%d", info.ID))
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	_, err = r.ToggleSlot(info.ID, "Tank", "<@A>")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCreateEventAllocatesUniqueIDs(t *testing.T) {
	r := NewEventRegistry()
	ids := make(map[int]bool)
	for i := 0; i < 200; i++ {
		info := r.CreateEvent("chan", "creator", "Raid", time.Now().Add(time.Hour), []string{"Tank"})
		assert.False(t, ids[info.ID], "duplicate event id %d", info.ID)
		assert.GreaterOrEqual(t, info.ID, 1000)
		assert.LessOrEqual(t, info.ID, 9999)
		ids[info.ID] = true
	}
}

func TestLookupByMessageID(t *testing.T) {
	r := NewEventRegistry()
	info := newTestEvent(t, r, "Tank")

	got, err := r.LookupByMessageID(fmt.Sprintf("msg-%d", info.ID))
	require.NoError(t, err)
	assert.Equal(t, info.ID, got.ID)
	assert.Equal(t, "creator-1", got.CreatorID)

	_, err = r.LookupByMessageID("unknown")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRemoveDropsWithoutCancelling(t *testing.T) {
	r := NewEventRegistry()
	info := newTestEvent(t, r, "Tank")

	r.Remove(info.ID)
	assert.False(t, r.Active(info.ID))
	// Removing again is a no-op.
	r.Remove(info.ID)
}
