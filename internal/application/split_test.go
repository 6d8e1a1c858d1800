package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidbot/internal/domain"
	"raidbot/internal/ports/input"
)

// memLedger mirrors the store contract in memory, including the zero floor
// on removals.
type memLedger struct {
	mu      sync.Mutex
	values  map[string]float64
	failFor map[string]error
	adds    []string
}

func newMemLedger() *memLedger {
	return &memLedger{
		values:  make(map[string]float64),
		failFor: make(map[string]error),
	}
}

func (l *memLedger) key(guildID, playerID string) string { return guildID + "/" + playerID }

func (l *memLedger) GetPlayerValue(ctx context.Context, guildID, playerID string) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.values[l.key(guildID, playerID)], nil
}

func (l *memLedger) SetPlayerValue(ctx context.Context, guildID, playerID string, value float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values[l.key(guildID, playerID)] = value
	return nil
}

func (l *memLedger) AddToPlayerValue(ctx context.Context, guildID, playerID string, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.failFor[playerID]; err != nil {
		return err
	}
	l.adds = append(l.adds, playerID)
	l.values[l.key(guildID, playerID)] += amount
	return nil
}

func (l *memLedger) RemoveFromPlayerValue(ctx context.Context, guildID, playerID string, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := l.key(guildID, playerID)
	l.values[k] -= amount
	if l.values[k] < 0 {
		l.values[k] = 0
	}
	return nil
}

func (l *memLedger) ResetPlayerValue(ctx context.Context, guildID, playerID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values[l.key(guildID, playerID)] = 0
	return nil
}

func party(ids ...string) []input.SplitParticipant {
	out := make([]input.SplitParticipant, len(ids))
	for i, id := range ids {
		out[i] = input.SplitParticipant{UserID: id, DisplayName: "name-" + id}
	}
	return out
}

func TestStartSplitShareMath(t *testing.T) {
	s := NewSplitService(newMemLedger())

	res, err := s.StartSplit("guild", "thread-1", party("a", "b", "c"), "9k")
	require.NoError(t, err)

	assert.False(t, res.Replaced)
	assert.InDelta(t, 3000, res.Split.ShareValue, 1e-9)
	require.Len(t, res.Split.Participants, 3)
	assert.Equal(t, "a", res.Split.Participants[0].UserID)
	assert.False(t, res.Split.Participants[0].Submitted)
}

func TestStartSplitWithoutValue(t *testing.T) {
	s := NewSplitService(newMemLedger())

	res, err := s.StartSplit("guild", "thread-1", party("a"), "")
	require.NoError(t, err)
	assert.Zero(t, res.Split.ShareValue)
}

func TestStartSplitErrors(t *testing.T) {
	s := NewSplitService(newMemLedger())

	_, err := s.StartSplit("guild", "thread-1", nil, "9k")
	assert.ErrorIs(t, err, domain.ErrNoParticipants)

	_, err = s.StartSplit("guild", "thread-1", party("a"), "lots")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestStartSplitOverwritesActiveSplit(t *testing.T) {
	s := NewSplitService(newMemLedger())

	_, err := s.StartSplit("guild", "thread-1", party("a", "b"), "4k")
	require.NoError(t, err)
	s.RecordProof("thread-1", "a")

	res, err := s.StartSplit("guild", "thread-1", party("a", "c"), "6k")
	require.NoError(t, err)

	assert.True(t, res.Replaced)
	assert.InDelta(t, 3000, res.Split.ShareValue, 1e-9)
	// Submission state from the discarded split does not carry over.
	assert.False(t, res.Split.Participants[0].Submitted)
}

func TestRecordProof(t *testing.T) {
	s := NewSplitService(newMemLedger())
	_, err := s.StartSplit("guild", "thread-1", party("a", "b"), "4k")
	require.NoError(t, err)

	res := s.RecordProof("thread-1", "a")
	assert.True(t, res.Accepted)
	assert.False(t, res.AllSubmitted)
	assert.Equal(t, 1, res.Split.Participants[0].ProofCount)

	// Repeat proofs from the same participant bump the count only.
	res = s.RecordProof("thread-1", "a")
	assert.True(t, res.Accepted)
	assert.False(t, res.AllSubmitted)
	assert.Equal(t, 2, res.Split.Participants[0].ProofCount)

	// The completing proof reports AllSubmitted exactly once.
	res = s.RecordProof("thread-1", "b")
	assert.True(t, res.AllSubmitted)
	res = s.RecordProof("thread-1", "b")
	assert.True(t, res.Accepted)
	assert.False(t, res.AllSubmitted)
}

func TestRecordProofIgnoresStrangers(t *testing.T) {
	s := NewSplitService(newMemLedger())
	_, err := s.StartSplit("guild", "thread-1", party("a"), "")
	require.NoError(t, err)

	assert.False(t, s.RecordProof("thread-9", "a").Accepted)
	assert.False(t, s.RecordProof("thread-1", "outsider").Accepted)
}

func TestConfirmCreditsSubmittedOnly(t *testing.T) {
	ledger := newMemLedger()
	s := NewSplitService(ledger)
	_, err := s.StartSplit("guild", "thread-1", party("a", "b", "c"), "9k")
	require.NoError(t, err)

	s.RecordProof("thread-1", "a")
	s.RecordProof("thread-1", "b")

	view, err := s.Confirm(context.Background(), "thread-1")
	require.NoError(t, err)
	assert.Equal(t, "thread-1", view.ContextID)

	va, _ := ledger.GetPlayerValue(context.Background(), "guild", "a")
	vb, _ := ledger.GetPlayerValue(context.Background(), "guild", "b")
	vc, _ := ledger.GetPlayerValue(context.Background(), "guild", "c")
	assert.InDelta(t, 3000, va, 1e-9)
	assert.InDelta(t, 3000, vb, 1e-9)
	assert.Zero(t, vc)

	// Confirmed splits are gone; a second confirm credits nothing.
	_, err = s.Confirm(context.Background(), "thread-1")
	assert.ErrorIs(t, err, domain.ErrSplitNotFound)
	assert.Len(t, ledger.adds, 2)
}

func TestConfirmRetryAfterPartialFailure(t *testing.T) {
	ledger := newMemLedger()
	ledger.failFor["b"] = errors.New("connection reset")
	s := NewSplitService(ledger)

	_, err := s.StartSplit("guild", "thread-1", party("a", "b"), "6k")
	require.NoError(t, err)
	s.RecordProof("thread-1", "a")
	s.RecordProof("thread-1", "b")

	_, err = s.Confirm(context.Background(), "thread-1")
	require.Error(t, err)

	// The split stays registered, and the retry skips the participant that
	// was already credited.
	delete(ledger.failFor, "b")
	_, err = s.Confirm(context.Background(), "thread-1")
	require.NoError(t, err)

	va, _ := ledger.GetPlayerValue(context.Background(), "guild", "a")
	vb, _ := ledger.GetPlayerValue(context.Background(), "guild", "b")
	assert.InDelta(t, 3000, va, 1e-9)
	assert.InDelta(t, 3000, vb, 1e-9)
	assert.Equal(t, []string{"a", "b"}, ledger.adds)
}

func TestCancelSplit(t *testing.T) {
	ledger := newMemLedger()
	s := NewSplitService(ledger)
	_, err := s.StartSplit("guild", "thread-1", party("a"), "5k")
	require.NoError(t, err)
	s.RecordProof("thread-1", "a")

	require.NoError(t, s.Cancel("thread-1"))
	assert.Empty(t, ledger.adds)

	assert.ErrorIs(t, s.Cancel("thread-1"), domain.ErrSplitNotFound)
	_, err = s.Lookup("thread-1")
	assert.ErrorIs(t, err, domain.ErrSplitNotFound)
}

func TestSetTrackerMessage(t *testing.T) {
	s := NewSplitService(newMemLedger())
	_, err := s.StartSplit("guild", "thread-1", party("a"), "")
	require.NoError(t, err)

	require.NoError(t, s.SetTrackerMessage("thread-1", "msg-1"))
	view, err := s.Lookup("thread-1")
	require.NoError(t, err)
	assert.Equal(t, "msg-1", view.TrackerMessageID)

	assert.ErrorIs(t, s.SetTrackerMessage("thread-9", "msg-2"), domain.ErrSplitNotFound)
}
