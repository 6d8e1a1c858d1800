package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/input"
	"raidbot/internal/ports/output"
	"raidbot/pkg/value"
)

var _ input.SplitUseCase = (*SplitService)(nil)

// SplitService tracks in-progress loot splits keyed by their originating
// channel or thread. Proof submissions and crediting run inside a single
// critical section so a retried confirmation can never double-credit a
// participant.
type SplitService struct {
	mu     sync.Mutex
	splits map[string]*entities.LootSplit
	ledger output.LedgerRepository
	now    func() time.Time
}

func NewSplitService(ledger output.LedgerRepository) *SplitService {
	return &SplitService{
		splits: make(map[string]*entities.LootSplit),
		ledger: ledger,
		now:    time.Now,
	}
}

// StartSplit divides rawValue evenly across the tagged participants (zero
// when no value is supplied) and stores the split. A split already active in
// the same context is overwritten; the result flags it so the caller can
// warn that its submission state was discarded.
func (s *SplitService) StartSplit(guildID, contextID string, participants []input.SplitParticipant, rawValue string) (input.StartSplitResult, error) {
	if len(participants) == 0 {
		return input.StartSplitResult{}, domain.ErrNoParticipants
	}

	share := 0.0
	if rawValue != "" {
		total, err := value.Parse(rawValue)
		if err != nil {
			return input.StartSplitResult{}, err
		}
		share = total / float64(len(participants))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, replaced := s.splits[contextID]

	split := &entities.LootSplit{
		ContextID:        contextID,
		GuildID:          guildID,
		ShareValue:       share,
		Participants:     make(map[string]*entities.SplitParticipant, len(participants)),
		ParticipantOrder: make([]string, len(participants)),
		CreatedAt:        s.now(),
	}
	for i, p := range participants {
		split.Participants[p.UserID] = &entities.SplitParticipant{
			UserID:      p.UserID,
			DisplayName: p.DisplayName,
		}
		split.ParticipantOrder[i] = p.UserID
	}
	s.splits[contextID] = split

	return input.StartSplitResult{Split: splitView(split), Replaced: replaced}, nil
}

// SetTrackerMessage records the live status message once it has been posted.
func (s *SplitService) SetTrackerMessage(contextID, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	split, ok := s.splits[contextID]
	if !ok {
		return domain.ErrSplitNotFound
	}
	split.TrackerMessageID = messageID
	return nil
}

// RecordProof marks a participant's proof as submitted. Messages from
// contexts without an active split, or from users who are not tagged
// participants, are ignored. AllSubmitted is reported only on the proof that
// completes the set, so the verification prompt is posted exactly once.
func (s *SplitService) RecordProof(contextID, userID string) input.ProofResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	split, ok := s.splits[contextID]
	if !ok {
		return input.ProofResult{}
	}
	participant, ok := split.Participants[userID]
	if !ok {
		return input.ProofResult{}
	}

	wasComplete := split.AllSubmitted()
	participant.Submitted = true
	participant.ProofCount++

	return input.ProofResult{
		Accepted:     true,
		AllSubmitted: split.AllSubmitted() && !wasComplete,
		Split:        splitView(split),
	}
}

// Confirm credits each submitted participant's share to the ledger and
// removes the split. The ValueCredited latch is checked and set around the
// store write, so participants already credited by a partially failed or
// repeated confirmation are skipped.
func (s *SplitService) Confirm(ctx context.Context, contextID string) (input.SplitView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	split, ok := s.splits[contextID]
	if !ok {
		return input.SplitView{}, domain.ErrSplitNotFound
	}

	for _, userID := range split.ParticipantOrder {
		participant := split.Participants[userID]
		if !participant.Submitted || participant.ValueCredited {
			continue
		}
		if err := s.ledger.AddToPlayerValue(ctx, split.GuildID, userID, split.ShareValue); err != nil {
			// Split stays registered so the confirmation can be retried;
			// already-credited participants keep their latch.
			return input.SplitView{}, fmt.Errorf("credit %s: %w", userID, err)
		}
		participant.ValueCredited = true
	}

	delete(s.splits, contextID)
	return splitView(split), nil
}

// Cancel removes the split without crediting anyone.
func (s *SplitService) Cancel(contextID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.splits[contextID]; !ok {
		return domain.ErrSplitNotFound
	}
	delete(s.splits, contextID)
	return nil
}

func (s *SplitService) Lookup(contextID string) (input.SplitView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	split, ok := s.splits[contextID]
	if !ok {
		return input.SplitView{}, domain.ErrSplitNotFound
	}
	return splitView(split), nil
}

// splitView snapshots a split in tag order. Callers must hold s.mu.
func splitView(split *entities.LootSplit) input.SplitView {
	participants := make([]input.SplitParticipantView, len(split.ParticipantOrder))
	for i, userID := range split.ParticipantOrder {
		p := split.Participants[userID]
		participants[i] = input.SplitParticipantView{
			UserID:      p.UserID,
			DisplayName: p.DisplayName,
			Submitted:   p.Submitted,
			ProofCount:  p.ProofCount,
		}
	}
	return input.SplitView{
		ContextID:        split.ContextID,
		GuildID:          split.GuildID,
		ShareValue:       split.ShareValue,
		Participants:     participants,
		TrackerMessageID: split.TrackerMessageID,
	}
}
