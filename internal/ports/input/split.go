package input

import "context"

// SplitParticipantView is an immutable snapshot of one participant's state.
type SplitParticipantView struct {
	UserID      string
	DisplayName string
	Submitted   bool
	ProofCount  int
}

// SplitView is a consistent snapshot of a loot split for rendering.
type SplitView struct {
	ContextID        string
	GuildID          string
	ShareValue       float64
	Participants     []SplitParticipantView
	TrackerMessageID string
}

// StartSplitResult reports the created split and whether it displaced an
// in-progress split for the same context.
type StartSplitResult struct {
	Split    SplitView
	Replaced bool
}

// ProofResult reports the effect of an observed proof message.
type ProofResult struct {
	// Accepted is false when the context has no active split or the
	// author is not a tagged participant.
	Accepted bool
	// AllSubmitted is true when this proof completed the set, which
	// transitions the split to verification-pending.
	AllSubmitted bool
	Split        SplitView
}

// SplitParticipant pairs a tagged user with their display name.
type SplitParticipant struct {
	UserID      string
	DisplayName string
}

// SplitUseCase is the loot-split coordinator contract. Permission gating is
// the caller's responsibility; these operations only enforce state.
type SplitUseCase interface {
	StartSplit(guildID, contextID string, participants []SplitParticipant, rawValue string) (StartSplitResult, error)
	SetTrackerMessage(contextID, messageID string) error
	RecordProof(contextID, userID string) ProofResult
	// Confirm credits each submitted, not-yet-credited participant's share
	// to the ledger exactly once, then removes the split.
	Confirm(ctx context.Context, contextID string) (SplitView, error)
	Cancel(contextID string) error
	Lookup(contextID string) (SplitView, error)
}
