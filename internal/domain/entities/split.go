package entities

import "time"

// SplitParticipant tracks one tagged player's progress in a loot split.
type SplitParticipant struct {
	UserID      string
	DisplayName string
	Submitted   bool
	ProofCount  int
	// ValueCredited latches once the share has been written to the
	// ledger, so a retried confirmation never credits twice.
	ValueCredited bool
}

// LootSplit is one in-progress loot distribution, keyed by the channel or
// thread it was started in.
type LootSplit struct {
	ContextID        string
	GuildID          string
	ShareValue       float64
	Participants     map[string]*SplitParticipant
	ParticipantOrder []string
	TrackerMessageID string
	CreatedAt        time.Time
}

// AllSubmitted reports whether every participant has submitted proof.
func (ls *LootSplit) AllSubmitted() bool {
	for _, p := range ls.Participants {
		if !p.Submitted {
			return false
		}
	}
	return len(ls.Participants) > 0
}
