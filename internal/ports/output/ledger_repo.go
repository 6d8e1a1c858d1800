package output

import "context"

// LedgerRepository is the per-guild cumulative loot value store.
type LedgerRepository interface {
	GetPlayerValue(ctx context.Context, guildID, playerID string) (float64, error)
	SetPlayerValue(ctx context.Context, guildID, playerID string, value float64) error
	AddToPlayerValue(ctx context.Context, guildID, playerID string, amount float64) error
	// RemoveFromPlayerValue subtracts amount, clamping the result at 0.
	RemoveFromPlayerValue(ctx context.Context, guildID, playerID string, amount float64) error
	ResetPlayerValue(ctx context.Context, guildID, playerID string) error
}
