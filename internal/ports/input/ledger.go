package input

import (
	"context"

	"raidbot/internal/ports/output"
)

// LedgerUseCase wraps the ledger store with magnitude-string parsing.
type LedgerUseCase interface {
	// AddValue parses rawValue ("2.5k", "1m", "300") and credits it.
	// Returns the parsed amount.
	AddValue(ctx context.Context, guildID, playerID, rawValue string) (float64, error)
	// RemoveValue debits the parsed amount, clamped at 0.
	RemoveValue(ctx context.Context, guildID, playerID, rawValue string) (float64, error)
	ResetValue(ctx context.Context, guildID, playerID string) error
	GetValue(ctx context.Context, guildID, playerID string) (float64, error)

	SetRole(ctx context.Context, guildID, settingName, roleID string) error
	GetRole(ctx context.Context, guildID, settingName string) (string, error)
	ListRoles(ctx context.Context, guildID string) ([]output.RoleSetting, error)
}
