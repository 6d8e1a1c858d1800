package application

import (
	"context"
	"fmt"

	"raidbot/internal/ports/input"
	"raidbot/internal/ports/output"
	"raidbot/pkg/value"
)

var _ input.LedgerUseCase = (*LedgerService)(nil)

// LedgerService wraps the ledger and settings stores with magnitude-string
// parsing for the admin value commands.
type LedgerService struct {
	ledger   output.LedgerRepository
	settings output.SettingsRepository
}

func NewLedgerService(ledger output.LedgerRepository, settings output.SettingsRepository) *LedgerService {
	return &LedgerService{ledger: ledger, settings: settings}
}

func (s *LedgerService) AddValue(ctx context.Context, guildID, playerID, rawValue string) (float64, error) {
	amount, err := value.Parse(rawValue)
	if err != nil {
		return 0, err
	}
	if err := s.ledger.AddToPlayerValue(ctx, guildID, playerID, amount); err != nil {
		return 0, fmt.Errorf("add player value: %w", err)
	}
	return amount, nil
}

func (s *LedgerService) RemoveValue(ctx context.Context, guildID, playerID, rawValue string) (float64, error) {
	amount, err := value.Parse(rawValue)
	if err != nil {
		return 0, err
	}
	if err := s.ledger.RemoveFromPlayerValue(ctx, guildID, playerID, amount); err != nil {
		return 0, fmt.Errorf("remove player value: %w", err)
	}
	return amount, nil
}

func (s *LedgerService) ResetValue(ctx context.Context, guildID, playerID string) error {
	if err := s.ledger.ResetPlayerValue(ctx, guildID, playerID); err != nil {
		return fmt.Errorf("reset player value: %w", err)
	}
	return nil
}

func (s *LedgerService) GetValue(ctx context.Context, guildID, playerID string) (float64, error) {
	return s.ledger.GetPlayerValue(ctx, guildID, playerID)
}

func (s *LedgerService) SetRole(ctx context.Context, guildID, settingName, roleID string) error {
	if err := s.settings.SetRoleSetting(ctx, guildID, settingName, roleID); err != nil {
		return fmt.Errorf("set role setting: %w", err)
	}
	return nil
}

func (s *LedgerService) GetRole(ctx context.Context, guildID, settingName string) (string, error) {
	return s.settings.GetRoleSetting(ctx, guildID, settingName)
}

func (s *LedgerService) ListRoles(ctx context.Context, guildID string) ([]output.RoleSetting, error) {
	return s.settings.ListRoleSettings(ctx, guildID)
}
