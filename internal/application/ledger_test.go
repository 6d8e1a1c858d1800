package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidbot/internal/domain"
	"raidbot/internal/ports/output"
)

type memSettings struct {
	roles map[string]string
}

func newMemSettings() *memSettings {
	return &memSettings{roles: make(map[string]string)}
}

func (s *memSettings) SetRoleSetting(ctx context.Context, guildID, name, roleID string) error {
	s.roles[guildID+"/"+name] = roleID
	return nil
}

func (s *memSettings) GetRoleSetting(ctx context.Context, guildID, name string) (string, error) {
	return s.roles[guildID+"/"+name], nil
}

func (s *memSettings) ListRoleSettings(ctx context.Context, guildID string) ([]output.RoleSetting, error) {
	var out []output.RoleSetting
	for _, name := range domain.RoleSettingNames {
		if roleID, ok := s.roles[guildID+"/"+name]; ok {
			out = append(out, output.RoleSetting{Name: name, RoleID: roleID})
		}
	}
	return out, nil
}

func TestLedgerServiceValueFlow(t *testing.T) {
	ledger := newMemLedger()
	s := NewLedgerService(ledger, newMemSettings())
	ctx := context.Background()

	amount, err := s.AddValue(ctx, "guild", "player", "2.5k")
	require.NoError(t, err)
	assert.InDelta(t, 2500, amount, 1e-9)

	amount, err = s.RemoveValue(ctx, "guild", "player", "500")
	require.NoError(t, err)
	assert.InDelta(t, 500, amount, 1e-9)

	total, err := s.GetValue(ctx, "guild", "player")
	require.NoError(t, err)
	assert.InDelta(t, 2000, total, 1e-9)

	// Removing past zero clamps instead of going negative.
	_, err = s.RemoveValue(ctx, "guild", "player", "1m")
	require.NoError(t, err)
	total, err = s.GetValue(ctx, "guild", "player")
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = s.AddValue(ctx, "guild", "player", "750")
	require.NoError(t, err)
	require.NoError(t, s.ResetValue(ctx, "guild", "player"))
	total, err = s.GetValue(ctx, "guild", "player")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestLedgerServiceRejectsBadMagnitudes(t *testing.T) {
	ledger := newMemLedger()
	s := NewLedgerService(ledger, newMemSettings())
	ctx := context.Background()

	_, err := s.AddValue(ctx, "guild", "player", "a lot")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	_, err = s.RemoveValue(ctx, "guild", "player", "")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	assert.Empty(t, ledger.adds)
}

func TestLedgerServiceRoleSettings(t *testing.T) {
	s := NewLedgerService(newMemLedger(), newMemSettings())
	ctx := context.Background()

	roleID, err := s.GetRole(ctx, "guild", domain.SettingSplitAdmin)
	require.NoError(t, err)
	assert.Empty(t, roleID)

	require.NoError(t, s.SetRole(ctx, "guild", domain.SettingSplitAdmin, "role-1"))
	require.NoError(t, s.SetRole(ctx, "guild", domain.SettingSplitAdmin, "role-2"))

	roleID, err = s.GetRole(ctx, "guild", domain.SettingSplitAdmin)
	require.NoError(t, err)
	assert.Equal(t, "role-2", roleID)

	require.NoError(t, s.SetRole(ctx, "guild", domain.SettingContentAdmin, "role-3"))
	roles, err := s.ListRoles(ctx, "guild")
	require.NoError(t, err)
	assert.Len(t, roles, 2)
}
