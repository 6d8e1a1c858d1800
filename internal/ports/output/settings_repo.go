package output

import "context"

// RoleSetting is one named permission bound to a Discord role.
type RoleSetting struct {
	Name   string
	RoleID string
}

// SettingsRepository stores per-guild named role settings (last write wins).
type SettingsRepository interface {
	SetRoleSetting(ctx context.Context, guildID, name, roleID string) error
	// GetRoleSetting returns "" when the setting has never been set.
	GetRoleSetting(ctx context.Context, guildID, name string) (string, error)
	ListRoleSettings(ctx context.Context, guildID string) ([]RoleSetting, error)
}
