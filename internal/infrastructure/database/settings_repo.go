package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"raidbot/internal/ports/output"
)

var _ output.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository stores per-guild named role settings in Postgres.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) SetRoleSetting(ctx context.Context, guildID, name, roleID string) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO settings (guild_id, setting_name, role_id)
VALUES ($1, $2, $3)
ON CONFLICT (guild_id, setting_name) DO UPDATE SET role_id = EXCLUDED.role_id
`, guildID, name, roleID)
	if err != nil {
		return fmt.Errorf("set role setting: %w", err)
	}
	return nil
}

func (r *SettingsRepository) GetRoleSetting(ctx context.Context, guildID, name string) (string, error) {
	var roleID string
	err := r.pool.QueryRow(ctx, `
SELECT role_id FROM settings
 WHERE guild_id = $1 AND setting_name = $2
`, guildID, name).Scan(&roleID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get role setting: %w", err)
	}
	return roleID, nil
}

func (r *SettingsRepository) ListRoleSettings(ctx context.Context, guildID string) ([]output.RoleSetting, error) {
	rows, err := r.pool.Query(ctx, `
SELECT setting_name, role_id FROM settings
 WHERE guild_id = $1
 ORDER BY setting_name
`, guildID)
	if err != nil {
		return nil, fmt.Errorf("list role settings: %w", err)
	}
	defer rows.Close()

	var out []output.RoleSetting
	for rows.Next() {
		var s output.RoleSetting
		if err := rows.Scan(&s.Name, &s.RoleID); err != nil {
			return nil, fmt.Errorf("scan role setting: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
