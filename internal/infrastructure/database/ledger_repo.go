package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"raidbot/internal/ports/output"
)

var _ output.LedgerRepository = (*LedgerRepository)(nil)

// LedgerRepository stores per-guild cumulative player values in Postgres.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) GetPlayerValue(ctx context.Context, guildID, playerID string) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `
SELECT total_value FROM player_values
 WHERE guild_id = $1 AND player_id = $2
`, guildID, playerID).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get player value: %w", err)
	}
	return total, nil
}

func (r *LedgerRepository) SetPlayerValue(ctx context.Context, guildID, playerID string, value float64) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO player_values (guild_id, player_id, total_value)
VALUES ($1, $2, $3)
ON CONFLICT (guild_id, player_id) DO UPDATE SET total_value = EXCLUDED.total_value
`, guildID, playerID, value)
	if err != nil {
		return fmt.Errorf("set player value: %w", err)
	}
	return nil
}

func (r *LedgerRepository) AddToPlayerValue(ctx context.Context, guildID, playerID string, amount float64) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO player_values (guild_id, player_id, total_value)
VALUES ($1, $2, $3)
ON CONFLICT (guild_id, player_id) DO UPDATE
   SET total_value = player_values.total_value + EXCLUDED.total_value
`, guildID, playerID, amount)
	if err != nil {
		return fmt.Errorf("add to player value: %w", err)
	}
	return nil
}

// RemoveFromPlayerValue subtracts amount, floor-clamped at 0 in SQL so a
// concurrent writer can never drive the total negative.
func (r *LedgerRepository) RemoveFromPlayerValue(ctx context.Context, guildID, playerID string, amount float64) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO player_values (guild_id, player_id, total_value)
VALUES ($1, $2, 0)
ON CONFLICT (guild_id, player_id) DO UPDATE
   SET total_value = GREATEST(player_values.total_value - $3, 0)
`, guildID, playerID, amount)
	if err != nil {
		return fmt.Errorf("remove from player value: %w", err)
	}
	return nil
}

func (r *LedgerRepository) ResetPlayerValue(ctx context.Context, guildID, playerID string) error {
	_, err := r.pool.Exec(ctx, `
UPDATE player_values SET total_value = 0
 WHERE guild_id = $1 AND player_id = $2
`, guildID, playerID)
	if err != nil {
		return fmt.Errorf("reset player value: %w", err)
	}
	return nil
}
