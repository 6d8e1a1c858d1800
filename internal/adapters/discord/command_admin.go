package discord

import (
	"context"
	"log"

	"raidbot/internal/domain"
	pkgdiscord "raidbot/pkg/discord"
	"raidbot/pkg/value"

	"github.com/bwmarrin/discordgo"
)

// requireSplitAdmin gates the value commands behind the configured
// Split-admin role. It responds to the interaction itself when the check
// fails.
func (h *Handler) requireSplitAdmin(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	ctx := context.Background()
	roleID, err := h.ledger.GetRole(ctx, i.GuildID, domain.SettingSplitAdmin)
	if err != nil {
		log.Printf("❌ admin: get role setting: %v", err)
		respondEphemeral(s, i.Interaction, h.t("error.generic", nil))
		return false
	}
	if roleID == "" {
		respondEphemeral(s, i.Interaction, h.t("error.role_not_configured", map[string]any{
			"Setting": domain.SettingSplitAdmin,
		}))
		return false
	}
	if !memberHasRole(i.Member, roleID) {
		respondEphemeral(s, i.Interaction, h.t("admin.no_permission", nil))
		return false
	}
	return true
}

// HandleAddValue credits a parsed magnitude value to a player's ledger entry.
func (h *Handler) HandleAddValue(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.requireSplitAdmin(s, i) {
		return
	}
	opts := optionMap(i.ApplicationCommandData().Options)
	player := opts["player"].UserValue(s)

	amount, err := h.ledger.AddValue(context.Background(), i.GuildID, player.ID, stringOption(opts, "value"))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.t(pkgdiscord.MessageKey(err), nil))
		return
	}
	respondContent(s, i.Interaction, h.t("admin.value_added", map[string]any{
		"Amount": value.Format(amount),
		"Player": resolveUserDisplayName(player),
	}))
}

// HandleRemoveValue debits a player's ledger entry, floor-clamped at 0.
func (h *Handler) HandleRemoveValue(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.requireSplitAdmin(s, i) {
		return
	}
	opts := optionMap(i.ApplicationCommandData().Options)
	player := opts["player"].UserValue(s)

	amount, err := h.ledger.RemoveValue(context.Background(), i.GuildID, player.ID, stringOption(opts, "value"))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.t(pkgdiscord.MessageKey(err), nil))
		return
	}
	respondContent(s, i.Interaction, h.t("admin.value_removed", map[string]any{
		"Amount": value.Format(amount),
		"Player": resolveUserDisplayName(player),
	}))
}

// HandleResetValue zeroes a player's ledger entry.
func (h *Handler) HandleResetValue(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.requireSplitAdmin(s, i) {
		return
	}
	opts := optionMap(i.ApplicationCommandData().Options)
	player := opts["player"].UserValue(s)

	if err := h.ledger.ResetValue(context.Background(), i.GuildID, player.ID); err != nil {
		log.Printf("❌ admin: reset value: %v", err)
		respondEphemeral(s, i.Interaction, h.t("error.generic", nil))
		return
	}
	respondContent(s, i.Interaction, h.t("admin.value_reset", map[string]any{
		"Player": resolveUserDisplayName(player),
	}))
}

// HandleCheckValue reads back a player's running total.
func (h *Handler) HandleCheckValue(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.requireSplitAdmin(s, i) {
		return
	}
	opts := optionMap(i.ApplicationCommandData().Options)
	player := opts["player"].UserValue(s)

	total, err := h.ledger.GetValue(context.Background(), i.GuildID, player.ID)
	if err != nil {
		log.Printf("❌ admin: check value: %v", err)
		respondEphemeral(s, i.Interaction, h.t("error.generic", nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.t("admin.value_check", map[string]any{
		"Player": resolveUserDisplayName(player),
		"Amount": value.Format(total),
	}))
}
