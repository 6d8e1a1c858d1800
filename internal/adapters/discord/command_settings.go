package discord

import (
	"context"
	"log"

	pkgdiscord "raidbot/pkg/discord"

	"github.com/bwmarrin/discordgo"
)

// HandleSettings dispatches the /settings subcommands. Only guild
// administrators may use them.
func (h *Handler) HandleSettings(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Member == nil || i.Member.Permissions&discordgo.PermissionAdministrator == 0 {
		respondEphemeral(s, i.Interaction, h.t("admin.no_permission", nil))
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}
	switch options[0].Name {
	case "set_role":
		h.handleSetRole(s, i, options[0].Options)
	case "view_roles":
		h.handleViewRoles(s, i)
	}
}

func (h *Handler) handleSetRole(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	opts := optionMap(options)
	settingName := stringOption(opts, "permission_name")
	role := opts["role"].RoleValue(s, i.GuildID)

	if err := h.ledger.SetRole(context.Background(), i.GuildID, settingName, role.ID); err != nil {
		log.Printf("❌ settings: set role: %v", err)
		respondEphemeral(s, i.Interaction, h.t("error.generic", nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.t("settings.role_set", map[string]any{
		"Setting": settingName,
		"Role":    role.Name,
	}))
}

func (h *Handler) handleViewRoles(s *discordgo.Session, i *discordgo.InteractionCreate) {
	settings, err := h.ledger.ListRoles(context.Background(), i.GuildID)
	if err != nil {
		log.Printf("❌ settings: list roles: %v", err)
		respondEphemeral(s, i.Interaction, h.t("error.generic", nil))
		return
	}

	var fields []*discordgo.MessageEmbedField
	for _, setting := range settings {
		roleName := h.t("settings.role_not_found", nil)
		if role, err := s.State.Role(i.GuildID, setting.RoleID); err == nil {
			roleName = role.Name
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  setting.Name,
			Value: roleName,
		})
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{pkgdiscord.BuildRoleSettings(fields)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}
