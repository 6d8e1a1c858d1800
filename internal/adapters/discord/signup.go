package discord

import (
	"context"
	"log"

	"raidbot/internal/domain"
	pkgdiscord "raidbot/pkg/discord"

	"github.com/bwmarrin/discordgo"
)

// HandleSignup toggles the pressed role slot and re-renders the roles field
// from the snapshot the registry returned.
func (h *Handler) HandleSignup(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	eventID, roleLabel, ok := parseSignupCustomID(data.CustomID)
	if !ok {
		respondEphemeral(s, i.Interaction, h.t("error.event_not_found", nil))
		return
	}

	registry, _, found := h.registryFor(i.Message.ID)
	if !found {
		respondEphemeral(s, i.Interaction, h.t("error.event_not_found", nil))
		return
	}

	result, err := registry.ToggleSlot(eventID, roleLabel, userMention(i.Member.User.ID))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.t(pkgdiscord.MessageKey(err), nil))
		return
	}

	if len(i.Message.Embeds) == 0 {
		return
	}
	embed := i.Message.Embeds[0]
	visible := filterSlots(result.Slots, signupLabelsFromMessage(i.Message))
	pkgdiscord.SetRolesNeededField(embed, pkgdiscord.FormatRoleSlots(visible))

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}); err != nil {
		log.Printf("❌ signup: update announcement: %v", err)
	}
}

// HandleRoleSelect swaps a custom announcement's role picker for sign-up
// buttons covering the selected roles.
func (h *Handler) HandleRoleSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	eventID, ok := parseEventID(data.CustomID, roleSelectPrefix)
	if !ok || len(data.Values) == 0 {
		respondEphemeral(s, i.Interaction, h.t("error.event_not_found", nil))
		return
	}
	if _, _, found := h.registryFor(i.Message.ID); !found {
		respondEphemeral(s, i.Interaction, h.t("error.event_not_found", nil))
		return
	}

	if len(i.Message.Embeds) == 0 {
		return
	}
	embed := i.Message.Embeds[0]
	var lines string
	for _, label := range data.Values {
		lines += label + "\n"
	}
	pkgdiscord.SetRolesNeededField(embed, lines)

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: buildSignupComponents(eventID, data.Values),
		},
	}); err != nil {
		log.Printf("❌ roleselect: update announcement: %v", err)
	}
}

// HandleCancelEvent cancels an event after checking the presser holds the
// Content Admin role or created the event.
func (h *Handler) HandleCancelEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	eventID, ok := parseEventID(i.MessageComponentData().CustomID, cancelPrefix)
	if !ok {
		respondEphemeral(s, i.Interaction, h.t("error.event_not_found", nil))
		return
	}

	registry, info, found := h.registryFor(i.Message.ID)
	if !found {
		respondEphemeral(s, i.Interaction, h.t("error.event_not_found", nil))
		return
	}

	ctx := context.Background()
	roleID, err := h.ledger.GetRole(ctx, i.GuildID, domain.SettingContentAdmin)
	if err != nil {
		log.Printf("❌ cancel: get role setting: %v", err)
		respondEphemeral(s, i.Interaction, h.t("error.generic", nil))
		return
	}
	if roleID == "" {
		respondEphemeral(s, i.Interaction, h.t("error.role_not_configured", map[string]any{
			"Setting": domain.SettingContentAdmin,
		}))
		return
	}
	if !memberHasRole(i.Member, roleID) && i.Member.User.ID != info.CreatorID {
		respondEphemeral(s, i.Interaction, h.t("event.cancel_no_permission", nil))
		return
	}

	if err := registry.Cancel(eventID); err != nil {
		respondEphemeral(s, i.Interaction, h.t(pkgdiscord.MessageKey(err), nil))
		return
	}

	respondEphemeral(s, i.Interaction, h.t("event.cancelled", nil))
	if err := s.ChannelMessageDelete(i.ChannelID, i.Message.ID); err != nil {
		log.Printf("⚠️ cancel: delete announcement: %v", err)
	}
}
