package discord

import (
	"fmt"
	"strings"

	"raidbot/internal/domain/entities"
	"raidbot/internal/ports/input"

	"github.com/bwmarrin/discordgo"
)

const (
	raidEmbedColor   = 0x57F287
	customEmbedColor = 0x5865F2
	lootEmbedColor   = 0xF1C40F

	rolesNeededField = "🔍 **Roles Needed**"
)

// FormatRoleSlots renders the roles-needed field value from a slot snapshot:
// one line per role, signed-up mentions appended after a colon.
func FormatRoleSlots(slots []input.RoleSlotView) string {
	var b strings.Builder
	for _, slot := range slots {
		if len(slot.Members) > 0 {
			b.WriteString(fmt.Sprintf("%s: %s\n", slot.Label, strings.Join(slot.Members, ", ")))
		} else {
			b.WriteString(slot.Label + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

// BuildRaidAnnouncement builds the fixed-comp announcement embed.
func BuildRaidAnnouncement(startText string) *discordgo.MessageEmbed {
	var roles strings.Builder
	for _, r := range entities.RaidComp {
		roles.WriteString(fmt.Sprintf("%s - *%s*\n", r.Label, r.Description))
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🛡️ Roads F2B Comp - %s UTC", startText),
		Description: "**Gear Requirements:**\n6.3+ | PVP Food 8.2 | PVE Food 6.0 (min 2 each)",
		Color:       raidEmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "⚔️ **Gear & Mounts**", Value: "• Overcharge (OC)\n• Fast Mount (130%+)"},
			{Name: rolesNeededField, Value: strings.TrimSpace(roles.String())},
			{Name: "📢 **Important Notes**", Value: "Stay calm, follow calls, and avoid tilting. Let's have fun!"},
		},
	}
}

// BuildCustomAnnouncement builds the custom-template announcement embed.
func BuildCustomAnnouncement(title, startText, rolesValue string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚔️ %s Event - %s UTC", title, startText),
		Description: fmt.Sprintf("The event starts at **%s UTC**.\nSign up for a role below.", startText),
		Color:       customEmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: rolesNeededField, Value: rolesValue},
		},
	}
}

// SetRolesNeededField replaces the roles-needed field value in place.
// No-op when the embed has no such field.
func SetRolesNeededField(embed *discordgo.MessageEmbed, value string) {
	if embed == nil {
		return
	}
	for i, f := range embed.Fields {
		if f.Name == rolesNeededField {
			embed.Fields[i] = &discordgo.MessageEmbedField{Name: rolesNeededField, Value: value}
			return
		}
	}
}

// BuildSplitTracker builds the live loot-split tracker embed. shareText is
// empty when the split carries no value.
func BuildSplitTracker(shareText string, playerLines []string) *discordgo.MessageEmbed {
	title := "💰 **Loot Split** 💰"
	desc := "No value provided for this loot split.\nTracking loot submissions below:"
	if shareText != "" {
		title = "💰 **Loot Distribution in Progress** 💰"
		desc = fmt.Sprintf("**Each player's share:** `%s` 💸\n\nTracking loot submissions below:", shareText)
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: desc,
		Color:       lootEmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👑 **Loot Split Participants** 👑", Value: strings.Join(playerLines, "\n")},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "📸 Submit loot screenshots to confirm participation"},
	}
}

// SetSplitParticipantsField replaces the tracker embed's participant lines.
func SetSplitParticipantsField(embed *discordgo.MessageEmbed, playerLines []string) {
	if embed == nil || len(embed.Fields) == 0 {
		return
	}
	embed.Fields[0] = &discordgo.MessageEmbedField{
		Name:  "👑 **Loot Split Participants** 👑",
		Value: strings.Join(playerLines, "\n"),
	}
}

// BuildVerificationPrompt builds the loot-splitter verification embed.
func BuildVerificationPrompt() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🛡️ **Loot-Splitter Verification Required**",
		Description: "All players have submitted their loot. A loot-splitter must verify and confirm the split.",
		Color:       lootEmbedColor,
	}
}

// BuildRoleSettings builds the /settings view_roles embed.
func BuildRoleSettings(fields []*discordgo.MessageEmbedField) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Current Role Settings",
		Color: customEmbedColor,
	}
	if len(fields) == 0 {
		embed.Description = "No settings found."
	} else {
		embed.Fields = fields
	}
	return embed
}
