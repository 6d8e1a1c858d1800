package discord

import (
	"github.com/bwmarrin/discordgo"

	"raidbot/internal/domain"
	"raidbot/internal/domain/entities"
)

// commandDefinitions lists every slash command the bot registers.
func commandDefinitions() []*discordgo.ApplicationCommand {
	titleChoices := make([]*discordgo.ApplicationCommandOptionChoice, len(entities.EventTemplateTitles))
	for i, title := range entities.EventTemplateTitles {
		titleChoices[i] = &discordgo.ApplicationCommandOptionChoice{Name: title, Value: title}
	}
	settingChoices := make([]*discordgo.ApplicationCommandOptionChoice, len(domain.RoleSettingNames))
	for i, name := range domain.RoleSettingNames {
		settingChoices[i] = &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "raid",
			Description: "Create a raid announcement for Roads F2B Comp",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "time", Description: "Time when the event starts (HH:MM UTC)", Required: true},
				{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "Mention a role to ping"},
			},
		},
		{
			Name:        "event",
			Description: "Create a customizable raid announcement",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "title", Description: "Title of the event", Required: true, Choices: titleChoices},
				{Type: discordgo.ApplicationCommandOptionString, Name: "start_time", Description: "Time when the event starts (HH:MM UTC)", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "roles_to_ping", Description: "Mention roles to ping"},
			},
		},
		{
			Name:        "split",
			Description: "Tag players and assign an optional value",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "players", Description: "Mention players separated by spaces", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "value", Description: "Optional value to split among tagged players"},
			},
		},
		{
			Name:        "addvalue",
			Description: "Add value to a player's total value",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "player", Description: "Player to add value to", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "value", Description: "Value to add", Required: true},
			},
		},
		{
			Name:        "removevalue",
			Description: "Remove value from a player's total value",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "player", Description: "Player to remove value from", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "value", Description: "Value to remove", Required: true},
			},
		},
		{
			Name:        "resetvalue",
			Description: "Reset a player's total value",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "player", Description: "Player to reset", Required: true},
			},
		},
		{
			Name:        "checkvalue",
			Description: "Check a player's total value",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "player", Description: "Player to check", Required: true},
			},
		},
		{
			Name:        "settings",
			Description: "Configure bot settings",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set_role",
					Description: "Set a role for a specific permission",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "permission_name", Description: "Permission to configure", Required: true, Choices: settingChoices},
						{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "Role to assign", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "view_roles",
					Description: "View current role settings",
				},
			},
		},
	}
}
