package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"raidbot/internal/domain/entities"
	pkgdiscord "raidbot/pkg/discord"

	"github.com/bwmarrin/discordgo"
)

// HandleRaid posts a fixed-comp raid announcement and starts its countdown.
func (h *Handler) HandleRaid(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)

	startTime, err := pkgdiscord.ParseStartTime(stringOption(opts, "time"), h.now())
	if err != nil {
		respondEphemeral(s, i.Interaction, h.t(pkgdiscord.MessageKey(err), nil))
		return
	}

	pingText := ""
	if opt, ok := opts["role"]; ok {
		pingText = fmt.Sprintf("<@&%s>", opt.RoleValue(nil, "").ID)
	}

	if err := deferResponse(s, i.Interaction); err != nil {
		log.Printf("❌ raid: defer: %v", err)
		return
	}

	info := h.raidEvents.CreateEvent(i.ChannelID, i.Member.User.ID, "Roads F2B Comp", startTime, entities.RaidCompLabels())
	startText := pkgdiscord.FormatStartTime(startTime)

	msg, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content:    pingText,
		Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildRaidAnnouncement(startText)},
		Components: buildSignupComponents(info.ID, entities.RaidCompLabels()),
	})
	if err != nil {
		log.Printf("❌ raid: post announcement: %v", err)
		return
	}
	if err := h.raidEvents.BindMessage(info.ID, msg.ID); err != nil {
		log.Printf("❌ raid: bind message: %v", err)
		return
	}

	go h.raidCountdown.Track(context.Background(), info)
}

// HandleCustomEvent posts a custom-template announcement with a role picker
// and starts its countdown.
func (h *Handler) HandleCustomEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)

	title := stringOption(opts, "title")
	template, ok := entities.EventTemplates[title]
	if !ok {
		respondEphemeral(s, i.Interaction, h.t("error.unknown_template", map[string]any{
			"Titles": strings.Join(entities.EventTemplateTitles, ", "),
		}))
		return
	}

	startTime, err := pkgdiscord.ParseStartTime(stringOption(opts, "start_time"), h.now())
	if err != nil {
		respondEphemeral(s, i.Interaction, h.t(pkgdiscord.MessageKey(err), nil))
		return
	}

	pingText := stringOption(opts, "roles_to_ping")

	if err := deferResponse(s, i.Interaction); err != nil {
		log.Printf("❌ event: defer: %v", err)
		return
	}

	info := h.customEvents.CreateEvent(i.ChannelID, i.Member.User.ID, title, startTime, template)
	startText := pkgdiscord.FormatStartTime(startTime)

	msg, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content:    pingText,
		Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildCustomAnnouncement(title, startText, "No roles selected yet.")},
		Components: buildRoleSelect(info.ID, template),
	})
	if err != nil {
		log.Printf("❌ event: post announcement: %v", err)
		return
	}
	if err := h.customEvents.BindMessage(info.ID, msg.ID); err != nil {
		log.Printf("❌ event: bind message: %v", err)
		return
	}

	go h.customCountdown.Track(context.Background(), info)
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}
