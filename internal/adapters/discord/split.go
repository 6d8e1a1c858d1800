package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"raidbot/internal/ports/input"
	pkgdiscord "raidbot/pkg/discord"
	"raidbot/pkg/value"

	"github.com/bwmarrin/discordgo"
)

// HandleSplit starts a loot split for the mentioned players in the current
// channel or thread.
func (h *Handler) HandleSplit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)
	rawPlayers := stringOption(opts, "players")
	rawValue := stringOption(opts, "value")

	participants, mentions, errMsg := h.resolveParticipants(s, i.GuildID, rawPlayers)
	if errMsg != "" {
		respondEphemeral(s, i.Interaction, errMsg)
		return
	}

	result, err := h.splits.StartSplit(i.GuildID, i.ChannelID, participants, rawValue)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.t(pkgdiscord.MessageKey(err), nil))
		return
	}

	content := h.t("split.starting", map[string]any{"Mentions": strings.Join(mentions, " ")})
	if result.Replaced {
		content = h.t("split.replaced_warning", nil) + "\n" + content
	}
	respondContent(s, i.Interaction, content)

	ctx := context.Background()
	shareText := ""
	if result.Split.ShareValue > 0 {
		shareText = value.Format(result.Split.ShareValue)
	}
	tracker := pkgdiscord.BuildSplitTracker(shareText, h.splitTrackerLines(ctx, result.Split))
	msg, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{tracker},
	})
	if err != nil {
		log.Printf("❌ split: post tracker: %v", err)
		return
	}
	if err := h.splits.SetTrackerMessage(i.ChannelID, msg.ID); err != nil {
		log.Printf("⚠️ split: bind tracker message: %v", err)
	}
}

// resolveParticipants parses space-separated player mentions and resolves
// each to a guild member.
func (h *Handler) resolveParticipants(s *discordgo.Session, guildID, rawPlayers string) ([]input.SplitParticipant, []string, string) {
	tokens := strings.Fields(rawPlayers)
	if len(tokens) == 0 {
		return nil, nil, h.t("error.no_participants", nil)
	}

	participants := make([]input.SplitParticipant, 0, len(tokens))
	mentions := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !strings.HasPrefix(token, "<@") || !strings.HasSuffix(token, ">") {
			return nil, nil, h.t("signup.invalid_mention", map[string]any{"Mention": token})
		}
		userID := strings.TrimSuffix(strings.TrimPrefix(token, "<@"), ">")
		userID = strings.TrimPrefix(userID, "!")

		member, err := s.GuildMember(guildID, userID)
		if err != nil {
			return nil, nil, h.t("signup.invalid_mention", map[string]any{"Mention": token})
		}
		participants = append(participants, input.SplitParticipant{
			UserID:      userID,
			DisplayName: resolveDisplayName(member),
		})
		mentions = append(mentions, userMention(userID))
	}
	return participants, mentions, ""
}

// HandleMessage observes channel traffic for proof submissions: any message
// from a tagged participant carrying an attachment or an http(s) link counts.
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !hasProof(m.Message) {
		return
	}

	result := h.splits.RecordProof(m.ChannelID, m.Author.ID)
	if !result.Accepted {
		return
	}

	if err := s.MessageReactionAdd(m.ChannelID, m.ID, "✅"); err != nil {
		log.Printf("⚠️ split: add proof reaction: %v", err)
	}

	ctx := context.Background()
	h.refreshTracker(ctx, s, result.Split)

	if result.AllSubmitted {
		if _, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildVerificationPrompt()},
			Components: buildSplitVerificationComponents(),
		}); err != nil {
			log.Printf("❌ split: post verification prompt: %v", err)
		}
	}
}

func hasProof(m *discordgo.Message) bool {
	if len(m.Attachments) > 0 {
		return true
	}
	for _, word := range strings.Fields(m.Content) {
		if strings.HasPrefix(word, "http://") || strings.HasPrefix(word, "https://") {
			return true
		}
	}
	return false
}

// refreshTracker re-renders the live tracker embed from a split snapshot.
func (h *Handler) refreshTracker(ctx context.Context, s *discordgo.Session, view input.SplitView) {
	if view.TrackerMessageID == "" {
		return
	}
	msg, err := s.ChannelMessage(view.ContextID, view.TrackerMessageID)
	if err != nil || msg == nil || len(msg.Embeds) == 0 {
		log.Printf("⚠️ split: fetch tracker message: %v", err)
		return
	}

	embed := msg.Embeds[0]
	pkgdiscord.SetSplitParticipantsField(embed, h.splitTrackerLines(ctx, view))
	if _, err := s.ChannelMessageEditEmbed(view.ContextID, view.TrackerMessageID, embed); err != nil {
		log.Printf("⚠️ split: edit tracker message: %v", err)
	}
}

// splitTrackerLines renders one tracker line per participant, including
// their running total read from the ledger.
func (h *Handler) splitTrackerLines(ctx context.Context, view input.SplitView) []string {
	shareText := "0"
	if view.ShareValue > 0 {
		shareText = value.Format(view.ShareValue)
	}

	lines := make([]string, len(view.Participants))
	for idx, p := range view.Participants {
		checkmark := "❌"
		if p.Submitted {
			checkmark = "✅"
		}
		total, err := h.ledger.GetValue(ctx, view.GuildID, p.UserID)
		if err != nil {
			log.Printf("⚠️ split: read ledger for %s: %v", p.UserID, err)
		}
		lines[idx] = fmt.Sprintf("%s %s | Share: `%s` | Total Loot: 💰 `%s`",
			p.DisplayName, checkmark, shareText, value.Format(total))
	}
	return lines
}

// HandleSplitConfirm credits every submitted share and closes the split.
// When the split lives in a thread the thread is archived afterwards,
// best-effort: an archive failure never undoes the credit.
func (h *Handler) HandleSplitConfirm(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	if _, err := h.splits.Confirm(ctx, i.ChannelID); err != nil {
		respondEphemeral(s, i.Interaction, h.t(pkgdiscord.MessageKey(err), nil))
		return
	}

	ch, err := s.Channel(i.ChannelID)
	if err == nil && ch.IsThread() {
		if ch.ThreadMetadata != nil && ch.ThreadMetadata.Archived {
			unarchived := false
			if _, err := s.ChannelEditComplex(i.ChannelID, &discordgo.ChannelEdit{Archived: &unarchived}); err != nil {
				log.Printf("⚠️ split: unarchive thread: %v", err)
			}
		}
		respondEphemeral(s, i.Interaction, h.t("split.confirmed_thread", nil))
		archived := true
		if _, err := s.ChannelEditComplex(i.ChannelID, &discordgo.ChannelEdit{Archived: &archived}); err != nil {
			log.Printf("⚠️ split: archive thread: %v", err)
		}
		return
	}

	respondEphemeral(s, i.Interaction, h.t("split.confirmed", nil))
}

// HandleSplitCancel discards the split without crediting anyone.
func (h *Handler) HandleSplitCancel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.splits.Cancel(i.ChannelID); err != nil {
		respondEphemeral(s, i.Interaction, h.t(pkgdiscord.MessageKey(err), nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.t("split.cancelled", nil))
}
