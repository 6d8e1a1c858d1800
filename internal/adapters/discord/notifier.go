package discord

import (
	"github.com/bwmarrin/discordgo"

	"raidbot/internal/ports/output"
)

var _ output.Notifier = (*SessionNotifier)(nil)

// SessionNotifier delivers countdown notifications over the bot session.
type SessionNotifier struct {
	session *discordgo.Session
}

func NewSessionNotifier(session *discordgo.Session) *SessionNotifier {
	return &SessionNotifier{session: session}
}

func (n *SessionNotifier) SendChannelMessage(channelID, content string) error {
	_, err := n.session.ChannelMessageSend(channelID, content)
	return err
}
