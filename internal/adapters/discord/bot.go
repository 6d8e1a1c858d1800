package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"raidbot/internal/application"
	"raidbot/internal/config"
	"raidbot/internal/infrastructure/i18n"
	"raidbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires ports: output adapters -> application (use
// cases) -> handler.
func NewBot(cfg *config.Config, ledgerRepo output.LedgerRepository, settingsRepo output.SettingsRepository) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	translator := i18n.NewTranslator("en")
	notifier := NewSessionNotifier(s)

	raidEvents := application.NewEventRegistry()
	customEvents := application.NewEventRegistry()
	raidCountdown := application.NewCountdown(raidEvents, notifier, translator)
	customCountdown := application.NewCountdown(customEvents, notifier, translator)
	splitSvc := application.NewSplitService(ledgerRepo)
	ledgerSvc := application.NewLedgerService(ledgerRepo, settingsRepo)

	handler := NewHandler(raidEvents, customEvents, raidCountdown, customCountdown, splitSvc, ledgerSvc, translator)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handleMessageCreate)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// All commands and components are guild-scoped.
	if i.Member == nil || i.Member.User == nil {
		return
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "raid":
			b.handler.HandleRaid(s, i)
		case "event":
			b.handler.HandleCustomEvent(s, i)
		case "split":
			b.handler.HandleSplit(s, i)
		case "addvalue":
			b.handler.HandleAddValue(s, i)
		case "removevalue":
			b.handler.HandleRemoveValue(s, i)
		case "resetvalue":
			b.handler.HandleResetValue(s, i)
		case "checkvalue":
			b.handler.HandleCheckValue(s, i)
		case "settings":
			b.handler.HandleSettings(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID

		switch {
		case strings.HasPrefix(customID, signupPrefix):
			b.handler.HandleSignup(s, i)
		case strings.HasPrefix(customID, roleSelectPrefix):
			b.handler.HandleRoleSelect(s, i)
		case strings.HasPrefix(customID, cancelPrefix):
			b.handler.HandleCancelEvent(s, i)
		case customID == splitConfirmID:
			b.handler.HandleSplitConfirm(s, i)
		case customID == splitCancelID:
			b.handler.HandleSplitCancel(s, i)
		}
	}
}

func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.handler.HandleMessage(s, m)
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range commandDefinitions() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Failed to register command %s: %v", cmd.Name, err)
		}
	}

	fmt.Println("🤖 Bot online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
