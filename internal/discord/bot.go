package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Bot connects the Discord gateway to the LuckyGen API
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	GuildID  string
	Registry *CommandRegistry
}

// Config holds what the bot needs to reach Discord and the API
type Config struct {
	Token   string
	AppID   string
	GuildID string
	APIURL  string
	APIKey  string
}

// New creates a bot. The gateway is not opened until Start.
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSession, err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		Session:  s,
		Client:   NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: NewCommandRegistry(),
	}
	s.AddHandler(bot.ready)
	s.AddHandler(bot.interactionCreate)
	return bot, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	if err := b.Session.Open(); err != nil {
		return fmt.Errorf(ErrMsgOpenConnection, err)
	}
	slog.Info(LogMsgBotRunning, "app_id", b.AppID, "guild_id", b.GuildID)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	if err := b.Session.Close(); err != nil {
		return fmt.Errorf(ErrMsgCloseSession, err)
	}
	slog.Info(LogMsgBotStopped)
	return nil
}

// Run starts the bot and blocks until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return b.Stop()
}

func (b *Bot) ready(_ *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry == nil {
		return
	}
	b.Registry.Handle(s, i, b.Client)
}
