package discord

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sony/gobreaker"

	"github.com/osse101/LuckyGen_Go/internal/handler"
)

// deferResponse acknowledges an interaction with a deferred message.
// Required before any API call that might take longer than 3 seconds.
// Returns false if deferral failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// handleEmbedResponse defers, runs the action and edits the reply with its embed
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func(ctx context.Context) (*discordgo.MessageEmbed, error),
) {
	if !deferResponse(s, i) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultClientTimeout)
	defer cancel()

	embed, err := action(ctx)
	if err != nil {
		slog.Error(LogMsgActionFailed, "command", i.ApplicationCommandData().Name, "error", err)
		respondFriendlyError(s, i, err)
		return
	}

	sendEmbed(s, i, embed)
}

// respondError edits the deferred reply with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// respondFriendlyError maps an API error to a readable message before responding
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError cleans up technical error messages
func formatFriendlyError(err error) string {
	if errors.Is(err, ErrUnauthorized) {
		return MsgUnauthorized
	}

	msg := err.Error()
	apiErr, isAPIError := strings.CutPrefix(msg, apiErrorPrefix)

	switch {
	case strings.Contains(apiErr, handler.ErrMsgInvalidGameTypeError):
		return MsgInvalidGame
	case strings.Contains(apiErr, handler.ErrMsgEncounterNotFoundError):
		return MsgEncounterNotFound
	case isAPIError:
		return "❌ " + apiErr
	case strings.Contains(msg, "max retries exceeded"),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests):
		return MsgServerUnavailable
	default:
		return MsgGenericError
	}
}

// sendEmbed edits the deferred reply with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// createEmbed creates a standard embed; an empty footer means FooterLuckyGen
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterLuckyGen
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

// getOptions indexes the command options by name
func getOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		byName[opt.Name] = opt
	}
	return byName
}
