package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// PingCommand reports whether the bot and the LuckyGen API are reachable
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandPing,
		Description: "Check the bot and the LuckyGen API",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			return pingEmbed(client.Healthy(ctx), s.HeartbeatLatency().Milliseconds()), nil
		})
	}

	return cmd, handler
}
