package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/lottery"
)

// gameChoices builds the /generate choices from the game table
func gameChoices() []*discordgo.ApplicationCommandOptionChoice {
	games := lottery.Games()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(games))
	for i, g := range games {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{Name: g.Name, Value: string(g.ID)}
	}
	return choices
}

// GenerateCommand returns the generate command definition and handler
func GenerateCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandGenerate,
		Description: "Generate lucky numbers for a lottery game",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionGame,
				Description: "Game to draw for (default: Powerball)",
				Required:    false,
				Choices:     gameChoices(),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		gameType := domain.DefaultGameType
		if opt, ok := getOptions(i)[OptionGame]; ok {
			gameType = domain.GameType(opt.StringValue())
		}

		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			resp, err := client.GenerateNumbers(ctx, gameType)
			if err != nil {
				return nil, err
			}
			return drawEmbed(resp), nil
		})
	}

	return cmd, handler
}

// GamesCommand returns the games command definition and handler
func GamesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandGames,
		Description: "List the supported lottery games",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			games, err := client.GetGames(ctx)
			if err != nil {
				return nil, err
			}
			return gamesEmbed(games), nil
		})
	}

	return cmd, handler
}
