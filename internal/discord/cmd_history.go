package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

var minHistoryLimit = 1.0

// HistoryCommand returns the history command definition and handler
func HistoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandHistory,
		Description: "Show recent lottery plays",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionLimit,
				Description: "Number of plays to show (default: 10)",
				Required:    false,
				MinValue:    &minHistoryLimit,
				MaxValue:    MaxHistoryLimit,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		limit := DefaultHistoryLimit
		if opt, ok := getOptions(i)[OptionLimit]; ok {
			limit = clampLimit(int(opt.IntValue()))
		}

		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			list, err := client.ListEncounters(ctx)
			if err != nil {
				return nil, err
			}
			return historyEmbed(list, limit), nil
		})
	}

	return cmd, handler
}

func clampLimit(limit int) int {
	return max(1, min(limit, MaxHistoryLimit))
}

// AnalysisCommand returns the analysis command definition and handler
func AnalysisCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandAnalysis,
		Description: "Show spending, winnings and hot numbers across all plays",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			summary, err := client.GetSummary(ctx)
			if err != nil {
				return nil, err
			}
			return analysisEmbed(summary), nil
		})
	}

	return cmd, handler
}
