package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/handler"
)

var titleCaser = cases.Title(language.English)

// gameDisplayName prefers the table name and falls back to a title-cased id
func gameDisplayName(id domain.GameType, name string) string {
	if name != "" && name != string(id) {
		return name
	}
	return titleCaser.String(strings.ReplaceAll(string(id), "-", " "))
}

func rangeText(r domain.Range) string {
	return fmt.Sprintf("%d–%d", r.Min, r.Max)
}

func drawEmbed(resp *handler.GenerateNumbersResponse) *discordgo.MessageEmbed {
	name := gameDisplayName(resp.GameType, resp.GameName)
	embed := createEmbed(
		fmt.Sprintf("🎲 %s Numbers", name),
		fmt.Sprintf("**%s**", resp.Formatted),
		ColorDraw,
		FooterResponsible,
	)

	main := make([]string, len(resp.MainNumbers))
	for i, n := range resp.MainNumbers {
		main[i] = fmt.Sprintf("`%d`", n)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Main Numbers",
		Value:  strings.Join(main, " "),
		Inline: true,
	})

	if resp.SpecialNumber != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   resp.SpecialLabel,
			Value:  fmt.Sprintf("`%d`", *resp.SpecialNumber),
			Inline: true,
		})
	}

	return embed
}

func gamesEmbed(games []domain.GameConfig) *discordgo.MessageEmbed {
	embed := createEmbed("🎱 Available Games", "Use `/generate` with one of these games.", ColorGames, "")
	for _, g := range games {
		rules := fmt.Sprintf("Pick %d from %s", g.MainCount, rangeText(g.MainRange))
		if g.HasSpecial() {
			rules += fmt.Sprintf(" + %s %s", g.SpecialName, rangeText(g.SpecialRange))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  gameDisplayName(g.ID, g.Name),
			Value: fmt.Sprintf("%s\nTicket: %s", rules, domain.FormatCurrency(g.Cost)),
		})
	}
	return embed
}

// historyEmbed shows the newest limit encounters, newest first
func historyEmbed(list *handler.EncounterListResponse, limit int) *discordgo.MessageEmbed {
	if len(list.Encounters) == 0 {
		return createEmbed("📜 Play History", MsgNoEncounters, ColorHistory, "")
	}

	var sb strings.Builder
	shown := 0
	for idx := len(list.Encounters) - 1; idx >= 0 && shown < limit; idx-- {
		e := list.Encounters[idx]
		fmt.Fprintf(&sb, "**%s** · %s\n`%s` · %s",
			domain.FormatDate(e.Date),
			gameDisplayName(e.GameType, ""),
			domain.FormatNumbers(e.Numbers),
			domain.FormatCurrency(e.Cost))
		if e.Result != nil {
			fmt.Fprintf(&sb, " · %s", e.Result.Label())
			if e.WinAmount != nil && *e.WinAmount > 0 {
				fmt.Fprintf(&sb, " (%s)", domain.FormatCurrency(*e.WinAmount))
			}
		}
		sb.WriteString("\n\n")
		shown++
	}

	embed := createEmbed("📜 Play History", strings.TrimSpace(sb.String()), ColorHistory, "")
	embed.Footer.Text = fmt.Sprintf("%s · Showing %d of %d · Spent %s · Won %s",
		FooterLuckyGen, shown, list.Count,
		domain.FormatCurrency(list.TotalSpent), domain.FormatCurrency(list.TotalWinnings))
	return embed
}

func analysisEmbed(summary *handler.SummaryResponse) *discordgo.MessageEmbed {
	color := ColorAnalysis
	if summary.NetResult < 0 {
		color = ColorLoss
	}

	hot := "None yet"
	if len(summary.MostFrequentNumbers) > 0 {
		parts := make([]string, len(summary.MostFrequentNumbers))
		for i, nf := range summary.MostFrequentNumbers {
			parts[i] = fmt.Sprintf("`%d` ×%d", nf.Number, nf.Frequency)
		}
		hot = strings.Join(parts, "  ")
	}

	embed := createEmbed("📊 Pattern Analysis", "", color, FooterResponsible)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Total Plays", Value: fmt.Sprintf("%d", summary.TotalEncounters), Inline: true},
		{Name: "Total Spent", Value: domain.FormatCurrency(summary.TotalSpent), Inline: true},
		{Name: "Total Won", Value: domain.FormatCurrency(summary.TotalWinnings), Inline: true},
		{Name: "Net Result", Value: domain.FormatCurrency(summary.NetResult), Inline: true},
		{Name: "Win Rate", Value: fmt.Sprintf("%.1f%%", summary.WinRate), Inline: true},
		{Name: "Return", Value: fmt.Sprintf("%.0f%%", summary.ReturnPercent), Inline: true},
		{Name: "Favorite Game", Value: gameDisplayName(summary.FavoriteGame, summary.FavoriteGameName), Inline: true},
		{Name: "Avg / Week", Value: domain.FormatCurrency(summary.AverageSpendingPerWeek), Inline: true},
		{Name: "Hot Numbers", Value: hot},
	}
	return embed
}

func pingEmbed(apiUp bool, latencyMs int64) *discordgo.MessageEmbed {
	status, color := PingAPIOnline, ColorDraw
	if !apiUp {
		status, color = PingAPIOffline, ColorOffline
	}
	embed := createEmbed("🏓 Pong!", "", color, FooterLuckyGen)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "API", Value: status, Inline: true},
		{Name: "Gateway", Value: fmt.Sprintf("%dms", latencyMs), Inline: true},
	}
	return embed
}
