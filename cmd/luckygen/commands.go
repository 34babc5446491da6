package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/encounter"
	"github.com/osse101/LuckyGen_Go/internal/lottery"
	"github.com/osse101/LuckyGen_Go/internal/stats"
)

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func noArgs(fs *flag.FlagSet) error {
	if fs.NArg() > 0 {
		return fmt.Errorf(ErrMsgUnexpectedArgs, fs.Args())
	}
	return nil
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

type generateCommand struct {
	out     io.Writer
	rngMode string
}

func (c *generateCommand) Name() string { return "generate" }
func (c *generateCommand) Description() string {
	return "Draw lottery numbers (-game, -count, -seed)"
}

func (c *generateCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.Name(), c.out)
	game := fs.String(flagGame, defaultGame, "game type: "+gameList())
	count := fs.Int(flagCount, defaultCount, "number of draws")
	seed := fs.Uint64(flagSeed, 0, "replay a deterministic draw sequence (0 uses LOTTERY_RNG)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := noArgs(fs); err != nil {
		return err
	}
	if *count < 1 || *count > maxCount {
		return fmt.Errorf(ErrMsgInvalidCount, maxCount, *count)
	}

	src, err := c.source(*seed)
	if err != nil {
		return err
	}
	svc := lottery.NewService(src)
	gameType := domain.GameType(strings.ToLower(*game))

	for i := 0; i < *count; i++ {
		draw, err := svc.GenerateNumbers(ctx, gameType)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s: %s\n", lottery.GameName(gameType), domain.FormatNumbers(*draw))
	}
	return nil
}

func (c *generateCommand) source(seed uint64) (lottery.RandomSource, error) {
	if seed != 0 {
		return lottery.NewSeededSource(seed), nil
	}
	return lottery.NewSourceForMode(strings.ToLower(c.rngMode))
}

func gameList() string {
	types := lottery.GameTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

type gamesCommand struct {
	out io.Writer
}

func (c *gamesCommand) Name() string        { return "games" }
func (c *gamesCommand) Description() string { return "List supported games and their rules" }

func (c *gamesCommand) Run(_ context.Context, args []string) error {
	fs := newFlagSet(c.Name(), c.out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := noArgs(fs); err != nil {
		return err
	}

	tw := newTable(c.out)
	fmt.Fprintln(tw, headerGames)
	for _, g := range lottery.Games() {
		special := noSpecial
		if g.HasSpecial() {
			special = fmt.Sprintf("%s %d-%d", g.SpecialName, g.SpecialRange.Min, g.SpecialRange.Max)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d of %d-%d\t%s\t%s\n",
			g.ID, g.Name, g.MainCount, g.MainRange.Min, g.MainRange.Max, special, domain.FormatCurrency(g.Cost))
	}
	return tw.Flush()
}

type historyCommand struct {
	out        io.Writer
	encounters encounter.Service
}

func (c *historyCommand) Name() string        { return "history" }
func (c *historyCommand) Description() string { return "Show the recorded play log" }

func (c *historyCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.Name(), c.out)
	game := fs.String(flagGame, "", "only show this game type")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := noArgs(fs); err != nil {
		return err
	}

	filter := domain.GameType(strings.ToLower(*game))
	if filter != "" {
		if _, err := lottery.LookupGame(filter); err != nil {
			return err
		}
	}

	list, err := c.encounters.ListEncounters(ctx)
	if err != nil {
		return err
	}
	list = domain.FilterByGame(list, filter)
	if len(list) == 0 {
		_, err := fmt.Fprintln(c.out, noEncounters)
		return err
	}

	tw := newTable(c.out)
	fmt.Fprintln(tw, headerHistory)
	for _, e := range list {
		result, won := resultPending, noSpecial
		if e.HasResult() {
			result = e.Result.Label()
		}
		if e.WinAmount != nil {
			won = domain.FormatCurrency(*e.WinAmount)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			domain.FormatDate(e.Date), lottery.GameName(e.GameType), domain.FormatNumbers(e.Numbers),
			domain.FormatCurrency(e.Cost), result, won)
	}
	return tw.Flush()
}

type summaryCommand struct {
	out   io.Writer
	stats stats.Service
}

func (c *summaryCommand) Name() string        { return "summary" }
func (c *summaryCommand) Description() string { return "Summarize spending, wins and hot numbers" }

func (c *summaryCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.Name(), c.out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := noArgs(fs); err != nil {
		return err
	}

	summary, err := c.stats.GetSummary(ctx)
	if err != nil {
		return err
	}

	hot := make([]string, len(summary.MostFrequentNumbers))
	for i, nf := range summary.MostFrequentNumbers {
		hot[i] = strconv.Itoa(nf.Number) + " (" + strconv.Itoa(nf.Frequency) + "x)"
	}

	tw := newTable(c.out)
	fmt.Fprintf(tw, "Encounters:\t%d\n", summary.TotalEncounters)
	fmt.Fprintf(tw, "Total spent:\t%s\n", domain.FormatCurrency(summary.TotalSpent))
	fmt.Fprintf(tw, "Total winnings:\t%s\n", domain.FormatCurrency(summary.TotalWinnings))
	fmt.Fprintf(tw, "Net result:\t%s\n", domain.FormatCurrency(summary.NetResult))
	fmt.Fprintf(tw, "Win rate:\t%.1f%%\n", summary.WinRate)
	fmt.Fprintf(tw, "Return:\t%.1f%%\n", stats.ReturnPercent(*summary))
	fmt.Fprintf(tw, "Favorite game:\t%s\n", lottery.GameName(summary.FavoriteGame))
	fmt.Fprintf(tw, "Avg per week:\t%s\n", domain.FormatCurrency(summary.AverageSpendingPerWeek))
	fmt.Fprintf(tw, "Hot numbers:\t%s\n", strings.Join(hot, ", "))
	return tw.Flush()
}
