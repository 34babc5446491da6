// Command luckygen draws lottery numbers and summarizes the sample play log
// without starting the API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/LuckyGen_Go/internal/config"
	"github.com/osse101/LuckyGen_Go/internal/database/memory"
	"github.com/osse101/LuckyGen_Go/internal/encounter"
	"github.com/osse101/LuckyGen_Go/internal/logger"
	"github.com/osse101/LuckyGen_Go/internal/stats"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv(config.EnvLotteryRNG))
	stop()
	os.Exit(code)
}

// run dispatches one subcommand and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer, rngMode string) int {
	logger.InitLoggerWithWriter(logger.NewConfig("warn", "text", appName, config.DefaultVersion, "cli", false), stderr)

	registry := newRegistry(stdout, rngMode)

	if len(args) < 1 {
		registry.PrintHelp(stderr)
		return 1
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		fmt.Fprintf(stderr, ErrMsgUnknownCommand+"\n", args[0])
		registry.PrintHelp(stderr)
		return 1
	}

	if err := cmd.Run(ctx, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "%s: %v\n", cmd.Name(), err)
		return 1
	}
	return 0
}

// newRegistry wires every subcommand against a freshly seeded encounter log
func newRegistry(out io.Writer, rngMode string) *Registry {
	repo := memory.NewSeededEncounterRepository()

	r := NewRegistry()
	r.Register(&generateCommand{out: out, rngMode: rngMode})
	r.Register(&gamesCommand{out: out})
	r.Register(&historyCommand{out: out, encounters: encounter.NewService(repo)})
	r.Register(&summaryCommand{out: out, stats: stats.NewService(repo)})
	return r
}
