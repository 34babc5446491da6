package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/LuckyGen_Go/internal/config"
	"github.com/osse101/LuckyGen_Go/internal/discord"
	"github.com/osse101/LuckyGen_Go/internal/logger"
)

func main() {
	_ = godotenv.Load()

	logger.InitLogger(logger.DefaultConfig())

	if err := config.ValidateDiscordEnv(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.LoadDiscord()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Configured API URL", "url", cfg.APIURL, "guild_id", cfg.GuildID)

	bot, err := discord.New(discord.Config{
		Token:   cfg.Token,
		AppID:   cfg.AppID,
		GuildID: cfg.GuildID,
		APIURL:  cfg.APIURL,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthServer := discord.NewHTTPServer(cfg.HealthPort, bot)
	healthServer.Start()
	defer healthServer.Stop()

	bot.Registry.RegisterAll(discord.DefaultCommands())

	if cfg.ForceCommand {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommand); err != nil {
		// Bot can still run if commands are already registered
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		healthServer.Stop()
		os.Exit(1)
	}
}
