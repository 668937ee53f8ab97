package main

import (
	"os"
	"os/user"

	"github.com/charmbracelet/log"

	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/audio"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/game"
	"github.com/tomz197/alien-invasion/internal/leaderboard"
	"github.com/tomz197/alien-invasion/internal/settings"
	"github.com/tomz197/alien-invasion/internal/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "window",
	})

	s := settings.New()
	if err := config.ApplySettingsEnv(s); err != nil {
		logger.Fatal("invalid settings", "err", err)
	}

	assetDir := config.GetEnv(config.AssetDirEnv, config.DefaultAssetDir)
	assets, err := asset.LoadSet(assetDir)
	if err != nil {
		logger.Fatal("failed to load images", "dir", assetDir, "err", err)
	}

	opts := window.Options{
		Game:        game.Config{Settings: s, Assets: assets},
		Leaderboard: leaderboard.New(config.LeaderboardSize),
		Player:      playerName(),
		Logger:      logger,
	}

	var player *audio.Player
	if config.GetEnvBool(config.SoundEnv, false) {
		player = audio.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		}
		if player.Enabled() {
			opts.Sound = player
		}
	}

	logger.Info("opening window", "width", s.ScreenWidth, "height", s.ScreenHeight)
	err = window.Run(opts)
	player.Close()
	if err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}

func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
