package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/audio"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/leaderboard"
	"github.com/tomz197/alien-invasion/internal/loop"
	"github.com/tomz197/alien-invasion/internal/settings"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "game",
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

	opts := loop.Options{
		Settings:    s,
		Assets:      assets,
		Leaderboard: leaderboard.New(config.LeaderboardSize),
		Player:      playerName(),
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

	// Nothing may log while the terminal is raw
	err = play(opts)
	player.Close()
	if err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}

// play runs the game with the terminal in raw mode.
func play(opts loop.Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	// Ctrl-C arrives as input in raw mode; SIGTERM still needs handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(ctx, reader, os.Stdout, opts)
}

func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
