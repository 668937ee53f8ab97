package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/draw"
	"github.com/tomz197/alien-invasion/internal/leaderboard"
	"github.com/tomz197/alien-invasion/internal/loop"
	"github.com/tomz197/alien-invasion/internal/settings"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	sessionDrainTime   = 5 * time.Second
)

// arcade is shared by every SSH session: one leaderboard, one set of
// images and a context cancelled on shutdown.
type arcade struct {
	ctx      context.Context
	assets   *asset.Set
	settings *settings.Settings // Template copied into every session
	board    *leaderboard.Board
	logger   *log.Logger
	sessions sync.WaitGroup
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ssh",
	})
	log.SetDefault(logger)

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	assetDir := config.GetEnv(config.AssetDirEnv, config.DefaultAssetDir)
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "workingDir", workingDir)

	// Apply and validate the settings once; each session gets its own copy
	base := settings.New()
	if err := config.ApplySettingsEnv(base); err != nil {
		logger.Fatal("invalid settings", "err", err)
	}

	assets, err := asset.LoadSet(assetDir)
	if err != nil {
		logger.Fatal("failed to load images", "dir", assetDir, "err", err)
	}

	ctx, cancelSessions := context.WithCancel(context.Background())
	a := &arcade{
		ctx:      ctx,
		assets:   assets,
		settings: base,
		board:    leaderboard.New(config.LeaderboardSize),
		logger:   logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			a.gameMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	// End every running game, then give sessions a moment to restore their terminals
	cancelSessions()
	a.waitSessions(sessionDrainTime)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
	if best, ok := a.board.Best(); ok {
		logger.Info("best score", "user", best.Name, "score", best.Score, "level", best.Level)
	}
}

// waitSessions waits for running sessions to end, at most d.
func (a *arcade) waitSessions(d time.Duration) {
	ended := make(chan struct{})
	go func() {
		a.sessions.Wait()
		close(ended)
	}()
	select {
	case <-ended:
	case <-time.After(d):
		a.logger.Warn("sessions still running at shutdown")
	}
}

// gameMiddleware runs an independent game in every SSH session.
func (a *arcade) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		a.sessions.Add(1)
		defer a.sessions.Done()

		logger := a.logger.With("user", sess.User())
		logger.Info("new game session", "terminal", pty.Term, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		// The game ends with the session or with the server
		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(a.ctx, cancel)
		defer stop()

		reader := bufio.NewReader(sess)
		err := loop.Run(ctx, reader, sess, loop.Options{
			TermSizeFunc: sizeTracker.getSize,
			Settings:     a.settings.Clone(),
			Assets:       a.assets,
			Leaderboard:  a.board,
			Player:       sess.User(),
			Logger:       logger,
		})
		if err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
