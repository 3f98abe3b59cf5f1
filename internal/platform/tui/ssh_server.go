package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pushbox/internal/config"
	"github.com/vovakirdan/tui-pushbox/internal/core"
	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox"
	puzzle "github.com/vovakirdan/tui-pushbox/internal/games/pushbox/core"
)

// sessionIDKey stores the per-connection ID in the SSH context.
type sessionIDKey struct{}

// SSHServer serves Pushbox over SSH. Every session gets its own puzzle.
type SSHServer struct {
	cfg    config.Config
	layout puzzle.Layout
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server for the given layout.
func NewSSHServer(cfg config.Config, layout puzzle.Layout, logger *log.Logger) (*SSHServer, error) {
	// Fail before listening if the layout cannot be played.
	if _, err := puzzle.New(layout); err != nil {
		return nil, err
	}

	srv := &SSHServer{
		cfg:    cfg,
		layout: layout,
		logger: logger,
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.Server.HostKeyPath)
	if err != nil {
		return nil, err
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Server.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if idle := cfg.IdleTimeout(); idle > 0 {
		opts = append(opts, wish.WithIdleTimeout(idle))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath defaults to ~/.pushbox/host_key.
func resolveHostKeyPath(path string) (string, error) {
	if path != "" {
		return config.ExpandHome(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".pushbox", "host_key"), nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	logger := s.sessionLogger(sess)

	pty, _, ok := sess.Pty()
	if !ok {
		logger.Warn("no PTY requested")
		wish.Fatalln(sess, "pushbox needs an interactive terminal, try ssh -t")
		return nil, nil
	}

	game, err := pushbox.New(s.layout, s.cfg)
	if err != nil {
		logger.Error("cannot create puzzle", "error", err)
		return nil, nil
	}

	rc := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}
	model := NewModel(game, s.cfg, rc, logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionLogger returns a logger tagged with the session ID and user.
func (s *SSHServer) sessionLogger(sess ssh.Session) *log.Logger {
	id, _ := sess.Context().Value(sessionIDKey{}).(string)
	return s.logger.With("session", id, "user", sess.User())
}

// loggingMiddleware assigns a session ID and logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		sess.Context().SetValue(sessionIDKey{}, uuid.NewString())
		logger := s.sessionLogger(sess)

		start := time.Now()
		logger.Info("session started", "remote", sess.RemoteAddr().String())
		next(sess)
		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.cfg.Server.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		return fmt.Errorf("ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.cfg.Server.Address
}
