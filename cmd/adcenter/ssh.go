package main

import (
	"context"
	"errors"
	"fmt"
	"net"
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

	"github.com/seongmin-dev/adcenter/internal/config"
)

// sshMain serves the TUI over SSH
func sshMain(cfg config.Config) {
	if err := os.MkdirAll(filepath.Dir(cfg.SSH.KeyPath), 0700); err != nil {
		log.Error("failed to create host key directory", "error", err)
		os.Exit(1)
	}

	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)),
		wish.WithHostKeyPath(cfg.SSH.KeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler(cfg)),
			loggingMiddleware(),
		),
	)
	if err != nil {
		log.Error("failed to create SSH server", "error", err)
		os.Exit(1)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	log.Info("starting SSH server", "host", cfg.SSH.Host, "port", cfg.SSH.Port)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("SSH server error", "error", err)
			done <- nil
		}
	}()

	<-done
	log.Info("shutting down SSH server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("failed to shutdown SSH server", "error", err)
	}
}

// teaHandler builds the per-session Bubble Tea program
func teaHandler(cfg config.Config) func(ssh.Session) (tea.Model, []tea.ProgramOption) {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, ok := s.Pty()

		width, height := 80, 24
		if ok {
			width = pty.Window.Width
			height = pty.Window.Height
		}

		m, err := initialModel(cfg, width, height)
		if err != nil {
			log.Error("failed to create API client", "error", err, "user", s.User())
			return errorModel{err: fmt.Errorf("failed to connect to API: %w", err)}, nil
		}

		return m, []tea.ProgramOption{tea.WithAltScreen()}
	}
}

// errorModel is a minimal model for displaying connection errors
type errorModel struct {
	err error
}

func (m errorModel) Init() tea.Cmd { return nil }
func (m errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}
func (m errorModel) View() string {
	return fmt.Sprintf("\n  Error: %v\n\n  Press any key to exit.\n", m.err)
}

// loggingMiddleware logs SSH session lifecycles
func loggingMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			log.Info("SSH session started",
				"user", s.User(),
				"remote", s.RemoteAddr().String(),
			)
			next(s)
			log.Info("SSH session ended",
				"user", s.User(),
				"remote", s.RemoteAddr().String(),
			)
		}
	}
}
