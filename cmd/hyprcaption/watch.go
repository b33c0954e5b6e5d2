package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leonardotrapani/hyprcaption/internal/caption"
	"github.com/leonardotrapani/hyprcaption/internal/config"
	"github.com/leonardotrapani/hyprcaption/internal/stream"
	"github.com/leonardotrapani/hyprcaption/internal/tui"
)

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// runWatch runs the full-screen view. The stream client and the config
// watcher only talk to the view through Program.Send, so the caption
// session is touched by the bubbletea loop alone.
func runWatch(parent context.Context) error {
	path, err := config.ResolvePath(configPath)
	if err != nil {
		return err
	}
	mgr, err := config.NewManager(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := applyOverrides(mgr.GetConfig())
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	logFile, err := tea.LogToFile(logPath, "hyprcaption")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	ctx, cancel := signalContext(parent)
	defer cancel()

	session := caption.NewSession(cfg.Display.ShowPartial)
	viewer := tui.NewViewer(session, cfg.Stream.URL(), cfg.Display)
	p := tea.NewProgram(viewer, tea.WithAltScreen(), tea.WithContext(ctx))

	client := stream.NewClient(cfg.ToStreamConfig(), stream.HandlerFunc(func(ev caption.Event) {
		p.Send(tui.EventMsg{Event: ev})
	}))
	go func() {
		_ = client.Run(ctx)
	}()

	mgr.OnReload(func(c *config.Config) {
		p.Send(tui.DisplayMsg{Display: c.Display})
	})
	if err := mgr.StartWatching(ctx); err != nil {
		log.Printf("Config manager: not watching %s: %v", mgr.Path(), err)
	} else {
		defer mgr.Stop()
	}

	_, err = p.Run()
	cancel()

	stats := client.Stats()
	log.Printf("stream: %d connections, %d frames, %d dropped, %d ignored",
		stats.Connects, stats.Frames, stats.Dropped, stats.Ignored)

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
