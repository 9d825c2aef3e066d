package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"promptbuilder/internal/adapters/browser"
	"promptbuilder/internal/adapters/field"
	"promptbuilder/internal/adapters/sqlite"
	"promptbuilder/internal/adapters/trigger"
	"promptbuilder/internal/adapters/tui"
	"promptbuilder/internal/adapters/tui/views"
	"promptbuilder/internal/adapters/wsync"
	"promptbuilder/internal/application"
	"promptbuilder/internal/bootstrap"
	"promptbuilder/internal/config"
	"promptbuilder/internal/debug"
	"promptbuilder/internal/domain"
)

func main() {
	configFlag := flag.String("config", config.ConfigPath(), "path to the config file")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	// Anything written to stderr would draw over the alternate screen
	logFile, err := openLog()
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	debug.SetOutput(logFile)

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	// Messages arriving before the program starts are dropped
	var program atomic.Pointer[tea.Program]
	send := func(msg tea.Msg) {
		if p := program.Load(); p != nil {
			p.Send(msg)
		}
	}

	channels := application.Channels{store}
	if cfg.SyncURL != "" {
		client, err := wsync.Dial(context.Background(), cfg.SyncURL, func(s domain.Snapshot) {
			send(views.RemoteSnapshotMsg{Snapshot: s})
		})
		if err != nil {
			log.Printf("promptbuilder: %v", err)
		} else {
			defer client.Close()
			channels = append(channels, client)
		}
	}

	promptField := field.NewFileField(cfg.FieldPath)
	generate := tui.NewBackgroundTrigger(
		trigger.NewCommandTrigger(cfg.GenerateCommand, promptField.Value),
		func(err error) { send(views.GeneratedMsg{Err: err}) },
	)

	widget := application.NewWidget(bootstrap.Source(cfg),
		application.WithPromptField(promptField),
		application.WithSettingsStore(store),
		application.WithSnapshotChannel(channels),
		application.WithGenerationTrigger(generate),
	)

	app := tui.NewApp(widget,
		tui.WithClipboard(clipboard.WriteAll),
		tui.WithLinkOpener(browser.NewOpener()),
		tui.WithSession(store),
	)

	p := tea.NewProgram(app, tea.WithAltScreen())
	program.Store(p)
	_, err = p.Run()
	return err
}

func openLog() (*os.File, error) {
	dir := config.StateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "promptbuilder.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
