package main

import (
	"context"
	"flag"
	"log"
	"sync/atomic"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"promptbuilder/internal/adapters/field"
	mcpadapter "promptbuilder/internal/adapters/mcp"
	"promptbuilder/internal/adapters/sqlite"
	"promptbuilder/internal/adapters/trigger"
	"promptbuilder/internal/adapters/wsync"
	"promptbuilder/internal/application"
	"promptbuilder/internal/bootstrap"
	"promptbuilder/internal/config"
	"promptbuilder/internal/domain"
)

func main() {
	configFlag := flag.String("config", config.ConfigPath(), "path to the config file")
	flag.Parse()

	cfg, err := config.LoadFrom(*configFlag)
	if err != nil {
		log.Fatalf("promptbuilder-mcp: %v", err)
	}

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("promptbuilder-mcp: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	var current atomic.Pointer[application.Widget]
	channels := application.Channels{store}
	if cfg.SyncURL != "" {
		client, err := wsync.Dial(ctx, cfg.SyncURL, func(s domain.Snapshot) {
			widget := current.Load()
			if widget == nil {
				return
			}
			if err := widget.ApplySnapshot(s); err != nil {
				log.Printf("promptbuilder-mcp: apply remote state: %v", err)
			}
		})
		if err != nil {
			log.Printf("promptbuilder-mcp: %v", err)
		} else {
			defer client.Close()
			channels = append(channels, client)
		}
	}

	promptField := field.NewFileField(cfg.FieldPath)
	widget := application.NewWidget(bootstrap.Source(cfg),
		application.WithPromptField(promptField),
		application.WithSettingsStore(store),
		application.WithSnapshotChannel(channels),
		application.WithGenerationTrigger(trigger.NewCommandTrigger(cfg.GenerateCommand, promptField.Value)),
	)
	current.Store(widget)
	if err := widget.Load(ctx); err != nil {
		log.Printf("promptbuilder-mcp: %v", err)
	} else if snapshot, ok, err := store.LoadSession(); err != nil {
		log.Printf("promptbuilder-mcp: %v", err)
	} else if ok {
		if err := widget.ApplySnapshot(snapshot); err != nil {
			log.Printf("promptbuilder-mcp: restore session: %v", err)
		}
	}

	mcpServer := server.NewMCPServer(
		"promptbuilder-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, widget)
	mcpadapter.RegisterWriteTools(mcpServer, widget)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("promptbuilder-mcp: %v", err)
	}
}
