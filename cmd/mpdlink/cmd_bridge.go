package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/askoglund/mpdlink/internal/bridge"
	"github.com/askoglund/mpdlink/internal/ui"
)

type BridgeCmd struct {
	Listen string `default:"127.0.0.1:6601" help:"Address to serve WebSocket subscribers on"`
}

func (c *BridgeCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	logger, closeLog, err := watchLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	watcher := client.NewWatcher(logger)
	watcher.Start()
	defer watcher.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui.PrintInfo("Bridge listening on ws://" + c.Listen)
	server := bridge.New(watcher, logger.With(slog.String("component", "bridge")))
	return server.ListenAndServe(ctx, c.Listen)
}
