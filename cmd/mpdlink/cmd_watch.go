package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/askoglund/mpdlink/internal/config"
	"github.com/askoglund/mpdlink/internal/logging"
	"github.com/askoglund/mpdlink/internal/mpd"
	"github.com/askoglund/mpdlink/internal/protocol"
	"github.com/askoglund/mpdlink/internal/ui"
)

type WatchCmd struct {
	Fields []string `short:"f" help:"Only report these status fields (default: all)"`
}

func (c *WatchCmd) Run() error {
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

	fields := make([]mpd.Field, 0, len(c.Fields))
	for _, f := range c.Fields {
		fields = append(fields, mpd.Field(f))
	}
	events, cancel := watcher.Subscribe(fields...)
	defer cancel()

	watcher.Start()
	defer watcher.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui.PrintInfo("Watching for changes (Ctrl-C to stop)")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			logger.Info("change", "field", string(ev.Field), "value", ev.Value)
			fmt.Fprintf(ui.Output, "%s %s\n", ui.Bold(string(ev.Field)+":"), formatEventValue(ev.Value))
		}
	}
}

// watchLogger builds a rotating file logger under the mpdlink home.
func watchLogger() (*slog.Logger, func(), error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, nil, err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, nil, err
	}
	w := logging.NewRotatingWriter(logging.DefaultConfig(paths.WatchLog))
	return logging.NewLogger(w, slog.LevelInfo), func() { w.Close() }, nil
}

func formatEventValue(v any) string {
	switch t := v.(type) {
	case *protocol.Track:
		return ui.TrackLine(t)
	case protocol.TimePair:
		return fmt.Sprintf("%s / %s", ui.FormatDuration(t.Elapsed), ui.FormatDuration(t.Total))
	case protocol.AudioFormat:
		return fmt.Sprintf("%d:%d:%d", t.SampleRate, t.Bits, t.Channels)
	case bool:
		if t {
			return ui.Green("yes")
		}
		return ui.Red("no")
	default:
		return fmt.Sprint(v)
	}
}
