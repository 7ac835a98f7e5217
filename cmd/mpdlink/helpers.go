package main

import (
	"github.com/askoglund/mpdlink/internal/config"
	"github.com/askoglund/mpdlink/internal/mpd"
)

// newClient loads the configuration and opens a connection.
// Callers are responsible for Disconnect.
func newClient() (*mpd.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	var opts []mpd.Option
	if cfg.Password != "" {
		opts = append(opts, mpd.WithPassword(cfg.Password))
	}
	if d := cfg.DialTimeout(); d > 0 {
		opts = append(opts, mpd.WithDialTimeout(d))
	}

	client := mpd.New(cfg.Addr(), opts...)
	if err := client.Connect(); err != nil {
		return nil, errDaemonUnreachable(cfg.Addr(), err)
	}
	return client, nil
}

func loadConfig() (*config.Config, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, err
	}
	return config.Load(paths.ConfigFile)
}
