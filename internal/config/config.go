// Package config handles mpdlink paths and daemon connection settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for a locally running daemon.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 6600
)

// Config holds the daemon connection settings.
type Config struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	Password string `yaml:"password,omitempty"`
	// DialTimeoutSec is the connect timeout in seconds; 0 uses the
	// client default.
	DialTimeoutSec int `yaml:"dial_timeout,omitempty"`
}

// DialTimeout returns the configured connect timeout, or 0 when unset.
func (c *Config) DialTimeout() time.Duration {
	return time.Duration(c.DialTimeoutSec) * time.Second
}

// Default returns the settings for an unconfigured local daemon.
func Default() *Config {
	return &Config{Host: DefaultHost, Port: DefaultPort}
}

// Load reads the YAML config file, falling back to defaults when the
// file does not exist, then applies the MPD_HOST/MPD_PORT environment
// conventions on top.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No config file is fine; environment and defaults apply.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.Host == "" {
			cfg.Host = DefaultHost
		}
		if cfg.Port == 0 {
			cfg.Port = DefaultPort
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv applies MPD's own environment conventions: MPD_HOST may be
// "host", "password@host", or a socket path; MPD_PORT overrides the port.
func (c *Config) applyEnv() {
	if host := os.Getenv("MPD_HOST"); host != "" {
		if password, rest, ok := strings.Cut(host, "@"); ok && rest != "" {
			c.Password = password
			host = rest
		}
		c.Host = host
	}
	if port := os.Getenv("MPD_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			c.Port = n
		}
	}
}

// Addr returns the dial address: the socket path itself when the host is
// a filesystem path, else host:port.
func (c *Config) Addr() string {
	host := expandTilde(c.Host)
	if strings.ContainsRune(host, '/') {
		return host
	}
	return fmt.Sprintf("%s:%d", host, c.Port)
}

// expandTilde expands a leading ~/ to the home directory, leaving the
// path untouched when the home directory is unknown.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Paths holds the common paths used by mpdlink.
type Paths struct {
	Home       string
	ConfigFile string
	Logs       string
	WatchLog   string
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	linkHome := filepath.Join(home, ".mpdlink")
	logsDir := filepath.Join(linkHome, "logs")
	return &Paths{
		Home:       linkHome,
		ConfigFile: filepath.Join(linkHome, "config.yaml"),
		Logs:       logsDir,
		WatchLog:   filepath.Join(logsDir, "watch.log"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
