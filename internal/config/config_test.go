package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MPD_HOST", "")
	t.Setenv("MPD_PORT", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != DefaultHost || cfg.Port != DefaultPort {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if cfg.DialTimeout() != 0 {
		t.Errorf("DialTimeout = %v, want 0", cfg.DialTimeout())
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "host: music.local\nport: 6601\npassword: hunter2\ndial_timeout: 3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "music.local" || cfg.Port != 6601 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Password != "hunter2" {
		t.Errorf("Password = %q", cfg.Password)
	}
	if cfg.DialTimeout() != 3*time.Second {
		t.Errorf("DialTimeout = %v, want 3s", cfg.DialTimeout())
	}
}

func TestLoad_PartialFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("password: hunter2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != DefaultHost || cfg.Port != DefaultPort {
		t.Errorf("missing fields not defaulted: %+v", cfg)
	}
}

func TestLoad_Malformed(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("host: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed yaml")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Run("host override", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MPD_HOST", "music.local")

		cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if cfg.Host != "music.local" {
			t.Errorf("Host = %q", cfg.Host)
		}
	})

	t.Run("password at host", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MPD_HOST", "hunter2@music.local")

		cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if cfg.Host != "music.local" || cfg.Password != "hunter2" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("port override", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MPD_PORT", "6601")

		cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if cfg.Port != 6601 {
			t.Errorf("Port = %d", cfg.Port)
		}
	})

	t.Run("bad port ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MPD_PORT", "many")

		cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if cfg.Port != DefaultPort {
			t.Errorf("Port = %d, want default", cfg.Port)
		}
	})

	t.Run("environment beats file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MPD_HOST", "env.local")

		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("host: file.local\n"), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, _ := Load(path)
		if cfg.Host != "env.local" {
			t.Errorf("Host = %q, want env override", cfg.Host)
		}
	})
}

func TestAddr(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"tcp address", Config{Host: "music.local", Port: 6600}, "music.local:6600"},
		{"socket path ignores port", Config{Host: "/run/mpd/socket", Port: 6600}, "/run/mpd/socket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Addr(); got != tt.want {
				t.Errorf("Addr = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("tilde socket path expands", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		cfg := Config{Host: "~/.mpd/socket", Port: 6600}
		if got, want := cfg.Addr(), filepath.Join(home, ".mpd/socket"); got != want {
			t.Errorf("Addr = %q, want %q", got, want)
		}
	})
}

func TestPaths(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	paths, err := GetPaths()
	if err != nil {
		t.Fatalf("GetPaths: %v", err)
	}
	if filepath.Base(paths.Home) != ".mpdlink" {
		t.Errorf("Home = %q", paths.Home)
	}
	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if _, err := os.Stat(paths.Logs); err != nil {
		t.Errorf("logs dir missing: %v", err)
	}
}
