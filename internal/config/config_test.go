package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"lyricsync/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CACHE_HOME", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogDir := filepath.Join(tempHome, ".local", "share", "lyricsync", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("expected cache enabled by default")
	}
	if !strings.Contains(cfg.Cache.Dir, "lyricsync") {
		t.Fatalf("unexpected cache dir: %q", cfg.Cache.Dir)
	}
	if cfg.Alignment.MinScore != 0.55 {
		t.Fatalf("unexpected min score: %v", cfg.Alignment.MinScore)
	}
	if cfg.Alignment.SearchWindowWords != 40 {
		t.Fatalf("unexpected search window: %d", cfg.Alignment.SearchWindowWords)
	}
	if cfg.Estimate.MaxBlockDuration != 8.0 {
		t.Fatalf("unexpected max block duration: %v", cfg.Estimate.MaxBlockDuration)
	}
	if cfg.WhisperX.Command != "whisperx" {
		t.Fatalf("unexpected whisperx command: %q", cfg.WhisperX.Command)
	}
	if cfg.WhisperX.Device != "cpu" {
		t.Fatalf("unexpected whisperx device: %q", cfg.WhisperX.Device)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, cfg.Cache.Dir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "lyricsync.toml")

	type payload struct {
		Alignment struct {
			MinScore float64 `toml:"min_score"`
		} `toml:"alignment"`
		WhisperX struct {
			Model    string `toml:"model"`
			Language string `toml:"language"`
		} `toml:"whisperx"`
		Cache struct {
			Enabled bool `toml:"enabled"`
		} `toml:"cache"`
	}
	custom := payload{}
	custom.Alignment.MinScore = 0.7
	custom.WhisperX.Model = "large-v3"
	custom.WhisperX.Language = "EN"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Alignment.MinScore != 0.7 {
		t.Fatalf("expected min score override, got %v", cfg.Alignment.MinScore)
	}
	if cfg.WhisperX.Model != "large-v3" {
		t.Fatalf("expected model override, got %q", cfg.WhisperX.Model)
	}
	if cfg.WhisperX.Language != "en" {
		t.Fatalf("expected lowercased language, got %q", cfg.WhisperX.Language)
	}
	if cfg.Cache.Enabled {
		t.Fatal("expected cache disabled by file")
	}
	if cfg.Alignment.MinGap != 0.12 {
		t.Fatalf("expected untouched fields to keep defaults, got min_gap=%v", cfg.Alignment.MinGap)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[alignment]") {
		t.Fatalf("sample config missing alignment section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.WhisperX.Command != "whisperx" {
		t.Fatalf("unexpected sample whisperx command: %q", cfg.WhisperX.Command)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Alignment.MinScore = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for min score above 1")
	}

	cfg = config.Default()
	cfg.Alignment.MinDuration = cfg.Alignment.MinGap
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when min_duration <= min_gap")
	}

	cfg = config.Default()
	cfg.Estimate.MaxBlockDuration = cfg.Estimate.MinBlockDuration - 1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when max block < min block")
	}

	cfg = config.Default()
	cfg.WhisperX.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty whisperx model")
	}

	cfg = config.Default()
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for enabled cache without dir")
	}
}

func TestNormalizeRepairsZeroValues(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "lyricsync.toml")
	raw := "[whisperx]\ncommand = \"  \"\ntimeout_seconds = 0\n"
	if err := os.WriteFile(configPath, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.WhisperX.Command != "whisperx" {
		t.Fatalf("expected default command, got %q", cfg.WhisperX.Command)
	}
	if cfg.WhisperX.TimeoutSeconds != 1800 {
		t.Fatalf("expected default timeout, got %d", cfg.WhisperX.TimeoutSeconds)
	}
}
