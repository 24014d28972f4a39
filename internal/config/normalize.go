package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAlignment()
	c.normalizeEstimate()
	c.normalizeWhisperX()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeAlignment() {
	if c.Alignment.MinGap <= 0 {
		c.Alignment.MinGap = defaultMinGap
	}
	if c.Alignment.MinDuration <= 0 {
		c.Alignment.MinDuration = defaultMinDuration
	}
	if c.Alignment.SearchWindowWords <= 0 {
		c.Alignment.SearchWindowWords = defaultSearchWindowWords
	}
	if c.Alignment.MinScore <= 0 {
		c.Alignment.MinScore = defaultMinScore
	}
}

func (c *Config) normalizeEstimate() {
	if c.Estimate.WordsPerSecond <= 0 {
		c.Estimate.WordsPerSecond = defaultWordsPerSecond
	}
	if c.Estimate.CharsPerSecond <= 0 {
		c.Estimate.CharsPerSecond = defaultCharsPerSecond
	}
	if c.Estimate.PauseBetweenBlocks < 0 {
		c.Estimate.PauseBetweenBlocks = defaultPauseBetweenBlocks
	}
	if c.Estimate.DefaultDuration <= 0 {
		c.Estimate.DefaultDuration = defaultBlockDuration
	}
	if c.Estimate.MinBlockDuration <= 0 {
		c.Estimate.MinBlockDuration = defaultMinBlockDuration
	}
	if c.Estimate.MaxBlockDuration <= 0 {
		c.Estimate.MaxBlockDuration = defaultMaxBlockDuration
	}
}

func (c *Config) normalizeWhisperX() {
	c.WhisperX.Command = strings.TrimSpace(c.WhisperX.Command)
	if c.WhisperX.Command == "" {
		c.WhisperX.Command = defaultWhisperXCommand
	}
	c.WhisperX.Model = strings.TrimSpace(c.WhisperX.Model)
	if c.WhisperX.Model == "" {
		c.WhisperX.Model = defaultWhisperXModel
	}
	c.WhisperX.Device = strings.ToLower(strings.TrimSpace(c.WhisperX.Device))
	if c.WhisperX.Device == "" {
		c.WhisperX.Device = defaultWhisperXDevice
	}
	c.WhisperX.Language = strings.ToLower(strings.TrimSpace(c.WhisperX.Language))
	if c.WhisperX.TimeoutSeconds <= 0 {
		c.WhisperX.TimeoutSeconds = defaultWhisperXTimeoutSeconds
	}
}

func (c *Config) normalizeCache() error {
	var err error
	if strings.TrimSpace(c.Cache.Dir) == "" {
		c.Cache.Dir = defaultCacheDir()
	}
	if c.Cache.Dir, err = expandPath(c.Cache.Dir); err != nil {
		return fmt.Errorf("cache.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
