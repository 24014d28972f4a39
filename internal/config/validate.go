package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAlignment(); err != nil {
		return err
	}
	if err := c.validateEstimate(); err != nil {
		return err
	}
	if err := c.validateWhisperX(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAlignment() error {
	if c.Alignment.MinScore <= 0 || c.Alignment.MinScore > 1 {
		return errors.New("alignment.min_score must be between 0 and 1")
	}
	if c.Alignment.MinGap <= 0 {
		return errors.New("alignment.min_gap must be positive (seconds)")
	}
	if c.Alignment.MinDuration <= 0 {
		return errors.New("alignment.min_duration must be positive (seconds)")
	}
	if c.Alignment.MinDuration <= c.Alignment.MinGap {
		return errors.New("alignment.min_duration must be greater than alignment.min_gap")
	}
	if c.Alignment.SearchWindowWords <= 0 {
		return errors.New("alignment.search_window_words must be positive")
	}
	return nil
}

func (c *Config) validateEstimate() error {
	if err := ensurePositiveMap(map[string]float64{
		"estimate.words_per_second":   c.Estimate.WordsPerSecond,
		"estimate.chars_per_second":   c.Estimate.CharsPerSecond,
		"estimate.default_duration":   c.Estimate.DefaultDuration,
		"estimate.min_block_duration": c.Estimate.MinBlockDuration,
		"estimate.max_block_duration": c.Estimate.MaxBlockDuration,
	}); err != nil {
		return err
	}
	if c.Estimate.PauseBetweenBlocks < 0 {
		return errors.New("estimate.pause_between_blocks must be >= 0")
	}
	if c.Estimate.MaxBlockDuration < c.Estimate.MinBlockDuration {
		return errors.New("estimate.max_block_duration must be >= estimate.min_block_duration")
	}
	return nil
}

func (c *Config) validateWhisperX() error {
	if c.WhisperX.Command == "" {
		return errors.New("whisperx.command must be set")
	}
	if c.WhisperX.Model == "" {
		return errors.New("whisperx.model must be set")
	}
	if c.WhisperX.TimeoutSeconds <= 0 {
		return errors.New("whisperx.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.Dir == "" {
		return errors.New("cache.dir must be set when cache.enabled is true")
	}
	return nil
}

func ensurePositiveMap(values map[string]float64) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
