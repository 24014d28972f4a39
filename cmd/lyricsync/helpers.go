package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lyricsync/internal/align"
	"lyricsync/internal/config"
	"lyricsync/internal/services"
)

// loadLyrics reads a lyrics file and splits it into non-blank lines.
func loadLyrics(path string) ([]align.Line, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "lyrics", "read", "", err)
	}
	lines := align.ParseLines(string(data))
	if len(lines) == 0 {
		return nil, services.Wrap(services.ErrValidation, "lyrics", "parse", fmt.Sprintf("%s contains no lyric lines", expanded), nil)
	}
	return lines, nil
}

// defaultOutputPath swaps the audio file extension for .srt.
func defaultOutputPath(audioPath string) string {
	ext := filepath.Ext(audioPath)
	return strings.TrimSuffix(audioPath, ext) + ".srt"
}

// alignOptions maps configuration onto the alignment tunables.
func alignOptions(cfg *config.Config) align.Options {
	return align.Options{
		MinGap:             cfg.Alignment.MinGap,
		MinDuration:        cfg.Alignment.MinDuration,
		SearchWindowWords:  cfg.Alignment.SearchWindowWords,
		MinScore:           cfg.Alignment.MinScore,
		WordsPerSecond:     cfg.Estimate.WordsPerSecond,
		CharsPerSecond:     cfg.Estimate.CharsPerSecond,
		PauseBetweenBlocks: cfg.Estimate.PauseBetweenBlocks,
		DefaultDuration:    cfg.Estimate.DefaultDuration,
		MinBlockDuration:   cfg.Estimate.MinBlockDuration,
		MaxBlockDuration:   cfg.Estimate.MaxBlockDuration,
	}
}
