package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"

	"lyricsync/internal/align"
	"lyricsync/internal/config"
	"lyricsync/internal/fileutil"
	"lyricsync/internal/logging"
	"lyricsync/internal/media/ffprobe"
	"lyricsync/internal/srt"
	"lyricsync/internal/transcache"
	"lyricsync/internal/transcribe"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "sync <audio> <lyrics>",
		Short: "Align a lyrics file to an audio file and write SRT subtitles",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.ensureLogger(), "sync")

			audioPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			lines, err := loadLyrics(args[1])
			if err != nil {
				return err
			}

			runCtx := cmd.Context()
			duration := probeDuration(runCtx, cfg, logger, audioPath)
			recognition := obtainTranscription(runCtx, cfg, logger, newRecognizer(cfg, logger), audioPath, noCache)

			warnLowCoverage(logger, recognition, duration)
			logger.Debug("recognition ready",
				logging.Int("segments", len(recognition.Segments)),
				logging.Int("words", len(recognition.Words())),
				logging.String("language", recognition.Language),
			)

			words, usedReconstruction := align.PrepareWords(recognition.Words(), recognition.Segments)
			start := time.Now()
			result := align.New(alignOptions(cfg)).Align(lines, words, duration, usedReconstruction)
			logger.Info("alignment complete",
				logging.Int("lines", len(lines)),
				logging.Int("matched", result.MatchedCount),
				logging.Int("fallback", result.FallbackCount),
				logging.Duration("elapsed", time.Since(start)),
			)

			target := outputPath
			if target == "" {
				target = defaultOutputPath(audioPath)
			} else if target, err = config.ExpandPath(target); err != nil {
				return err
			}
			if err := srt.WriteFile(target, result.Cues); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderAlignmentReport(out, result)
			fmt.Fprintf(out, "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output SRT path (default: audio path with .srt extension)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the transcription cache for this run")
	return cmd
}

// probeDuration asks ffprobe for the audio duration. Zero means unknown; a
// missing or failing probe degrades the run instead of aborting it.
func probeDuration(ctx context.Context, cfg *config.Config, logger *slog.Logger, audioPath string) float64 {
	if err := ffprobe.Available(cfg.FFprobeBinary()); err != nil {
		logger.Warn("ffprobe unavailable; audio duration unknown", logging.Error(err))
		return 0
	}
	result, err := ffprobe.Inspect(ctx, cfg.FFprobeBinary(), audioPath)
	if err != nil {
		logger.Warn("ffprobe failed; audio duration unknown", logging.Error(err))
		return 0
	}
	duration := result.DurationSeconds()
	if duration <= 0 {
		logger.Warn("ffprobe reported no duration", logging.String("audio", audioPath))
		return 0
	}
	if result.AudioStreamCount() == 0 {
		logger.Warn("no audio stream detected", logging.String("audio", audioPath))
	}
	logger.Debug("probed audio duration", logging.Float64("seconds", duration))
	return duration
}

// warnLowCoverage flags recognitions whose segments span well under the audio
// duration, a common symptom of aggressive voice-activity filtering.
func warnLowCoverage(logger *slog.Logger, recognition transcribe.Result, duration float64) {
	if duration <= 0 || len(recognition.Segments) == 0 {
		return
	}
	var covered float64
	for _, seg := range recognition.Segments {
		covered = math.Max(covered, seg.End)
	}
	if covered < duration*0.5 {
		logger.Warn("recognized speech covers less than half of the audio",
			logging.Float64("covered_seconds", covered),
			logging.Float64("audio_seconds", duration),
		)
	}
}

// newRecognizer builds the configured speech recognition engine.
func newRecognizer(cfg *config.Config, logger *slog.Logger) transcribe.Engine {
	return transcribe.NewWhisperX(transcribe.WhisperXConfig{
		Command:  cfg.WhisperX.Command,
		Model:    cfg.WhisperX.Model,
		Device:   cfg.WhisperX.Device,
		Language: cfg.WhisperX.Language,
		Timeout:  time.Duration(cfg.WhisperX.TimeoutSeconds) * time.Second,
	}, logger)
}

// obtainTranscription returns word-level recognition for the audio, consulting
// the cache when enabled. A missing recognizer or failed run yields an empty
// result, which downstream alignment treats as pure-text mode.
func obtainTranscription(ctx context.Context, cfg *config.Config, logger *slog.Logger, engine transcribe.Engine, audioPath string, noCache bool) transcribe.Result {
	if err := engine.Available(); err != nil {
		logger.Warn("recognizer unavailable; falling back to text estimation",
			logging.String("engine", engine.Name()),
			logging.Error(err),
		)
		return transcribe.Result{}
	}

	useCache := cfg.Cache.Enabled && !noCache
	var audioHash string
	var store *transcache.Store
	if useCache {
		var err error
		if audioHash, err = fileutil.HashFile(audioPath); err != nil {
			logger.Warn("hash audio for cache", logging.Error(err))
			useCache = false
		} else if store, err = transcache.Open(cfg.Cache.Dir); err != nil {
			logger.Warn("open transcription cache", logging.Error(err))
			useCache = false
		} else {
			defer store.Close()
		}
	}

	if useCache {
		entry, hit, err := store.Get(ctx, audioHash, cfg.WhisperX.Model)
		if err != nil {
			logger.Warn("read transcription cache", logging.Error(err))
		} else if hit {
			result, parseErr := transcribe.ParsePayload(entry.Payload)
			if parseErr == nil {
				logger.Info("using cached transcription",
					logging.String("model", entry.Model),
					logging.String("hash", audioHash),
				)
				return result
			}
			logger.Warn("cached transcription unreadable; re-running recognizer", logging.Error(parseErr))
		}
	}

	result, err := engine.Transcribe(ctx, audioPath)
	if err != nil {
		logger.Warn("transcription failed; falling back to text estimation", logging.Error(err))
		return transcribe.Result{}
	}

	if useCache && len(result.Raw) > 0 {
		if err := store.Put(ctx, audioHash, cfg.WhisperX.Model, result.Language, result.Raw); err != nil {
			logger.Warn("store transcription in cache", logging.Error(err))
		}
	}
	return result
}
