package transcribe

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"lyricsync/internal/logging"
	"lyricsync/internal/services"
)

// WhisperXConfig captures runtime settings for whisperx invocations.
type WhisperXConfig struct {
	Command  string
	Model    string
	Device   string
	Language string
	Timeout  time.Duration
}

// WhisperX runs the whisperx CLI and parses its JSON output.
type WhisperX struct {
	cfg           WhisperXConfig
	logger        *slog.Logger
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewWhisperX creates a whisperx-backed engine.
func NewWhisperX(cfg WhisperXConfig, logger *slog.Logger) *WhisperX {
	if cfg.Command == "" {
		cfg.Command = "whisperx"
	}
	if cfg.Model == "" {
		cfg.Model = "small"
	}
	if cfg.Device == "" {
		cfg.Device = "cpu"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Minute
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &WhisperX{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "whisperx"),
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (w *WhisperX) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	w.commandRunner = runner
}

// Name identifies the recognizer.
func (w *WhisperX) Name() string {
	return w.cfg.Command
}

// Available reports whether the whisperx binary can be found on PATH.
func (w *WhisperX) Available() error {
	if _, err := exec.LookPath(w.cfg.Command); err != nil {
		return services.Wrap(services.ErrExternalTool, "transcribe", "probe", fmt.Sprintf("%s not found on PATH", w.cfg.Command), err)
	}
	return nil
}

// Transcribe runs whisperx on the audio file and parses the JSON it writes.
// Output files land in a temporary directory removed before returning.
func (w *WhisperX) Transcribe(ctx context.Context, path string) (Result, error) {
	if strings.TrimSpace(path) == "" {
		return Result{}, services.Wrap(services.ErrValidation, "transcribe", "run", "audio path required", nil)
	}
	if err := w.Available(); err != nil {
		return Result{}, err
	}

	outputDir, err := os.MkdirTemp("", "lyricsync-whisperx-")
	if err != nil {
		return Result{}, services.Wrap(services.ErrTransient, "transcribe", "run", "create output dir", err)
	}
	defer os.RemoveAll(outputDir)

	runCtx := ctx
	if w.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, w.cfg.Timeout)
		defer cancel()
	}

	args := w.buildArgs(path, outputDir)
	w.logger.Info("running recognizer",
		logging.String("audio", path),
		logging.String("model", w.cfg.Model),
		logging.String("device", w.cfg.Device),
	)
	start := time.Now()
	if err := w.run(runCtx, w.cfg.Command, args...); err != nil {
		return Result{}, services.Wrap(services.ErrExternalTool, "transcribe", "run", "whisperx failed", err)
	}
	w.logger.Info("recognizer finished", logging.Duration("elapsed", time.Since(start)))

	baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	jsonPath := filepath.Join(outputDir, baseName+".json")
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return Result{}, services.Wrap(services.ErrExternalTool, "transcribe", "run", "read recognizer output", err)
	}

	result, err := ParsePayload(data)
	if err != nil {
		return Result{}, services.Wrap(services.ErrExternalTool, "transcribe", "run", "decode recognizer output", err)
	}
	return result, nil
}

func (w *WhisperX) buildArgs(source, outputDir string) []string {
	args := []string{
		source,
		"--model", w.cfg.Model,
		"--output_dir", outputDir,
		"--output_format", "json",
		"--device", w.cfg.Device,
	}
	if w.cfg.Device == "cpu" {
		args = append(args, "--compute_type", "float32")
	}
	if w.cfg.Language != "" {
		args = append(args, "--language", w.cfg.Language)
	}
	return args
}

func (w *WhisperX) run(ctx context.Context, name string, args ...string) error {
	if w.commandRunner != nil {
		return w.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
