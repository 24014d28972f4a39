package config

const (
	defaultLogDir     = "~/.local/share/lyricsync/logs"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
	defaultCacheState = true

	defaultWhisperXCommand        = "whisperx"
	defaultWhisperXModel          = "small"
	defaultWhisperXDevice         = "cpu"
	defaultWhisperXTimeoutSeconds = 1800

	defaultMinGap            = 0.12
	defaultMinDuration       = 0.6
	defaultSearchWindowWords = 40
	defaultMinScore          = 0.55

	defaultWordsPerSecond     = 3.0
	defaultCharsPerSecond     = 14.0
	defaultPauseBetweenBlocks = 0.35
	defaultBlockDuration      = 3.0
	defaultMinBlockDuration   = 1.5
	defaultMaxBlockDuration   = 8.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Alignment: Alignment{
			MinGap:            defaultMinGap,
			MinDuration:       defaultMinDuration,
			SearchWindowWords: defaultSearchWindowWords,
			MinScore:          defaultMinScore,
		},
		Estimate: Estimate{
			WordsPerSecond:     defaultWordsPerSecond,
			CharsPerSecond:     defaultCharsPerSecond,
			PauseBetweenBlocks: defaultPauseBetweenBlocks,
			DefaultDuration:    defaultBlockDuration,
			MinBlockDuration:   defaultMinBlockDuration,
			MaxBlockDuration:   defaultMaxBlockDuration,
		},
		WhisperX: WhisperX{
			Command:        defaultWhisperXCommand,
			Model:          defaultWhisperXModel,
			Device:         defaultWhisperXDevice,
			TimeoutSeconds: defaultWhisperXTimeoutSeconds,
		},
		Cache: Cache{
			Enabled: defaultCacheState,
			Dir:     defaultCacheDir(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
