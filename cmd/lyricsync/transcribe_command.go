package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lyricsync/internal/config"
	"lyricsync/internal/logging"
	"lyricsync/internal/srt"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var noCache bool
	var rawOutput bool

	cmd := &cobra.Command{
		Use:   "transcribe <audio>",
		Short: "Run speech recognition and print the recognized words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.ensureLogger(), "transcribe")

			audioPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			engine := newRecognizer(cfg, logger)
			result := obtainTranscription(cmd.Context(), cfg, logger, engine, audioPath, noCache)
			out := cmd.OutOrStdout()
			if len(result.Segments) == 0 {
				fmt.Fprintf(out, "No transcription produced (is %s installed?)\n", engine.Name())
				return nil
			}

			if rawOutput {
				out.Write(result.Raw)
				fmt.Fprintln(out)
				return nil
			}

			if result.Language != "" {
				fmt.Fprintf(out, "Language: %s\n", result.Language)
			}
			for _, segment := range result.Segments {
				fmt.Fprintf(out, "[%s - %s] %s\n",
					srt.FormatTimestamp(segment.Start),
					srt.FormatTimestamp(segment.End),
					segment.Text,
				)
				for _, word := range segment.Words {
					confidence := "-"
					if word.HasConfidence {
						confidence = strconv.FormatFloat(word.Confidence, 'f', 2, 64)
					}
					fmt.Fprintf(out, "  %8.3f %8.3f %5s %s\n", word.Start, word.End, confidence, word.Text)
				}
			}
			fmt.Fprintf(out, "%d segments, %d words\n", len(result.Segments), len(result.Words()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the transcription cache for this run")
	cmd.Flags().BoolVar(&rawOutput, "json", false, "Print the raw recognizer JSON payload")
	return cmd
}
