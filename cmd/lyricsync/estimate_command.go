package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyricsync/internal/align"
	"lyricsync/internal/config"
	"lyricsync/internal/srt"
)

func newEstimateCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var duration float64

	cmd := &cobra.Command{
		Use:   "estimate <lyrics>",
		Short: "Produce SRT timing from lyrics text alone, without audio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if duration < 0 {
				return fmt.Errorf("--duration must be >= 0, got %v", duration)
			}

			lines, err := loadLyrics(args[0])
			if err != nil {
				return err
			}

			result := align.New(alignOptions(cfg)).Align(lines, nil, duration, false)

			if outputPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), srt.Render(result.Cues))
				return nil
			}
			target, err := config.ExpandPath(outputPath)
			if err != nil {
				return err
			}
			if err := srt.WriteFile(target, result.Cues); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output SRT path (default: print to stdout)")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Total audio duration in seconds used for rescaling (0 = unknown)")
	return cmd
}
