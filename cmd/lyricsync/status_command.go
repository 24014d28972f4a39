package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyricsync/internal/deps"
	"lyricsync/internal/transcache"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report availability of external collaborators and the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				detail := status.Detail
				if detail == "" {
					detail = status.Description
				}
				rows = append(rows, []string{
					status.Name,
					status.Command,
					yesNo(status.Available),
					detail,
				})
			}
			headers := []string{"Dependency", "Command", "Available", "Detail"}
			fmt.Fprintln(out, renderTable(out, headers, rows, nil))

			if !cfg.Cache.Enabled {
				fmt.Fprintln(out, "Transcription cache: disabled")
				return nil
			}
			store, err := transcache.Open(cfg.Cache.Dir)
			if err != nil {
				fmt.Fprintf(out, "Transcription cache: unavailable (%v)\n", err)
				return nil
			}
			defer store.Close()
			count, err := store.Count(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "Transcription cache: unreadable (%v)\n", err)
				return nil
			}
			fmt.Fprintf(out, "Transcription cache: %d entries at %s\n", count, store.Path())
			return nil
		},
	}
}
