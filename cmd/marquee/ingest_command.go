package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/ingest"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var cinemaFlag string

	cmd := &cobra.Command{
		Use:   "ingest <export.json>",
		Short: "Import a scraped cinema export into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			cinema, decode, err := resolveSource(cinemaFlag)
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open export: %w", err)
			}
			defer file.Close()

			movies, err := decode(file)
			if err != nil {
				return err
			}

			return ctx.withWriterLock(func() error {
				st, err := ctx.openStore()
				if err != nil {
					return err
				}
				defer st.Close()

				importer, err := ingest.NewImporter(st, logger)
				if err != nil {
					return err
				}
				stats, err := importer.ImportBatch(cmd.Context(), cinema, movies)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"Imported %d movies (%d new) and %d screenings for %s\n",
					stats.Movies, stats.Created, stats.Screenings, cinema)
				if skipped := stats.SkippedMovies + stats.SkippedShowtimes; skipped > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d malformed entries\n", skipped)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&cinemaFlag, "cinema", "", "Source cinema: metrograph or filmforum")
	_ = cmd.MarkFlagRequired("cinema")
	return cmd
}

func resolveSource(cinema string) (string, func(f *os.File) ([]ingest.RawMovie, error), error) {
	switch strings.ToLower(strings.TrimSpace(cinema)) {
	case "metrograph":
		return ingest.CinemaMetrograph, func(f *os.File) ([]ingest.RawMovie, error) {
			return ingest.DecodeMetrograph(f)
		}, nil
	case "filmforum", "film-forum":
		return ingest.CinemaFilmForum, func(f *os.File) ([]ingest.RawMovie, error) {
			return ingest.DecodeFilmForum(f)
		}, nil
	default:
		return "", nil, fmt.Errorf("unknown cinema %q (expected metrograph or filmforum)", cinema)
	}
}
