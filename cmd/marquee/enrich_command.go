package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/enrich"
)

func newEnrichCommand(ctx *commandContext) *cobra.Command {
	var (
		daysFlag  int
		movieFlag int64
		forceFlag bool
	)

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Fill metadata gaps from the external catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			return ctx.withWriterLock(func() error {
				st, err := ctx.openStore()
				if err != nil {
					return err
				}
				defer st.Close()

				enricher, err := enrich.New(cfg, st, logger)
				if err != nil {
					return err
				}
				stats, err := enricher.Run(cmd.Context(), enrich.RunOptions{
					Days:    daysFlag,
					MovieID: movieFlag,
					Force:   forceFlag,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"Processed %d movies: %d resolved, %d enriched, %d supplemented, %d skipped, %d failures\n",
					stats.Processed, stats.Resolved, stats.Enriched, stats.Supplement, stats.Skipped, stats.Failures)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&daysFlag, "days", 0, "Only consider movies created in the last N days (0 uses the configured default)")
	cmd.Flags().Int64Var(&movieFlag, "movie", 0, "Enrich a single movie by id")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Re-enrich movies even when no metadata gap is detected")
	return cmd
}
