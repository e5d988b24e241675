package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCleanupCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove duplicate screenings and placeholder listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withWriterLock(func() error {
				st, err := ctx.openStore()
				if err != nil {
					return err
				}
				defer st.Close()

				duplicates, err := st.CleanDuplicateScreenings(cmd.Context())
				if err != nil {
					return err
				}
				movies, screenings, err := st.DeletePlaceholderMovies(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d duplicate screenings\n", duplicates)
				fmt.Fprintf(cmd.OutOrStdout(),
					"Removed %d placeholder movies and %d of their screenings\n", movies, screenings)
				return nil
			})
		},
	}
	return cmd
}
