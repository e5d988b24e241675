package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database counts per cinema",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			stats, err := st.ReadStats(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(stats.PerCinema)+1)
			for _, entry := range stats.PerCinema {
				rows = append(rows, []string{
					entry.Cinema,
					strconv.Itoa(entry.Movies),
					strconv.Itoa(entry.Screenings),
				})
			}
			rows = append(rows, []string{
				"Total",
				strconv.Itoa(stats.Movies),
				strconv.Itoa(stats.Screenings),
			})

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Cinema", "Movies", "Screenings"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			fmt.Fprintf(cmd.OutOrStdout(), "Movies missing catalog id: %d\n", stats.MissingTMDBID)
			fmt.Fprintf(cmd.OutOrStdout(), "Movies missing localized synopsis: %d\n", stats.MissingOverviewZH)
			return nil
		},
	}
	return cmd
}
