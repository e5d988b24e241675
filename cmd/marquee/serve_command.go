package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"marquee/internal/api"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bindFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			bind := bindFlag
			if bind == "" {
				bind = cfg.Paths.APIBind
			}

			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			server, err := api.NewServer(bind, st, logger)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := server.Start(runCtx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Serving on %s (Ctrl+C to stop)\n", server.Addr())

			<-runCtx.Done()
			server.Stop()
			return nil
		},
	}

	cmd.Flags().StringVar(&bindFlag, "bind", "", "Bind address (overrides the configured api_bind)")
	return cmd
}
