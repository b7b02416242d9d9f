package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/coursesearch/internal/bootstrap"
	"github.com/yigit/coursesearch/internal/pkg/logger"
	"github.com/yigit/coursesearch/internal/server"
)

func newRootCmd() *cobra.Command {
	opts := bootstrap.Options{}

	cmd := &cobra.Command{
		Use:           "coursesearch",
		Short:         "Serve the course search form endpoint",
		Long:          "Serves POST /SearchServlet, which lists the courses offered in a semester as HTML.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(opts)
			if err != nil {
				return err
			}
			// Blocks until shutdown signal
			return srv.Run()
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "configs/config.yaml", "path to the YAML config file")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", ".env", "optional file of KEY=VALUE pairs loaded into the environment")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
	logger.Info().Msg("Application finished gracefully.")
}
