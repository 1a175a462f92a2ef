package main

import (
	"github.com/spf13/cobra"

	"github.com/firstengineering/website/pkg/config"
)

const serviceName = "website"

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           serviceName,
		Short:         "3.1ST Engineering website backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.LoadEnv(envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load before reading configuration (default .env when present)")

	root.AddCommand(newServeCmd(), newMailCmd())
	return root
}
