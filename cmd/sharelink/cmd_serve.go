package main

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/sharelink/internal/app"
	"github.com/MrSnakeDoc/sharelink/internal/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the local form server (configured through SHARELINK_* variables)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	return app.New(config.Load()).Run()
}
