package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sharelink",
		Short: "Share a puzzle result with many contacts through deep links",
		Long: `sharelink composes a message from a puzzle result and a custom note,
keeps a small in-memory contact list and builds per-contact deep links
for WhatsApp, SMS or Telegram.

Run without arguments to start the local form server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(newServeCmd(), newLinksCmd(), newVersionCmd())
	return root
}
