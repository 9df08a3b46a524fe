package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/default-user/world-engine/internal/persist"
)

func newInfoCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the tick, seed, entity count, and fingerprint of a world directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := persist.LoadSnapshot(path)
			if err != nil {
				return errors.Wrap(errUnreadablePath, err.Error())
			}
			log, err := persist.LoadEvents(path)
			if err != nil {
				return errors.Wrap(errUnreadablePath, err.Error())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tick=%d seed=%d entities=%d fingerprint=%d pending_events=%d\n",
				snap.Tick, snap.Seed, len(snap.Entities), snap.Fingerprint, log.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "world directory containing snapshot.bin and events.log")
	cmd.MarkFlagRequired("path")
	return cmd
}
