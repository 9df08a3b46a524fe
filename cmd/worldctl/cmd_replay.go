package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/default-user/world-engine/internal/persist"
)

func newReplayCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Reconstruct a world from its snapshot and pending event log and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := persist.LoadSnapshot(path)
			if err != nil {
				return errors.Wrap(errUnreadablePath, err.Error())
			}
			log, err := persist.LoadEvents(path)
			if err != nil {
				return errors.Wrap(errUnreadablePath, err.Error())
			}

			world := snap.Restore()
			if err := world.Replay(log.All()); err != nil {
				return errors.Wrap(errIntegrityFailure, err.Error())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "reconstructed tick=%d seed=%d entities=%d\n", world.Tick(), world.Seed(), world.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "world directory containing snapshot.bin and events.log")
	cmd.MarkFlagRequired("path")
	return cmd
}
