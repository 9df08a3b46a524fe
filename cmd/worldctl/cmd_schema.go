package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/default-user/world-engine/internal/worldschema"
)

func newSchemaCommand() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for a persisted type",
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload any
			switch kind {
			case "snapshot":
				payload = worldschema.SnapshotSchema()
			case "event":
				payload = worldschema.WorldEventSchema()
			default:
				return fmt.Errorf("unknown schema kind %q (want snapshot or event)", kind)
			}
			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", "snapshot", "schema to print: snapshot or event")
	return cmd
}
