// Command worldctl inspects and verifies a persisted world directory
// (snapshot.bin + events.log) and generates tooling artifacts — JSON
// Schema documents — from the simulation's own types rather than hand
// authoring them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "worldctl",
		Short:         "Inspect and verify persisted world-engine directories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newInfoCommand())
	root.AddCommand(newReplayCommand())
	root.AddCommand(newVerifyCommand())
	root.AddCommand(newSchemaCommand())
	return root
}
