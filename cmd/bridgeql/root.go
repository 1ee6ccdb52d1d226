package main

import (
	"github.com/spf13/cobra"

	"github.com/bridgeql-engine/bridgeql/mapping"
)

var rootCmd = &cobra.Command{
	Use:   "bridgeql",
	Short: "Convert " + mapping.SourceDialect + " SQL to " + mapping.TargetDialect + " SQL",
	Long: "bridgeql converts " + mapping.SourceDialect + " queries into " + mapping.TargetDialect +
		" SQL, applying construct rewrites and rule-driven identifier remapping.\n" +
		"Failed conversions are emitted as '-- ERROR: ' diagnostics, never as crashes.",
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(serveCmd)
}
