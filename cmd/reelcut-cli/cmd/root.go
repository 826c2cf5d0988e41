package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reelcut/internal/adapters/sqlite"
	"reelcut/internal/config"
	"reelcut/internal/ports"
)

var (
	dbPath string
	store  *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "reelcut-cli",
	Short: "CLI for managing saved reelcut edits",
	Long: `reelcut-cli is a command-line interface for the reelcut edit database.

It provides commands to list, inspect, export, and delete the timeline
edits saved by the reelcut editor, without opening the TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		store, err = sqlite.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening edit store: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DBPath(), "path to the edit database")
}

// GetStore returns the initialized edit store
func GetStore() ports.EditStore {
	return store
}
