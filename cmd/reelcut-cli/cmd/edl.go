package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reelcut/internal/application/commands"
)

var edlOutput string

var edlCmd = &cobra.Command{
	Use:   "edl <edit-id>",
	Short: "Generate a CMX 3600 EDL from a saved edit",
	Long: `Generate an EDL from the edit's video track, for handoff to a
conforming tool.

Examples:
  reelcut-cli edl 1f3a9c2e
  reelcut-cli edl 1f3a9c2e -o cut.edl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewGenerateEDLCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		if edlOutput == "" {
			fmt.Print(result.EDL)
			return nil
		}
		if err := os.WriteFile(edlOutput, []byte(result.EDL), 0o644); err != nil {
			return fmt.Errorf("writing EDL: %w", err)
		}
		fmt.Printf("Wrote %s\n", edlOutput)
		return nil
	},
}

func init() {
	edlCmd.Flags().StringVarP(&edlOutput, "output", "o", "", "write the EDL to a file instead of stdout")
	rootCmd.AddCommand(edlCmd)
}
