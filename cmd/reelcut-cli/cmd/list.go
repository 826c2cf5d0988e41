package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"reelcut/internal/application/commands"
)

var listVideoID string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved edits, newest first",
	Long: `List the edits saved by the reelcut editor.

Examples:
  reelcut-cli list
  reelcut-cli list --video vid-001`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		edits, err := commands.NewListEditsCommand(GetStore(), listVideoID).Execute(ctx)
		if err != nil {
			return err
		}

		for _, e := range edits {
			fmt.Printf("%s  %-30s  video %-12s  %s\n",
				e.ID, e.Title, e.VideoID, e.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listVideoID, "video", "", "only list edits of this source video")
	rootCmd.AddCommand(listCmd)
}
