package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"reelcut/internal/application/commands"
	"reelcut/internal/domain"
	"reelcut/internal/ports"
)

var (
	showJSON bool
	showCopy bool
)

var showCmd = &cobra.Command{
	Use:   "show <edit-id>",
	Short: "Show a saved edit's timeline",
	Long: `Show the tracks, clips, trim points and positions of a saved edit.

Examples:
  reelcut-cli show 1f3a9c2e
  reelcut-cli show 1f3a9c2e --json
  reelcut-cli show 1f3a9c2e --json --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewShowEditCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		var out string
		if showJSON {
			raw, err := json.MarshalIndent(result.Project, "", "  ")
			if err != nil {
				return err
			}
			out = string(raw)
		} else {
			out = formatEdit(result.Record, result.Project)
		}

		if showCopy {
			if err := clipboard.WriteAll(out); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			fmt.Println("Copied to clipboard.")
			return nil
		}

		fmt.Print(out)
		return nil
	},
}

func formatEdit(rec ports.EditRecord, p *domain.Project) string {
	out := fmt.Sprintf("%s  %s\n", rec.ID, p.Title)
	out += fmt.Sprintf("duration %.1fs  %dx%d @ %.4g fps  updated %s\n\n",
		p.Duration, p.VideoWidth, p.VideoHeight, p.Framerate,
		rec.UpdatedAt.Format("2006-01-02 15:04"))
	for _, track := range p.Tracks {
		out += fmt.Sprintf("[%s] %s\n", track.Type, track.Name)
		for _, clip := range track.Clips {
			state := ""
			if clip.Muted {
				state = "  muted"
			}
			out += fmt.Sprintf("  %s  src %.1f-%.1f  at %.1f  vol %.0f%%%s\n",
				clip.VideoID, clip.StartTime, clip.EndTime, clip.Position,
				clip.Volume*100, state)
		}
	}
	return out
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the raw project JSON")
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "copy the output to the clipboard")
	rootCmd.AddCommand(showCmd)
}
