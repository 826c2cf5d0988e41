package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"reelcut/internal/adapters/preview"
	"reelcut/internal/adapters/render"
	"reelcut/internal/application/commands"
	"reelcut/internal/config"
	"reelcut/internal/editor"
	"reelcut/internal/ports"
)

var (
	exportRenderURL string
	exportWait      bool
	exportOpen      bool
)

var exportCmd = &cobra.Command{
	Use:   "export <edit-id>",
	Short: "Submit a saved edit to the render pipeline",
	Long: `Submit a saved edit for rendering and print the job id.

With --wait, poll the job until it completes or fails. With --open, open
the finished render in the system player.

Examples:
  reelcut-cli export 1f3a9c2e
  reelcut-cli export 1f3a9c2e --wait --open`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client := render.NewHTTPClient(exportRenderURL, nil)
		result, err := commands.NewSubmitExportCommand(GetStore(), client, args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)

		if !exportWait {
			return nil
		}

		tracker := editor.NewJobTracker(client, nil)
		job, err := tracker.Wait(ctx, result.JobID, editor.DefaultPollInterval)
		if err != nil {
			return fmt.Errorf("waiting for job: %w", err)
		}
		switch job.Status {
		case ports.JobStatusCompleted:
			fmt.Printf("Completed: %s\n", job.OutputURL)
			return maybeOpen(job.OutputURL)
		case ports.JobStatusFailed:
			return fmt.Errorf("render failed: %s", job.Error)
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <job-id>",
	Short: "Check the status of an export job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := render.NewHTTPClient(exportRenderURL, nil)
		job, err := client.GetJob(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Job %s: %s", job.ID, job.Status)
		if job.Status == ports.JobStatusRunning {
			fmt.Printf(" (%d%%)", job.Progress)
		}
		fmt.Println()
		if job.Error != "" {
			fmt.Printf("Error: %s\n", job.Error)
		}
		if job.OutputURL != "" {
			fmt.Printf("Output: %s\n", job.OutputURL)
			return maybeOpen(job.OutputURL)
		}
		return nil
	},
}

func maybeOpen(outputURL string) error {
	if !exportOpen || outputURL == "" {
		return nil
	}
	if err := preview.NewOpener().OpenURL(outputURL); err != nil {
		return fmt.Errorf("opening render: %w", err)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportRenderURL, "render", config.RenderURL(), "render service base URL")
	exportCmd.Flags().BoolVar(&exportWait, "wait", false, "poll until the job reaches a terminal state")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false, "open the finished render in the system player")
	statusCmd.Flags().StringVar(&exportRenderURL, "render", config.RenderURL(), "render service base URL")
	statusCmd.Flags().BoolVar(&exportOpen, "open", false, "open the finished render in the system player")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statusCmd)
}
