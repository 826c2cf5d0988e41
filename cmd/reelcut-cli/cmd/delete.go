package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"reelcut/internal/application/commands"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <edit-id>",
	Short: "Delete a saved edit",
	Long: `Delete an edit from the database. Asks for confirmation unless
--force is given. Deleting an unknown id is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if !deleteForce {
			fmt.Printf("Delete edit %s? [y/N] ", id)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		result, err := commands.NewDeleteEditCommand(GetStore(), id).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)
}
