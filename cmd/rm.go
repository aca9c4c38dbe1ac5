package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/output"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "remove"},
	Short:   "Remove a chapter",
	Long:    `Remove a chapter and its reactions and comments. Asks for confirmation unless --force is given.`,
	GroupID: "core",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		id := db.NormalizeEventID(args[0])
		event, err := database.GetEvent(id)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Remove %q (%s)? [y/N] ", event.Title, event.ID)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				output.Info("cancelled")
				return nil
			}
		}

		if err := database.DeleteEvent(id); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("removed %s", id)
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
