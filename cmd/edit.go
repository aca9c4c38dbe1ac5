package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/output"
)

var editCmd = &cobra.Command{
	Use:     "edit <id>",
	Short:   "Edit a chapter",
	Long:    `Edit a chapter by id. With field flags the change is applied directly; without flags the interactive composer opens prefilled.`,
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

		if !anyEventFlagChanged(cmd) {
			edited, err := runComposer(event)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			if edited == nil {
				output.Info("cancelled")
				return nil
			}
			edited.ID = event.ID
			if err := database.UpdateEvent(edited); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("updated %s", edited.ID)
			return nil
		}

		if title, _ := cmd.Flags().GetString("title"); strings.TrimSpace(title) != "" {
			event.Title = strings.TrimSpace(title)
		}
		if err := applyEventFlags(cmd, event); err != nil {
			output.Error("%v", err)
			return err
		}
		if err := database.UpdateEvent(event); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("updated %s", event.ID)
		return nil
	},
}

func anyEventFlagChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"title", "date", "description", "location", "tags", "gallery", "cover", "milestone"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func init() {
	editCmd.Flags().String("title", "", "New chapter title")
	registerEventFlags(editCmd)
	rootCmd.AddCommand(editCmd)
}
