package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/models"
	"github.com/marcus/retro/internal/output"
)

var importCmd = &cobra.Command{
	Use:     "import [file]",
	Short:   "Import chapters from JSON",
	Long:    `Import chapters from a JSON export, reading from a file or stdin. Existing chapters with the same id are replaced when --replace is given, skipped otherwise.`,
	GroupID: "system",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		var data []byte
		if len(args) == 0 {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			output.Error("%v", err)
			return err
		}

		var events []models.Event
		if err := json.Unmarshal(data, &events); err != nil {
			output.Error("invalid JSON: %v", err)
			return err
		}

		replace, _ := cmd.Flags().GetBool("replace")
		imported, skipped := 0, 0
		for i := range events {
			event := events[i]
			if event.Title == "" {
				output.Error("chapter %d has no title", i)
				return fmt.Errorf("chapter %d has no title", i)
			}

			if event.ID != "" {
				if _, err := database.GetEvent(event.ID); err == nil {
					if !replace {
						skipped++
						continue
					}
					if err := database.UpdateEvent(&event); err != nil {
						output.Error("%v", err)
						return err
					}
					imported++
					continue
				}
			}

			if err := database.CreateEvent(&event); err != nil {
				output.Error("%v", err)
				return err
			}
			imported++
		}

		if skipped > 0 {
			output.Success("imported %d chapters (%d skipped)", imported, skipped)
		} else {
			output.Success("imported %d chapters", imported)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("replace", false, "Replace existing chapters with the same id")
	rootCmd.AddCommand(importCmd)
}
