package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/output"
)

var exportCmd = &cobra.Command{
	Use:     "export [file]",
	Short:   "Export the timeline as JSON",
	Long:    `Export all chapters, reactions, and comments as JSON to a file or stdout.`,
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

		events, err := database.ListEvents()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		data, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			output.Error("%v", err)
			return err
		}
		data = append(data, '\n')

		if len(args) == 0 {
			fmt.Print(string(data))
			return nil
		}

		if err := os.WriteFile(args[0], data, 0644); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("exported %d chapters to %s", len(events), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
