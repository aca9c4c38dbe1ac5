package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/output"
)

var waitlistCmd = &cobra.Command{
	Use:     "waitlist",
	Short:   "List waitlist signups",
	Long:    `List the waitlist signups collected by the HTTP API, newest last.`,
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		entries, err := database.ListWaitlist()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return output.JSON(entries)
		}

		if len(entries) == 0 {
			fmt.Println("No signups yet")
			return nil
		}
		for _, entry := range entries {
			fmt.Printf("%s  %s  (%s, R$ %s)\n", entry.CreatedAt, entry.Email, entry.Source, entry.Promo)
		}
		return nil
	},
}

func init() {
	waitlistCmd.Flags().Bool("json", false, "JSON output")
	rootCmd.AddCommand(waitlistCmd)
}
