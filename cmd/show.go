package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/dateparse"
	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/output"
)

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Short:   "Show one chapter in full",
	Long:    `Show a chapter with its rendered description, gallery, reactions, and comments.`,
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

		event, err := database.GetEvent(db.NormalizeEventID(args[0]))
		if err != nil {
			output.Error("%v", err)
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return output.JSON(event)
		}

		fmt.Println(output.FormatEventShort(*event))
		fmt.Println()

		if event.Description != "" {
			rendered, err := output.RenderMarkdown(event.Description)
			if err != nil {
				// Markdown rendering is cosmetic; fall back to plain text.
				rendered = event.Description
			}
			fmt.Println(rendered)
			fmt.Println()
		}

		if len(event.Gallery) > 0 {
			fmt.Println("Gallery:")
			for _, url := range event.Gallery {
				marker := "  "
				if url == event.CoverURL {
					marker = "* "
				}
				fmt.Println("  " + marker + url)
			}
			fmt.Println()
		}

		var chips []string
		for _, r := range event.Reactions {
			chips = append(chips, fmt.Sprintf("%s %d", r.Emoji, r.Count))
		}
		if len(chips) > 0 {
			fmt.Println(strings.Join(chips, "  "))
		}

		if len(event.Comments) > 0 {
			fmt.Println()
			fmt.Printf("Comments (%d):\n", len(event.Comments))
			for _, c := range event.Comments {
				fmt.Printf("  %s (%s)\n", c.Author, dateparse.FormatDisplay(c.Date))
				fmt.Printf("    %s\n", c.Message)
			}
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "JSON output")
	rootCmd.AddCommand(showCmd)
}
