package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/config"
	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/models"
	"github.com/marcus/retro/internal/output"
)

var commentCmd = &cobra.Command{
	Use:     "comment <id> <message>",
	Short:   "Comment on a chapter",
	Long:    `Add a comment to a chapter. The author defaults to the configured name.`,
	GroupID: "social",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		id := db.NormalizeEventID(args[0])
		message := strings.TrimSpace(strings.Join(args[1:], " "))
		if message == "" {
			output.Error("comment message is required")
			return fmt.Errorf("comment message is required")
		}

		cfg, err := config.Load(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		author := cfg.AuthorOrDefault()
		if a, _ := cmd.Flags().GetString("author"); a != "" {
			author = a
		}

		comment := &models.Comment{Author: author, Message: message}
		if err := database.AddComment(id, comment); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("commented on %s as %s", id, author)
		return nil
	},
}

func init() {
	commentCmd.Flags().String("author", "", "Override the comment author")
	rootCmd.AddCommand(commentCmd)
}
