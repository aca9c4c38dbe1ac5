package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/output"
)

var reactCmd = &cobra.Command{
	Use:     "react <id> [reaction]",
	Short:   "Toggle a reaction on a chapter",
	Long:    `Toggle your reaction on a chapter. The default reaction is "love"; each chapter lists its own reaction ids.`,
	GroupID: "social",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		id := db.NormalizeEventID(args[0])
		reactionID := "love"
		if len(args) > 1 {
			reactionID = strings.ToLower(strings.TrimSpace(args[1]))
		}

		event, err := database.GetEvent(id)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		known := false
		for _, r := range event.Reactions {
			if r.ID == reactionID {
				known = true
				break
			}
		}
		if !known {
			var ids []string
			for _, r := range event.Reactions {
				ids = append(ids, fmt.Sprintf("%s (%s)", r.ID, r.Emoji))
			}
			output.Error("unknown reaction %q (valid: %s)", reactionID, strings.Join(ids, ", "))
			return fmt.Errorf("unknown reaction: %s", reactionID)
		}

		if err := database.ToggleReaction(id, reactionID); err != nil {
			output.Error("%v", err)
			return err
		}

		event, err = database.GetEvent(id)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		for _, r := range event.Reactions {
			if r.ID == reactionID {
				state := "off"
				if r.Reacted {
					state = "on"
				}
				output.Success("%s %s (%s, %d)", r.Emoji, event.Title, state, r.Count)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reactCmd)
}
