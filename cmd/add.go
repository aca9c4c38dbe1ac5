package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/dateparse"
	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/models"
	"github.com/marcus/retro/internal/output"
	"github.com/marcus/retro/pkg/timeline"
)

var addCmd = &cobra.Command{
	Use:     "add [title]",
	Aliases: []string{"create", "new"},
	Short:   "Add a new chapter to the timeline",
	Long:    `Add a new chapter with optional flags for date, location, tags, and gallery. Run without a title for the interactive composer.`,
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		// No title means the interactive composer.
		if len(args) == 0 {
			event, err := runComposer(nil)
			if err != nil {
				return err
			}
			if event == nil {
				output.Info("cancelled")
				return nil
			}
			if err := database.CreateEvent(event); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("added %s: %s", event.ID, event.Title)
			return nil
		}

		event := &models.Event{Title: strings.TrimSpace(args[0])}
		if event.Title == "" {
			output.Error("title is required")
			return fmt.Errorf("title is required")
		}

		if err := applyEventFlags(cmd, event); err != nil {
			output.Error("%v", err)
			return err
		}

		if err := database.CreateEvent(event); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("added %s: %s", event.ID, event.Title)
		return nil
	},
}

// applyEventFlags copies shared chapter flags onto an event. The date flag
// accepts the composer's flexible forms ("hoje", "-2w", "sexta").
func applyEventFlags(cmd *cobra.Command, event *models.Event) error {
	if cmd.Flags().Changed("date") {
		raw, _ := cmd.Flags().GetString("date")
		resolved, err := dateparse.ParseInput(raw)
		if err != nil {
			return err
		}
		event.Date = resolved
	}
	if cmd.Flags().Changed("description") {
		event.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("location") {
		event.Location, _ = cmd.Flags().GetString("location")
	}
	if cmd.Flags().Changed("tags") {
		raw, _ := cmd.Flags().GetString("tags")
		event.Tags = splitList(raw)
	}
	if cmd.Flags().Changed("gallery") {
		raw, _ := cmd.Flags().GetString("gallery")
		event.Gallery = splitList(raw)
		if len(event.Gallery) > 0 && event.CoverURL == "" {
			event.CoverURL = event.Gallery[0]
		}
	}
	if cmd.Flags().Changed("cover") {
		event.CoverURL, _ = cmd.Flags().GetString("cover")
	}
	if cmd.Flags().Changed("milestone") {
		event.IsMilestone, _ = cmd.Flags().GetBool("milestone")
	}
	return nil
}

// registerEventFlags declares the shared chapter flags on a command.
func registerEventFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("date", "D", "", "Chapter date (2024-02-14, hoje, ontem, -2w, sexta)")
	cmd.Flags().StringP("description", "d", "", "Chapter description")
	cmd.Flags().StringP("location", "l", "", "Where it happened")
	cmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	cmd.Flags().StringP("gallery", "g", "", "Comma-separated photo URLs")
	cmd.Flags().String("cover", "", "Cover photo URL")
	cmd.Flags().BoolP("milestone", "m", false, "Mark as a milestone")
}

// runComposer opens the interactive form, prefilled from the given event
// when editing. A nil event with nil error means the user cancelled.
func runComposer(existing *models.Event) (*models.Event, error) {
	var fs *timeline.FormState
	if existing != nil {
		fs = timeline.NewFormStateForEdit(existing)
	} else {
		fs = timeline.NewFormState(timeline.FormModeCreate)
	}
	if err := fs.Form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}
	event := fs.ToEvent()
	if event.Title == "" {
		return nil, nil
	}
	if existing != nil {
		event.Reactions = existing.Reactions
		event.Comments = existing.Comments
	}
	return event, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func init() {
	registerEventFlags(addCmd)
	rootCmd.AddCommand(addCmd)
}
