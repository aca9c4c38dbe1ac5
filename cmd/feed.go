package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/config"
	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/models"
	"github.com/marcus/retro/internal/output"
	"github.com/marcus/retro/internal/seed"
	"github.com/marcus/retro/pkg/timeline"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse the timeline as a filterable feed",
	Long: `Launch the feed: chapters grouped by year with live filtering,
reactions, and comments. Reactions and comments persist immediately.

Key bindings:
  j/k            Move between chapters
  /              Search
  t/y/s/m        Cycle tag, year, sort, milestone filters
  x              Reset filters
  1/2/3          Toggle a reaction
  c              Toggle the comment panel
  Enter          Write a comment
  q              Quit`,
	GroupID: "view",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		demo, _ := cmd.Flags().GetBool("demo")

		var database *db.DB
		var events []models.Event
		var err error
		if demo {
			events = seed.DemoStory()
		} else {
			database, err = db.Open(baseDir)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer database.Close()

			events, err = database.ListEvents()
			if err != nil {
				output.Error("%v", err)
				return err
			}
		}

		cfg, err := config.Load(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		author := cfg.AuthorOrDefault()

		// The model renders from this slice; writing back into its
		// elements keeps the view in step with the database.
		byID := func(id string) int {
			for i := range events {
				if events[i].ID == id {
					return i
				}
			}
			return -1
		}

		opts := timeline.FeedOptions{
			Events: events,
			Author: author,
			OnReact: func(event models.Event, reactionID string) {
				if !demo {
					if err := database.ToggleReaction(event.ID, reactionID); err != nil {
						return
					}
				}
				if i := byID(event.ID); i >= 0 {
					reactions := events[i].Reactions
					if len(reactions) == 0 {
						reactions = models.DefaultReactions()
					}
					events[i].Reactions = models.ToggleReaction(reactions, reactionID)
				}
			},
			OnCommentAdd: func(event models.Event, message string) {
				comment := &models.Comment{Author: author, Message: message}
				if !demo {
					if err := database.AddComment(event.ID, comment); err != nil {
						return
					}
				}
				if i := byID(event.ID); i >= 0 {
					events[i].Comments = append(events[i].Comments, *comment)
				}
			},
		}

		model, err := timeline.New(timeline.Props{Variant: timeline.VariantFeed, Feed: &opts})
		if err != nil {
			output.Error("%v", err)
			return err
		}

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running feed: %w", err)
		}
		return nil
	},
}

func init() {
	feedCmd.Flags().Bool("demo", false, "Browse the demo story without a database")
	rootCmd.AddCommand(feedCmd)
}
