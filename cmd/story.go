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

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Present the timeline as a scroll-synced story",
	Long: `Launch the story presentation: a horizontal track of chapter cards with
a single active step that follows scrolling. Narrow terminals fall back
to a vertical accordion.

Key bindings:
  ←/→ h/l        Previous/next chapter
  [/]            Scroll the track
  Enter          Center the active chapter (toggle entry when narrow)
  Home/End g/G   First/last chapter
  q/Esc          Quit`,
	GroupID: "view",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		var events []models.Event
		if demo, _ := cmd.Flags().GetBool("demo"); demo {
			events = seed.DemoStory()
		} else {
			database, err := db.Open(baseDir)
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

		opts := timeline.StoryOptions{
			Events:          events,
			Density:         timeline.Density(cfg.DensityOrDefault()),
			SpecialKeywords: cfg.SpecialKeywords,
			ShowStartMarker: true,
			BreakpointCols:  cfg.BreakpointOrDefault(),
		}
		if density, _ := cmd.Flags().GetString("density"); density != "" {
			opts.Density = timeline.Density(density)
		}

		model, err := timeline.New(timeline.Props{Variant: timeline.VariantStory, Story: &opts})
		if err != nil {
			output.Error("%v", err)
			return err
		}

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running story: %w", err)
		}
		return nil
	},
}

func init() {
	storyCmd.Flags().String("density", "", "Card density (compact, comfortable)")
	storyCmd.Flags().Bool("demo", false, "Present the demo story without a database")
	rootCmd.AddCommand(storyCmd)
}
