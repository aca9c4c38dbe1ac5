package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/config"
	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/models"
	"github.com/marcus/retro/internal/output"
	"github.com/marcus/retro/internal/timeline"
)

var listCmd = &cobra.Command{
	Use:     "list [query]",
	Aliases: []string{"ls"},
	Short:   "List chapters, filtered and grouped by year",
	GroupID: "core",
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

		filters, err := filtersFromFlags(cmd, args, baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		view := timeline.BuildView(events, filters)

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return output.JSON(view.Filtered)
		}

		if len(view.Filtered) == 0 {
			fmt.Println("No chapters found")
			return nil
		}

		mode := output.ModeShort
		if long, _ := cmd.Flags().GetBool("long"); long {
			mode = output.ModeLong
		}
		fmt.Println(output.FormatGroups(view.Groups, mode))
		return nil
	},
}

// filtersFromFlags builds a filter state from the list/feed flag set. The
// positional query and --query flag are interchangeable.
func filtersFromFlags(cmd *cobra.Command, args []string, baseDir string) (models.FilterState, error) {
	cfg, err := config.Load(baseDir)
	if err != nil {
		return models.FilterState{}, err
	}

	filters := models.DefaultFilters()
	filters.Sort = cfg.SortOrDefault()

	if len(args) > 0 {
		filters.Query = strings.TrimSpace(strings.Join(args, " "))
	}
	if q, _ := cmd.Flags().GetString("query"); q != "" {
		if filters.Query != "" {
			return models.FilterState{}, fmt.Errorf("cannot use both --query and a positional query")
		}
		filters.Query = q
	}
	if tag, _ := cmd.Flags().GetString("tag"); tag != "" {
		filters.Tag = tag
	}
	if year, _ := cmd.Flags().GetString("year"); year != "" {
		filters.Year = year
	}
	if cmd.Flags().Changed("sort") {
		s, _ := cmd.Flags().GetString("sort")
		switch s {
		case "asc":
			filters.Sort = models.SortAsc
		case "desc":
			filters.Sort = models.SortDesc
		default:
			return models.FilterState{}, fmt.Errorf("invalid sort %q (valid: asc, desc)", s)
		}
	}
	if milestones, _ := cmd.Flags().GetBool("milestones"); milestones {
		filters.OnlyMilestones = true
	}
	return filters, nil
}

// registerFilterFlags declares the shared filter flags on a command.
func registerFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "Search title, description, location, and tags")
	cmd.Flags().StringP("tag", "t", "", "Filter by tag")
	cmd.Flags().StringP("year", "y", "", "Filter by year")
	cmd.Flags().StringP("sort", "s", "", "Sort direction (asc, desc)")
	cmd.Flags().BoolP("milestones", "m", false, "Only milestones")
}

func init() {
	registerFilterFlags(listCmd)
	listCmd.Flags().BoolP("long", "L", false, "Long output with descriptions and social counts")
	listCmd.Flags().Bool("json", false, "JSON output")
	rootCmd.AddCommand(listCmd)
}
