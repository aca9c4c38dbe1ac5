package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/config"
	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/output"
	"github.com/marcus/retro/internal/seed"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Short:   "Initialize a new retro timeline",
	Long:    `Creates the local .retro directory, SQLite database, and default config.`,
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		if _, err := os.Stat(filepath.Join(baseDir, ".retro")); err == nil {
			output.Warning(".retro/ already exists")
			return nil
		}

		database, err := db.Init(baseDir)
		if err != nil {
			output.Error("failed to initialize database: %v", err)
			return err
		}
		defer database.Close()

		if author, _ := cmd.Flags().GetString("author"); author != "" {
			cfg, err := config.Load(baseDir)
			if err != nil {
				output.Error("failed to load config: %v", err)
				return err
			}
			cfg.Author = author
			if err := config.Save(baseDir, cfg); err != nil {
				output.Error("failed to save config: %v", err)
				return err
			}
		}

		fmt.Println("INITIALIZED .retro/")

		if demo, _ := cmd.Flags().GetBool("demo"); demo {
			for _, event := range seed.DemoStory() {
				e := event
				if err := database.CreateEvent(&e); err != nil {
					output.Error("failed to seed demo story: %v", err)
					return err
				}
			}
			output.Success("seeded %d demo chapters", len(seed.DemoStory()))
		}

		return nil
	},
}

func init() {
	initCmd.Flags().Bool("demo", false, "Seed the demo story")
	initCmd.Flags().String("author", "", "Display name used on comments")
	rootCmd.AddCommand(initCmd)
}
