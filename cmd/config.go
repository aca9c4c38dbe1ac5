package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/config"
	"github.com/marcus/retro/internal/models"
	"github.com/marcus/retro/internal/output"
)

// validConfigKeys lists the supported config keys for set/get.
var validConfigKeys = []string{
	"author",
	"density",
	"breakpoint",
	"sort",
	"keywords",
}

func isValidConfigKey(key string) bool {
	for _, k := range validConfigKeys {
		if k == key {
			return true
		}
	}
	return false
}

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage retro configuration",
	GroupID: "system",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]

		if !isValidConfigKey(key) {
			output.Error("unknown config key: %s", key)
			fmt.Println("Valid keys:", strings.Join(validConfigKeys, ", "))
			return fmt.Errorf("unknown config key: %s", key)
		}

		baseDir := getBaseDir()
		cfg, err := config.Load(baseDir)
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}

		switch key {
		case "author":
			cfg.Author = val
		case "density":
			if val != "compact" && val != "comfortable" {
				output.Error("invalid density %q (valid: compact, comfortable)", val)
				return fmt.Errorf("invalid density: %s", val)
			}
			cfg.Density = val
		case "breakpoint":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				output.Error("invalid breakpoint %q (positive column count)", val)
				return fmt.Errorf("invalid breakpoint: %s", val)
			}
			cfg.BreakpointCols = n
		case "sort":
			if val != string(models.SortAsc) && val != string(models.SortDesc) {
				output.Error("invalid sort %q (valid: asc, desc)", val)
				return fmt.Errorf("invalid sort: %s", val)
			}
			cfg.DefaultSort = models.Sort(val)
		case "keywords":
			cfg.SpecialKeywords = splitList(val)
		}

		if err := config.Save(baseDir, cfg); err != nil {
			output.Error("save config: %v", err)
			return err
		}
		output.Success("%s = %s", key, val)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show config values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()
		cfg, err := config.Load(baseDir)
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}

		values := map[string]string{
			"author":     cfg.AuthorOrDefault(),
			"density":    cfg.DensityOrDefault(),
			"breakpoint": strconv.Itoa(cfg.BreakpointOrDefault()),
			"sort":       string(cfg.SortOrDefault()),
			"keywords":   strings.Join(cfg.SpecialKeywords, ", "),
		}

		if len(args) == 1 {
			key := args[0]
			if !isValidConfigKey(key) {
				output.Error("unknown config key: %s", key)
				return fmt.Errorf("unknown config key: %s", key)
			}
			fmt.Println(values[key])
			return nil
		}

		for _, key := range validConfigKeys {
			fmt.Printf("%s = %s\n", key, values[key])
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}
