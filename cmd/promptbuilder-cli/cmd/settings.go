package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"promptbuilder/internal/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the prompt builder settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := readSettings()
		if err != nil {
			return err
		}
		fmt.Printf("auto-generate:           %t\n", settings.AutoGenerate)
		fmt.Printf("auto-generate-threshold: %d\n", settings.AutoGenerateThreshold)
		fmt.Printf("danbooru-links:          %t\n", settings.DanbooruLinks)
		fmt.Printf("debug:                   %t\n", settings.DebugMode)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Change one setting",
	Long: `Change one setting. Names: auto-generate, auto-generate-threshold,
danbooru-links, debug.

Examples:
  promptbuilder-cli settings set auto-generate true
  promptbuilder-cli settings set auto-generate-threshold 5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := readSettings()
		if err != nil {
			return err
		}
		settings, err = applySetting(settings, args[0], args[1])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		raw, err := settings.Normalize().Encode()
		if err != nil {
			return err
		}
		if err := store.Set(domain.SettingsKey, raw); err != nil {
			return err
		}
		fmt.Printf("Set %s to %s\n", args[0], args[1])
		return nil
	},
}

func readSettings() (domain.Settings, error) {
	store, err := openStore()
	if err != nil {
		return domain.Settings{}, err
	}
	defer store.Close()

	raw, ok, err := store.Get(domain.SettingsKey)
	if err != nil {
		return domain.Settings{}, err
	}
	if !ok {
		return domain.DefaultSettings(), nil
	}
	settings, err := domain.ParseSettings(raw)
	if err != nil {
		log.Printf("promptbuilder: %v, using defaults", err)
	}
	return settings, nil
}

// applySetting parses value into the named field
func applySetting(s domain.Settings, name, value string) (domain.Settings, error) {
	switch name {
	case "auto-generate-threshold":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return s, fmt.Errorf("auto-generate-threshold must be a positive integer, got: %s", value)
		}
		s.AutoGenerateThreshold = n
		return s, nil
	case "auto-generate", "danbooru-links", "debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return s, fmt.Errorf("%s must be true or false, got: %s", name, value)
		}
		switch name {
		case "auto-generate":
			s.AutoGenerate = b
		case "danbooru-links":
			s.DanbooruLinks = b
		default:
			s.DebugMode = b
		}
		return s, nil
	default:
		return s, fmt.Errorf("unknown setting: %s", name)
	}
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
