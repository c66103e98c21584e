package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriCalc/internal/config"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage display themes",
	Long:  `List, show and switch the colour themes stored in the config file.`,
}

var listThemesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all themes",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Active Theme: %s\n\n", cfg.ActiveTheme)
		fmt.Fprintln(out, "Available Themes:")
		for _, name := range cfg.ThemeNames() {
			marker := ""
			if name == cfg.ActiveTheme {
				marker = " (active)"
			}
			fmt.Fprintf(out, "  %s%s\n", name, marker)
		}
	},
}

var showThemeCmd = &cobra.Command{
	Use:   "show [theme-name]",
	Short: "Show theme colours",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		name := cfg.ActiveTheme
		if len(args) > 0 {
			name = args[0]
		}
		theme, exists := cfg.Themes[name]
		if !exists {
			log.Fatalf("Theme '%s' does not exist", name)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Theme: %s\n", name)
		fmt.Fprintf(out, "Accent: %s\n", theme.Accent)
		fmt.Fprintf(out, "Display: %s\n", theme.Display)
		fmt.Fprintf(out, "Muted: %s\n", theme.Muted)
	},
}

var setThemeCmd = &cobra.Command{
	Use:   "set [theme-name]",
	Short: "Switch to a different theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var name string
		if len(args) > 0 {
			name = args[0]
		} else {
			// Let user select from existing themes
			prompt := promptui.Select{
				Label: "Select theme",
				Items: cfg.ThemeNames(),
			}
			_, name, err = prompt.Run()
			if err != nil {
				log.Fatalf("Selection failed: %v", err)
			}
		}

		if err := cfg.SetActiveTheme(name); err != nil {
			log.Fatalf("%v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Switched to theme '%s'\n", name)
	},
}

func init() {
	themeCmd.AddCommand(listThemesCmd)
	themeCmd.AddCommand(showThemeCmd)
	themeCmd.AddCommand(setThemeCmd)
	rootCmd.AddCommand(themeCmd)
}
