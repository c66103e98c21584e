package cmd

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriCalc/internal/app"
)

var debugLog bool

var rootCmd = &cobra.Command{
	Use:   "roricalc",
	Short: "A small integer calculator",
	Long:  `RoriCalc is a keypad calculator for the terminal and the desktop.`,
	Run: func(cmd *cobra.Command, args []string) {
		// stdout belongs to the UI while it runs
		if debugLog {
			f, err := tea.LogToFile("roricalc-debug.log", "roricalc")
			if err != nil {
				log.Fatalf("Failed to open debug log: %v", err)
			}
			defer f.Close()
		} else {
			log.SetOutput(io.Discard)
		}

		application, err := app.NewApplication()
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "write logs to roricalc-debug.log")
}
