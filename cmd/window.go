//go:build !nowindow

package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/window"
)

var windowScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the calculator in a desktop window",
	Run: func(cmd *cobra.Command, args []string) {
		eb := eventbus.NewEventBus()
		defer eb.Close()

		// The window drives the service directly, one Press per input.
		service := core.NewCalcService(eb)
		if err := window.Run(service, windowScale); err != nil {
			log.Fatalf("Window error: %v", err)
		}
	},
}

func init() {
	windowCmd.Flags().IntVar(&windowScale, "scale", 2, "window scale factor")
	rootCmd.AddCommand(windowCmd)
}
