package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/gosuri/uilive"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/eventbus"
)

var (
	keysFinal bool
	keysLive  bool
)

var keysCmd = &cobra.Command{
	Use:   "keys <sequence>",
	Short: "Press a sequence of keys and print the display",
	Long: `Press each character of the sequence as a calculator key and print the
display after every key. Keys: 0-9, + - * x /, = and c (clear).`,
	Example: `  roricalc keys "2*3+4="
  roricalc keys --final "9/0="`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if keysLive {
			writer := uilive.New()
			writer.Out = out
			writer.Start()
			defer writer.Stop()
			return runKeys(writer, args[0], false, func() {
				writer.Flush()
				time.Sleep(100 * time.Millisecond)
			})
		}
		return runKeys(out, args[0], keysFinal, nil)
	},
}

// runKeys feeds keys through a fresh calculator service. Unknown characters
// abort the run before any key is pressed.
func runKeys(out io.Writer, sequence string, final bool, afterKey func()) error {
	for i, r := range []rune(sequence) {
		if _, ok := core.ParseKey(r); !ok {
			return fmt.Errorf("unknown key %q at position %d", r, i+1)
		}
	}

	eb := eventbus.NewEventBus()
	defer eb.Close()
	service := core.NewCalcService(eb)

	var snap core.Snapshot
	for _, r := range sequence {
		var err error
		snap, err = service.Press(r)
		if err != nil {
			return err
		}
		if !final {
			fmt.Fprintf(out, "%c  %s\n", r, formatSnapshot(snap))
			if afterKey != nil {
				afterKey()
			}
		}
	}
	if final {
		fmt.Fprintln(out, snap.Display)
	}
	return nil
}

func formatSnapshot(snap core.Snapshot) string {
	if snap.HasPending {
		return fmt.Sprintf("%d %s", snap.Display, snap.Pending)
	}
	return fmt.Sprintf("%d", snap.Display)
}

func init() {
	keysCmd.Flags().BoolVar(&keysFinal, "final", false, "print only the final display")
	keysCmd.Flags().BoolVar(&keysLive, "live", false, "redraw a single line per key")
	rootCmd.AddCommand(keysCmd)
}
