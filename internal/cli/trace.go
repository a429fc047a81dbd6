package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-megaman/levelsolver/solver"
)

func (a *app) traceCmd() *cobra.Command {
	var intervalMS int

	cmd := &cobra.Command{
		Use:   "trace SPEC",
		Short: "Play the best move sequence tick by tick",
		Long: `Trace draws the course once per tick after the move of that tick:
'@' is the agent, '#' a checkpoint, '=' an open and '_' a closed platform.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := solver.Solve(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !res.Solved() {
				fmt.Fprintln(out, res)
				return nil
			}

			if !cmd.Flags().Changed("interval") {
				intervalMS = a.cfg.IntervalMS
			}
			interval := time.Duration(intervalMS) * time.Millisecond

			moves, _ := res.Moves()
			ctx := cmd.Context()
			for _, f := range solver.Playback(res.Course(), moves) {
				line := fmt.Sprintf("%4d %-2s |%s|", f.Tick, f.Move, f)
				if f.Final {
					line += " goal"
				}
				fmt.Fprintln(out, line)

				if interval > 0 && !f.Final {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case <-time.After(interval):
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&intervalMS, "interval", 0, "delay between ticks in milliseconds (default from config)")
	return cmd
}
