package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-megaman/levelsolver/solver"
)

func (a *app) solveCmd() *cobra.Command {
	var of outputFlags

	cmd := &cobra.Command{
		Use:   "solve SPEC...",
		Short: "Solve level specs",
		Long: `Solve prints one line per spec: the spec and its best move sequence, or
"unreachable" and one plus the furthest position reached.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf := new(bytes.Buffer)
			for _, spec := range args {
				res, err := solver.Solve(spec)
				if err != nil {
					return err
				}
				a.logger.Debug("level searched", "spec", spec, "result", res.Kind(), "states", res.Stats().States)

				line, err := formatResult(a.cfg.Format, res, of.stats)
				if err != nil {
					return err
				}
				fmt.Fprintln(buf, line)
			}
			return a.writeOutput(cmd.OutOrStdout(), of.path, buf)
		},
	}
	of.register(cmd.Flags())
	return cmd
}
