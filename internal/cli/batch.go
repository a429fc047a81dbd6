package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-megaman/levelsolver/solver"
)

func (a *app) batchCmd() *cobra.Command {
	var (
		of      outputFlags
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Solve one spec per line concurrently",
		Long: `Batch reads one spec per line from FILE, or stdin if FILE is "-" or
missing. Blank lines and lines starting with '#' are skipped. Results are
printed in input order followed by a summary line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				path := args[0]
				if !filepath.IsAbs(path) {
					path = filepath.Join(a.workDir, path)
				}
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			specs, err := readSpecs(r)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}

			outcomes, sum := solver.SolveAll(cmd.Context(), specs,
				solver.WithWorkers(workers),
				solver.WithLogger(a.logger))

			buf := new(bytes.Buffer)
			for _, o := range outcomes {
				if o.Err != nil {
					a.logger.Warn("level not solved", "spec", o.Spec, "err", o.Err)
					fmt.Fprintf(buf, "%s\terror: %v\n", o.Spec, o.Err)
					continue
				}
				line, err := formatResult(a.cfg.Format, o.Result, of.stats)
				if err != nil {
					return err
				}
				fmt.Fprintln(buf, line)
			}
			fmt.Fprintf(buf, "# solved=%d unreachable=%d invalid=%d canceled=%d\n",
				sum.Solved, sum.Unreachable, sum.Invalid, sum.Canceled)

			if err := a.writeOutput(cmd.OutOrStdout(), of.path, buf); err != nil {
				return err
			}
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			if sum.Invalid > 0 {
				return errInvalidSpecs
			}
			return nil
		},
	}
	of.register(cmd.Flags())
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of concurrent solves (default from config)")
	return cmd
}

func readSpecs(r io.Reader) ([]string, error) {
	var specs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		specs = append(specs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return specs, nil
}
