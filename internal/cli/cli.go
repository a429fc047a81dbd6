// Package cli implements the levelsolver command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-megaman/levelsolver/internal/config"
)

// errInvalidSpecs signals that some input spec was invalid; details were
// already reported.
var errInvalidSpecs = errors.New("invalid level specs in input")

// app is the state shared by all commands of one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	workDir    string
	configPath string
	format     string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
}

// Run executes the command line args (args[0] is the program name) and
// returns the process exit code.
func Run(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string) int {
	a := &app{in: in, out: out, errOut: errOut}
	root := a.rootCmd()
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	cmdArgs := []string{}
	if len(args) > 1 {
		cmdArgs = args[1:]
	}
	root.SetArgs(cmdArgs)

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errInvalidSpecs) {
			fmt.Fprintln(errOut, "error:", err)
		}
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "levelsolver",
		Short: "Find the best way across timed obstacle courses",
		Long: `levelsolver searches level specs such as "x1.2x" for the shortest
sequence of per-tick moves from the first to the last checkpoint.

A spec starts and ends with 'x'. 'x' and '0' are solid ground, '.' is a gap
and a digit n in 1..5 is a platform that can be landed on at tick t when
(t+1) mod (n+1) == 0.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.workDir, "cwd", "C", "", "working directory used to look up "+config.FileName)
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (JSONC)")
	pf.StringVarP(&a.format, "format", "f", "", "output format: tokens, moves or json")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		a.solveCmd(),
		a.checkCmd(),
		a.traceCmd(),
		a.batchCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	workDir := a.workDir
	if workDir == "" {
		var err error
		if workDir, err = os.Getwd(); err != nil {
			return fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg, err := config.Load(workDir, a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = a.format
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.workDir = workDir

	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.Level()}))
	if cfg.Source != "" {
		a.logger.Debug("config loaded", "path", cfg.Source)
	}
	return nil
}
