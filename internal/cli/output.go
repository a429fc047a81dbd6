package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"github.com/go-megaman/levelsolver/internal/config"
	"github.com/go-megaman/levelsolver/solver"
)

type outputFlags struct {
	path  string
	stats bool
}

func (o *outputFlags) register(fs *flag.FlagSet) {
	fs.StringVarP(&o.path, "out", "o", "", "write results atomically to file instead of stdout")
	fs.BoolVar(&o.stats, "stats", false, "append search statistics")
}

// formatResult renders one result as a single line without newline.
func formatResult(format string, res *solver.Result, stats bool) (string, error) {
	if format == config.FormatJSON {
		b, err := json.Marshal(res)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	var line string
	switch {
	case !res.Solved():
		line = fmt.Sprintf("%s\tunreachable %d", res.Course(), res.Progress())
	case format == config.FormatMoves:
		moves, _ := res.Moves()
		deltas := make([]int, len(moves))
		for i, m := range moves {
			deltas[i] = int(m)
		}
		line = fmt.Sprintf("%s\t%v", res.Course(), deltas)
	default:
		line = fmt.Sprintf("%s\t%s", res.Course(), res.Tokens())
	}
	if stats {
		s := res.Stats()
		line += fmt.Sprintf("\tstates=%d max_depth=%d", s.States, s.MaxDepth)
	}
	return line, nil
}

// writeOutput writes buf to path atomically, or to w if path is empty.
func (a *app) writeOutput(w io.Writer, path string, buf *bytes.Buffer) error {
	if path == "" {
		_, err := w.Write(buf.Bytes())
		return err
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.workDir, path)
	}
	if err := atomic.WriteFile(path, buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.logger.Debug("results written", "path", path)
	return nil
}
