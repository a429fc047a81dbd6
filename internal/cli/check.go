package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-megaman/levelsolver/course"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check SPEC...",
		Short: "Validate level specs without solving them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, spec := range args {
				if _, err := course.Parse(spec); err != nil {
					var specErr *course.InvalidSpecError
					if errors.As(err, &specErr) {
						fmt.Fprintf(cmd.OutOrStdout(), "invalid\t%q\t%s\n", spec, specErr.Reason)
					}
					invalid++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", spec)
			}
			if invalid > 0 {
				return errInvalidSpecs
			}
			return nil
		},
	}
}
