package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgefleet/jetdiag/cmd/jetdiag/internal/clierr"
	"github.com/edgefleet/jetdiag/internal/ldso"
)

// newDlopenCmd is the hidden helper the library-load probe re-execs. It
// dlopens candidates in order in THIS process and prints the first that
// loads; a crashing library constructor therefore kills this child, not
// the check run.
func newDlopenCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "dlopen <library>...",
		Short:  "Attempt to dlopen shared libraries (internal helper)",
		Hidden: true,
		Args:   cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := ldso.TryDlopen(args)
			if err != nil {
				return clierr.Wrap(clierr.CodeProbesFailed, "dlopen", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), loaded)
			return nil
		},
	}
}
