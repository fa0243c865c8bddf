package commands

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edgefleet/jetdiag/cmd/jetdiag/internal/clierr"
	"github.com/edgefleet/jetdiag/internal/checks"
	"github.com/edgefleet/jetdiag/internal/cmdexec"
	"github.com/edgefleet/jetdiag/internal/dpkg"
)

func newListCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the registered probes without running them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			execRunner := cmdexec.New(zap.NewNop())
			reg, err := checks.Registry(checks.Deps{
				Exec:   execRunner,
				Loader: noLoader{},
				Dpkg:   dpkg.New(execRunner),
			})
			if err != nil {
				return clierr.Wrap(clierr.CodeFault, "registry", err)
			}
			reg, err = reg.Filter(section)
			if err != nil {
				return clierr.Wrap(clierr.CodeFault, "registry", err)
			}

			w := cmd.OutOrStdout()
			sect := ""
			for _, p := range reg.Probes() {
				if p.Section != sect {
					sect = p.Section
					fmt.Fprintf(w, "== %s ==\n", sect)
				}
				fmt.Fprintf(w, "  %-24s  timeout %s\n", p.Name, p.EffectiveTimeout())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "list only probes in the named section")
	return cmd
}

// noLoader satisfies the loader dependency for listing; list never
// evaluates a probe.
type noLoader struct{}

func (noLoader) Load(_ context.Context, _ []string) (string, error) {
	return "", errors.New("loader not available in list mode")
}
