// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the jetdiag root command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("JETDIAG_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "jetdiag",
		Short:         "jetdiag - Jetson GPU/vision SDK health checks",
		Long:          "jetdiag probes a Jetson board for a working CUDA, cuDNN, TensorRT, VPI, OpenCV, GStreamer and container-runtime stack and reports pass/warn/fail per check.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the jetdiag version",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "jetdiag version %s\n", version)
		},
	})

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newDlopenCmd())

	return cmd
}
