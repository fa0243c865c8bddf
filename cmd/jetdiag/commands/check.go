package commands

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edgefleet/jetdiag/cmd/jetdiag/internal/clierr"
	"github.com/edgefleet/jetdiag/internal/checks"
	"github.com/edgefleet/jetdiag/internal/cmdexec"
	"github.com/edgefleet/jetdiag/internal/config"
	"github.com/edgefleet/jetdiag/internal/dpkg"
	"github.com/edgefleet/jetdiag/internal/ldso"
	"github.com/edgefleet/jetdiag/internal/logging"
	"github.com/edgefleet/jetdiag/internal/report"
	"github.com/edgefleet/jetdiag/internal/runner"
)

func newCheckCmd() *cobra.Command {
	var (
		configPath string
		section    string
		timeout    time.Duration
		logDir     string
		noLog      bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the full health-check registry",
		Long: `Runs every registered probe in order and prints one line per check.
Exit status is 0 when no probe fails; warnings never gate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			log := logging.New(verbose)
			defer func() { _ = log.Sync() }()

			cfg, err := config.Load(configPath)
			if err != nil {
				return clierr.Wrap(clierr.CodeFault, "configuration", err)
			}
			if cmd.Flags().Changed("section") {
				cfg.Section = section
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}
			if cmd.Flags().Changed("log-dir") {
				cfg.LogDir = logDir
			}

			execRunner := cmdexec.New(log)
			loader, err := ldso.NewSubprocess(execRunner)
			if err != nil {
				return clierr.Wrap(clierr.CodeFault, "library loader", err)
			}

			reg, err := checks.Registry(checks.Deps{
				Exec:   execRunner,
				Loader: loader,
				Dpkg:   dpkg.New(execRunner),
			})
			if err != nil {
				return clierr.Wrap(clierr.CodeFault, "registry", err)
			}
			reg, err = reg.Filter(cfg.Section)
			if err != nil {
				return clierr.Wrap(clierr.CodeFault, "registry", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := runner.New(log)
			r.TimeoutOverride = cfg.Timeout
			res := r.Run(ctx, reg)

			hdr := report.Header{Timestamp: time.Now(), RunID: uuid.New()}
			out := io.Writer(cmd.OutOrStdout())

			if !noLog {
				lw := report.NewLogWriter(cfg.LogDir)
				f, path, lerr := lw.Open(hdr)
				if lerr != nil {
					// Console-only output still serves the operator.
					log.Warn("report not persisted", zap.Error(lerr))
					cmd.PrintErrf("warning: %v\n", lerr)
				} else {
					defer func() { _ = f.Close() }()
					log.Debug("writing report log", zap.String("path", path))
					out = io.MultiWriter(out, f)
				}
			}

			if err := report.Render(out, hdr, reg, res, report.Options{Verbose: verbose}); err != nil {
				return clierr.Wrap(clierr.CodeFault, "render report", err)
			}

			if code := report.ExitCode(res); code != 0 {
				c := res.Counts()
				if res.Cancelled {
					return clierr.New(code, "run cancelled")
				}
				return clierr.Wrap(code, "health check failed",
					errors.Newf("%d probe(s) failed", c.Fail))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "config file path")
	cmd.Flags().StringVar(&section, "section", "", "run only probes in the named section")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "override every probe's timeout")
	cmd.Flags().StringVar(&logDir, "log-dir", report.DefaultLogDir, "directory for per-run report logs")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "do not persist the report to a log file")

	return cmd
}
