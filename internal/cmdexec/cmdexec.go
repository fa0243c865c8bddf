// Package cmdexec runs external diagnostic tools with captured output and
// structured logging. Commands are argv-style only; there is no shell and
// no retry, since these are point-in-time environment queries.
package cmdexec

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Runner executes commands under the caller's context. The context carries
// the deadline: CommandContext kills the process when it expires.
type Runner struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Run executes argv and returns combined stdout+stderr and the exit code.
// A non-zero exit is not an error here; many diagnostic tools exit non-zero
// while still printing the output a probe needs. err is reserved for "the
// command could not run at all" (not found, killed by deadline).
func (r *Runner) Run(ctx context.Context, argv []string) (string, int, error) {
	if len(argv) == 0 {
		return "", -1, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	r.log.Debug("running command", zap.Strings("argv", argv))
	err := cmd.Run()
	out := buf.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			r.log.Debug("command exited non-zero",
				zap.String("command", argv[0]),
				zap.Int("exit", exitErr.ExitCode()),
			)
			return out, exitErr.ExitCode(), nil
		}
		if ctx.Err() != nil {
			return out, -1, errors.Wrapf(ctx.Err(), "%s cut off", argv[0])
		}
		return out, -1, errors.Wrapf(err, "start %s", argv[0])
	}
	return out, 0, nil
}
