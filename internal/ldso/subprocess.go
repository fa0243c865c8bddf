package ldso

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/edgefleet/jetdiag/internal/cmdexec"
)

// Subprocess loads libraries by re-exec'ing the running binary with the
// hidden dlopen command. The child prints the loaded candidate on stdout
// and exits 0; any crash during a library constructor is contained there.
type Subprocess struct {
	run func(ctx context.Context, argv []string) (string, int, error)
	exe string
}

// NewSubprocess resolves the current executable once at construction.
func NewSubprocess(run *cmdexec.Runner) (*Subprocess, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, errors.Wrap(err, "resolve own executable")
	}
	return &Subprocess{run: run.Run, exe: exe}, nil
}

func (s *Subprocess) Load(ctx context.Context, candidates []string) (string, error) {
	argv := append([]string{s.exe, "dlopen"}, candidates...)
	out, code, err := s.run(ctx, argv)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if code != 0 {
		if out == "" {
			out = "loader child reported no detail"
		}
		return "", errors.Newf("%s", out)
	}
	return out, nil
}
