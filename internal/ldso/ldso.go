// Package ldso loads shared objects to prove an SDK's runtime libraries
// are actually usable, not merely present on disk. The in-process loader
// wraps dlopen; the subprocess loader re-execs the jetdiag binary so a
// crashing library constructor kills a child, never the run.
package ldso

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ebitengine/purego"
)

// TryDlopen attempts each candidate in order with the process's dynamic
// loader and returns the first name that loads. The handle is closed again
// immediately; loadability is the only question.
func TryDlopen(candidates []string) (string, error) {
	var attempts []string
	for _, name := range candidates {
		handle, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		_ = purego.Dlclose(handle)
		return name, nil
	}
	return "", errors.Newf("dlopen failed for all candidates:\n%s", strings.Join(attempts, "\n"))
}

// InProcess loads libraries directly in the current process. Only safe for
// the helper child process; the runner always goes through Subprocess.
type InProcess struct{}

func (InProcess) Load(_ context.Context, candidates []string) (string, error) {
	return TryDlopen(candidates)
}
