package probe

import (
	"context"
	"fmt"
	"strings"
)

// Loader attempts to dynamically load each candidate shared object in order
// and reports the first that loads. The production loader runs in a child
// process so a crashing library constructor cannot take down the runner.
type Loader interface {
	Load(ctx context.Context, candidates []string) (loaded string, err error)
}

// Library probes that a shared library is loadable under at least one of
// its candidate names. Candidates are tried in order, versioned name first,
// to cope with installs that ship no unversioned symlink.
func Library(name, section string, loader Loader, sev Severity, candidates ...string) Probe {
	return Probe{
		Name:    name,
		Section: section,
		Action: func(ctx context.Context) Verdict {
			loaded, err := loader.Load(ctx, candidates)
			if err != nil {
				return Verdict{
					Probe:   name,
					Status:  Status(sev),
					Message: fmt.Sprintf("none of %s loadable", strings.Join(candidates, ", ")),
					Detail:  err.Error(),
				}
			}
			return pass(name, loaded+" loaded")
		},
	}
}
