// Package dpkg answers installed-package queries against the Debian
// package database on L4T images.
package dpkg

import (
	"context"
	"strings"
	"sync"

	"github.com/edgefleet/jetdiag/internal/cmdexec"
)

// Querier asks dpkg-query whether packages are installed. Results are
// cached per instance: several probes may ask about the same package and
// the database does not change mid-run.
type Querier struct {
	run func(ctx context.Context, argv []string) (string, int, error)

	mu    sync.Mutex
	cache map[string]entry
}

type entry struct {
	installed bool
	version   string
}

func New(run *cmdexec.Runner) *Querier {
	return &Querier{run: run.Run, cache: make(map[string]entry)}
}

// Installed reports whether pkg is in "install ok installed" state, and
// its version when it is.
func (q *Querier) Installed(ctx context.Context, pkg string) (bool, string, error) {
	q.mu.Lock()
	if e, ok := q.cache[pkg]; ok {
		q.mu.Unlock()
		return e.installed, e.version, nil
	}
	q.mu.Unlock()

	out, code, err := q.run(ctx, []string{
		"dpkg-query", "-W", "-f", "${Status}\t${Version}", pkg,
	})
	if err != nil {
		return false, "", err
	}

	e := parse(out, code)

	q.mu.Lock()
	q.cache[pkg] = e
	q.mu.Unlock()
	return e.installed, e.version, nil
}

// parse reads dpkg-query output. dpkg-query exits 1 for unknown packages,
// which is an answer, not a failure.
func parse(out string, code int) entry {
	if code != 0 {
		return entry{}
	}
	status, version, _ := strings.Cut(strings.TrimSpace(out), "\t")
	if !strings.HasSuffix(status, "installed") || strings.Contains(status, "not-installed") {
		return entry{}
	}
	return entry{installed: true, version: version}
}
