// Package runner executes a registry sequentially, isolating each probe
// behind a wall-clock timeout and a panic guard so one misbehaving check
// cannot abort or corrupt the run.
package runner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/edgefleet/jetdiag/internal/probe"
	"github.com/edgefleet/jetdiag/internal/registry"
)

// Runner executes probes strictly in registration order. Probes are
// independent by contract, so there is no retry and no early abort: a
// failing probe is recorded and the run moves on.
type Runner struct {
	log *zap.Logger
	// TimeoutOverride, when positive, replaces every probe's own timeout.
	TimeoutOverride time.Duration
}

func New(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Run evaluates every probe in reg exactly once. The returned RunResult
// contains one verdict per executed probe in registration order; when ctx
// is cancelled mid-run, completed verdicts are preserved and the remainder
// are left unexecuted.
func (r *Runner) Run(ctx context.Context, reg *registry.Registry) RunResult {
	probes := reg.Probes()
	res := RunResult{Probes: make([]string, 0, len(probes))}
	for _, p := range probes {
		res.Probes = append(res.Probes, p.Name)
	}

	for _, p := range probes {
		if ctx.Err() != nil {
			res.Cancelled = true
			break
		}

		start := time.Now()
		v, cancelled := r.evaluate(ctx, p)
		if cancelled {
			res.Cancelled = true
			break
		}

		r.log.Debug("probe finished",
			zap.String("probe", p.Name),
			zap.String("section", p.Section),
			zap.String("status", string(v.Status)),
			zap.Duration("elapsed", time.Since(start)),
		)
		res.Verdicts = append(res.Verdicts, v)
	}
	return res
}

// evaluate runs one probe action under its timeout. The action runs in its
// own goroutine; on timeout it is abandoned, not joined, because a hung
// external tool must not stall the rest of the run.
func (r *Runner) evaluate(ctx context.Context, p probe.Probe) (probe.Verdict, bool) {
	timeout := p.EffectiveTimeout()
	if r.TimeoutOverride > 0 {
		timeout = r.TimeoutOverride
	}

	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan probe.Verdict, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- probe.Verdict{
					Probe:   p.Name,
					Status:  probe.StatusFail,
					Message: fmt.Sprintf("probe panicked: %v", rec),
				}
			}
		}()
		done <- p.Action(probeCtx)
	}()

	select {
	case v := <-done:
		// Probes fill their own name, but the runner owns attribution.
		v.Probe = p.Name
		return v, false
	case <-probeCtx.Done():
		if ctx.Err() != nil {
			// Operator interrupt, not a probe timeout.
			r.log.Warn("run cancelled", zap.String("probe", p.Name))
			return probe.Verdict{}, true
		}
		r.log.Warn("probe timed out",
			zap.String("probe", p.Name),
			zap.Duration("timeout", timeout),
		)
		return probe.Verdict{
			Probe:   p.Name,
			Status:  probe.StatusFail,
			Message: fmt.Sprintf("timed out after %s", timeout),
		}, false
	}
}
