package runner

import "github.com/edgefleet/jetdiag/internal/probe"

// RunResult is the immutable aggregate of one run. Verdicts appear in
// registration order. On a cancelled run Verdicts is shorter than Probes:
// the tail was never executed and the report renders it as "not run".
type RunResult struct {
	// Probes lists every registered probe name, in registration order.
	Probes []string
	// Verdicts holds one entry per executed probe, same order.
	Verdicts []probe.Verdict
	// Cancelled is set when the run was interrupted before completion.
	Cancelled bool
}

// Counts aggregates verdict statuses by folding over the final sequence.
type Counts struct {
	Pass, Warn, Fail, Skip int
}

func (r RunResult) Counts() Counts {
	var c Counts
	for _, v := range r.Verdicts {
		switch v.Status {
		case probe.StatusPass:
			c.Pass++
		case probe.StatusWarn:
			c.Warn++
		case probe.StatusFail:
			c.Fail++
		case probe.StatusSkip:
			c.Skip++
		}
	}
	return c
}

// Success reports whether the run is clean: no Fail verdicts and the run
// was not cut short. Warn and Skip never gate automation.
func (r RunResult) Success() bool {
	return !r.Cancelled && r.Counts().Fail == 0
}
