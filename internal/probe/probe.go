// Package probe defines the health-check data model: a Probe is a named,
// self-contained inspection of one aspect of the host, and a Verdict is its
// outcome. Probe actions are total functions: they always return a Verdict
// and never panic out to the caller (the runner still guards against bugs).
package probe

import (
	"context"
	"time"
)

// Status classifies the outcome of a single probe.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// Severity is the status an absence-style probe reports when the thing it
// looks for is missing. Optional components warn, mandatory ones fail.
type Severity Status

const (
	Mandatory Severity = Severity(StatusFail)
	Optional  Severity = Severity(StatusWarn)
)

// Verdict is the immutable outcome of one probe evaluation.
type Verdict struct {
	Probe   string
	Status  Status
	Message string
	// Detail carries optional multi-line diagnostics, typically captured
	// command output. Rendered only in verbose reports.
	Detail string
}

// Action produces a Verdict for the current host state. Implementations
// must capture every internal error (missing tool, non-zero exit, parse
// failure) and convert it into a Fail or Warn Verdict.
type Action func(ctx context.Context) Verdict

// DefaultTimeout bounds a probe whose declaration does not set one.
const DefaultTimeout = 30 * time.Second

// Probe is one declarative entry in the registry. Probes are immutable
// after registration and must not mutate host state another probe reads.
type Probe struct {
	Name    string
	Section string
	Timeout time.Duration
	Action  Action
}

// EffectiveTimeout returns the probe's timeout, falling back to the default.
func (p Probe) EffectiveTimeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return DefaultTimeout
}

func pass(name, msg string) Verdict {
	return Verdict{Probe: name, Status: StatusPass, Message: msg}
}

func missing(name, msg string, sev Severity) Verdict {
	return Verdict{Probe: name, Status: Status(sev), Message: msg}
}
