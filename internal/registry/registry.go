// Package registry holds the ordered, read-only set of probes for one run.
// Construction is the only place a health check can fail hard: a malformed
// registry aborts before any probe executes.
package registry

import (
	"github.com/cockroachdb/errors"

	"github.com/edgefleet/jetdiag/internal/probe"
)

var (
	ErrDuplicateProbe = errors.New("duplicate probe name")
	ErrUnknownSection = errors.New("unknown section")
	ErrEmptyName      = errors.New("probe with empty name")
)

// Registry is an ordered sequence of probes. Order is part of the external
// contract: the report groups by section in registration order.
type Registry struct {
	probes []probe.Probe
}

// New validates and fixes the probe order. Probe names must be unique
// within a run so verdicts and log lines are attributable.
func New(probes ...probe.Probe) (*Registry, error) {
	seen := make(map[string]struct{}, len(probes))
	for _, p := range probes {
		if p.Name == "" {
			return nil, errors.WithDetailf(ErrEmptyName, "section %q", p.Section)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, errors.WithDetailf(ErrDuplicateProbe, "probe %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return &Registry{probes: probes}, nil
}

// Probes returns the registration-ordered probe slice. Callers must not
// mutate it.
func (r *Registry) Probes() []probe.Probe { return r.probes }

// Len reports the number of registered probes.
func (r *Registry) Len() int { return len(r.probes) }

// Sections returns the distinct section labels in first-appearance order.
func (r *Registry) Sections() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, p := range r.probes {
		if _, ok := seen[p.Section]; ok {
			continue
		}
		seen[p.Section] = struct{}{}
		out = append(out, p.Section)
	}
	return out
}

// Filter narrows the registry to one section. Asking for a section no
// probe belongs to is a configuration fault, not an empty run.
func (r *Registry) Filter(section string) (*Registry, error) {
	if section == "" {
		return r, nil
	}
	var kept []probe.Probe
	for _, p := range r.probes {
		if p.Section == section {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil, errors.WithDetailf(ErrUnknownSection, "section %q", section)
	}
	return &Registry{probes: kept}, nil
}
