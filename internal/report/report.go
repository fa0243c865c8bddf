// Package report renders a RunResult as the console report, decides the
// process exit status, and writes the same text through to a timestamped
// log file.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edgefleet/jetdiag/internal/probe"
	"github.com/edgefleet/jetdiag/internal/registry"
	"github.com/edgefleet/jetdiag/internal/runner"
)

// Fixed status-to-symbol mapping. Plain ASCII so the report is readable
// over a serial console, which is how headless Jetsons are often reached.
var symbols = map[probe.Status]string{
	probe.StatusPass: " OK ",
	probe.StatusFail: "FAIL",
	probe.StatusWarn: "WARN",
	probe.StatusSkip: "SKIP",
}

const notRunSymbol = " -- "

// Header describes the run for the report's first line. Everything that
// varies between otherwise identical runs lives here, so the rest of the
// report stays byte-stable.
type Header struct {
	Timestamp time.Time
	RunID     uuid.UUID
}

// Options adjust rendering. The zero value is the standard report.
type Options struct {
	// Verbose appends each failing or warning verdict's captured detail,
	// indented under its line.
	Verbose bool
}

// Render writes the full textual report for res to w: a header line, one
// line per verdict grouped under section banners, "not run" lines for any
// probes a cancelled run never reached, and the summary line.
func Render(w io.Writer, hdr Header, reg *registry.Registry, res runner.RunResult, opts Options) error {
	var b strings.Builder

	fmt.Fprintf(&b, "jetdiag report  %s  run %s\n",
		hdr.Timestamp.UTC().Format(time.RFC3339), hdr.RunID)

	byName := make(map[string]probe.Verdict, len(res.Verdicts))
	for _, v := range res.Verdicts {
		byName[v.Probe] = v
	}

	section := ""
	for _, p := range reg.Probes() {
		if p.Section != section {
			section = p.Section
			fmt.Fprintf(&b, "\n== %s ==\n", section)
		}
		v, ran := byName[p.Name]
		if !ran {
			fmt.Fprintf(&b, "[%s] %-24s  not run\n", notRunSymbol, p.Name)
			continue
		}
		fmt.Fprintf(&b, "[%s] %-24s  %s\n", symbols[v.Status], p.Name, v.Message)
		if opts.Verbose && v.Detail != "" && v.Status != probe.StatusPass {
			for _, line := range strings.Split(v.Detail, "\n") {
				fmt.Fprintf(&b, "       %s\n", line)
			}
		}
	}

	c := res.Counts()
	b.WriteString("\n")
	if res.Cancelled {
		b.WriteString("run cancelled before completion\n")
	}
	fmt.Fprintf(&b, "PASS: %d  WARN: %d  FAIL: %d\n", c.Pass, c.Warn, c.Fail)

	_, err := io.WriteString(w, b.String())
	return err
}

// ExitCode maps a run outcome to the process exit status: 0 only when no
// probe failed and the run completed. Warn and Skip never gate.
func ExitCode(res runner.RunResult) int {
	if res.Success() {
		return 0
	}
	return 1
}
