package probe

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// ExecFunc runs an external command and returns its combined output and
// exit code. err is non-nil only when the command could not be started or
// was cut off; an ordinary non-zero exit is reported through exitCode.
type ExecFunc func(ctx context.Context, argv []string) (output string, exitCode int, err error)

// Judge decides the verdict for a finished command. Tools like nvcc print
// usable output alongside non-zero exits, so zero/non-zero alone is not a
// reliable success signal and the mapping is per-probe.
type Judge func(exitCode int, output string) (Status, string)

// Command probes by running an external command and judging its result.
func Command(name, section string, argv []string, run ExecFunc, judge Judge, sev Severity) Probe {
	return Probe{
		Name:    name,
		Section: section,
		Action: func(ctx context.Context) Verdict {
			out, code, err := run(ctx, argv)
			if err != nil {
				return Verdict{
					Probe:   name,
					Status:  Status(sev),
					Message: fmt.Sprintf("%s: %v", argv[0], err),
					Detail:  strings.TrimSpace(out),
				}
			}
			status, msg := judge(code, out)
			return Verdict{Probe: name, Status: status, Message: msg, Detail: strings.TrimSpace(out)}
		},
	}
}

// ZeroExit is the plain Judge: exit 0 passes, anything else takes the
// given severity.
func ZeroExit(okMsg string, sev Severity) Judge {
	return func(code int, _ string) (Status, string) {
		if code == 0 {
			return StatusPass, okMsg
		}
		return Status(sev), fmt.Sprintf("exit status %d", code)
	}
}

// MinVersion extracts a version from command output with the given pattern
// (first capture group) and passes only when it is at or above floor.
func MinVersion(pattern, floor string, sev Severity) Judge {
	re := regexp.MustCompile(pattern)
	min := goversion.Must(goversion.NewVersion(floor))
	return func(_ int, output string) (Status, string) {
		m := re.FindStringSubmatch(output)
		if m == nil {
			return Status(sev), "version not found in output"
		}
		v, err := goversion.NewVersion(m[1])
		if err != nil {
			return Status(sev), fmt.Sprintf("unparseable version %q", m[1])
		}
		if v.LessThan(min) {
			return Status(sev), fmt.Sprintf("version %s below required %s", v, min)
		}
		return StatusPass, fmt.Sprintf("version %s", v)
	}
}
