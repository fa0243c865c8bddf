package probe

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher turns captured command output into a verdict, without touching
// the host. Keeping matchers pure lets them be unit-tested against canned
// output with no external process.
type Matcher func(output string) (Status, string)

// Pattern probes by running a command and scanning its output with a
// Matcher. The command's exit code is ignored: the text is the signal.
func Pattern(name, section string, argv []string, run ExecFunc, match Matcher, sev Severity) Probe {
	return Command(name, section, argv, run, func(_ int, output string) (Status, string) {
		return match(output)
	}, sev)
}

// Contains passes when the output contains substr anywhere.
func Contains(substr string, sev Severity) Matcher {
	return func(output string) (Status, string) {
		if strings.Contains(output, substr) {
			return StatusPass, fmt.Sprintf("%q present", substr)
		}
		return Status(sev), fmt.Sprintf("%q not found in output", substr)
	}
}

// Regex passes when the output matches the expression.
func Regex(pattern string, sev Severity) Matcher {
	re := regexp.MustCompile(pattern)
	return func(output string) (Status, string) {
		if re.MatchString(output) {
			return StatusPass, fmt.Sprintf("matched %s", pattern)
		}
		return Status(sev), fmt.Sprintf("no match for %s", pattern)
	}
}

// BuildFlag inspects build-information output for a "<flag>: YES/NO" line,
// the way OpenCV's getBuildInformation reports compiled-in features. A flag
// explicitly set to NO and a flag missing entirely are both failures, but
// the operator needs to know which one happened: the first means the build
// disabled it, the second usually means the wrong build is installed.
func BuildFlag(flag string, sev Severity) Matcher {
	return func(output string) (Status, string) {
		for _, line := range strings.Split(output, "\n") {
			if !strings.Contains(line, flag) {
				continue
			}
			_, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			switch strings.ToUpper(strings.TrimSpace(value)) {
			case "YES", "ON", "TRUE", "1":
				return StatusPass, fmt.Sprintf("%s: YES", flag)
			case "NO", "OFF", "FALSE", "0":
				return Status(sev), fmt.Sprintf("%s explicitly disabled in this build", flag)
			}
		}
		return Status(sev), fmt.Sprintf("%s not found in build information", flag)
	}
}
