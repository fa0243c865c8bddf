package probe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Overridable for tests; the real implementations hit the host.
var (
	lookPath = exec.LookPath
	statFile = os.Stat
)

// Executable probes for a command on PATH.
func Executable(name, section, tool string, sev Severity) Probe {
	return Probe{
		Name:    name,
		Section: section,
		Timeout: 5 * time.Second,
		Action: func(ctx context.Context) Verdict {
			path, err := lookPath(tool)
			if err != nil {
				return missing(name, fmt.Sprintf("%s not found on PATH", tool), sev)
			}
			return pass(name, path)
		},
	}
}

// File probes for the existence of a path on the host filesystem.
func File(name, section, path string, sev Severity) Probe {
	return Probe{
		Name:    name,
		Section: section,
		Timeout: 5 * time.Second,
		Action: func(ctx context.Context) Verdict {
			if _, err := statFile(path); err != nil {
				if os.IsNotExist(err) {
					return missing(name, fmt.Sprintf("%s not present", path), sev)
				}
				return missing(name, fmt.Sprintf("cannot stat %s: %v", path, err), sev)
			}
			return pass(name, path)
		},
	}
}

// PackageQuerier answers whether a package is installed, typically backed
// by the host package database.
type PackageQuerier interface {
	Installed(ctx context.Context, pkg string) (bool, string, error)
}

// Package probes the host package database for an installed package.
func Package(name, section, pkg string, q PackageQuerier, sev Severity) Probe {
	return Probe{
		Name:    name,
		Section: section,
		Action: func(ctx context.Context) Verdict {
			ok, ver, err := q.Installed(ctx, pkg)
			if err != nil {
				return missing(name, fmt.Sprintf("package query for %s failed: %v", pkg, err), sev)
			}
			if !ok {
				return missing(name, fmt.Sprintf("package %s not installed", pkg), sev)
			}
			return pass(name, fmt.Sprintf("%s %s", pkg, ver))
		},
	}
}
