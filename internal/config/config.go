// Package config resolves jetdiag settings from an optional YAML file and
// environment variables. Flags are bound by the commands and win over both.
package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/edgefleet/jetdiag/internal/report"
)

// DefaultPath is consulted when no --config flag is given. A missing file
// is not an error; the defaults stand.
const DefaultPath = "/etc/jetdiag/config.yaml"

// Config is the resolved runtime configuration.
type Config struct {
	// LogDir receives one timestamped report file per run.
	LogDir string `yaml:"log_dir"`
	// Timeout overrides every probe's own timeout when non-zero.
	Timeout time.Duration `yaml:"-"`
	// Section restricts the run to one registry section.
	Section string `yaml:"section"`

	// RawTimeout is the YAML-facing duration string ("45s", "2m").
	RawTimeout string `yaml:"timeout"`
}

func defaults() Config {
	return Config{LogDir: report.DefaultLogDir}
}

// Load reads path (when it exists) and applies environment overrides:
// JETDIAG_LOG_DIR, JETDIAG_TIMEOUT, JETDIAG_SECTION.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err) && path == DefaultPath:
			// No config file installed; fine.
		case err != nil:
			return cfg, errors.Wrapf(err, "read config %s", path)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "parse config %s", path)
			}
		}
	}

	if v := os.Getenv("JETDIAG_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("JETDIAG_TIMEOUT"); v != "" {
		cfg.RawTimeout = v
	}
	if v := os.Getenv("JETDIAG_SECTION"); v != "" {
		cfg.Section = v
	}

	if cfg.RawTimeout != "" {
		d, err := time.ParseDuration(cfg.RawTimeout)
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid timeout %q", cfg.RawTimeout)
		}
		if d <= 0 {
			return cfg, errors.Newf("timeout must be positive, got %q", cfg.RawTimeout)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}
