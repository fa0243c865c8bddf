package report

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// DefaultLogDir is where reports land when no override is configured.
const DefaultLogDir = "/var/log/jetdiag"

// ErrReport marks a failure to persist the report. Callers degrade to
// console-only output; a read-only filesystem must never hide a diagnosis.
var ErrReport = errors.New("report not persisted")

// LogWriter tees the rendered report into a per-run log file. Each run
// creates one fresh file named after the header timestamp; nothing ever
// reads prior logs back.
type LogWriter struct {
	dir string
}

func NewLogWriter(dir string) *LogWriter {
	if dir == "" {
		dir = DefaultLogDir
	}
	return &LogWriter{dir: dir}
}

// Path returns the log file path for a run with the given header.
func (l *LogWriter) Path(hdr Header) string {
	return filepath.Join(l.dir, "jetdiag-"+hdr.Timestamp.UTC().Format("20060102-150405")+".log")
}

// Open creates the run's log file, creating the directory if needed. On
// failure it returns a wrapped ErrReport and a nil writer.
func (l *LogWriter) Open(hdr Header) (io.WriteCloser, string, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return nil, "", errors.Mark(errors.Wrapf(err, "create log dir %s", l.dir), ErrReport)
	}
	path := l.Path(hdr)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, "", errors.Mark(errors.Wrapf(err, "open log %s", path), ErrReport)
	}
	return f, path, nil
}
