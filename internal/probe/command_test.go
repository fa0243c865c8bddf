package probe

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func fakeExec(out string, code int, err error) ExecFunc {
	return func(_ context.Context, _ []string) (string, int, error) {
		return out, code, err
	}
}

func TestCommandProbe(t *testing.T) {
	t.Run("judge decides", func(t *testing.T) {
		p := Command("nvargus", "gstreamer", []string{"gst-inspect-1.0", "nvarguscamerasrc"},
			fakeExec("ok", 0, nil), ZeroExit("plugin available", Optional), Optional)
		v := p.Action(context.Background())
		assert.Equal(t, StatusPass, v.Status)
		assert.Equal(t, "plugin available", v.Message)
	})

	t.Run("non-zero exit takes severity", func(t *testing.T) {
		p := Command("nvargus", "gstreamer", []string{"gst-inspect-1.0", "nvarguscamerasrc"},
			fakeExec("No such element", 1, nil), ZeroExit("plugin available", Optional), Optional)
		v := p.Action(context.Background())
		assert.Equal(t, StatusWarn, v.Status)
		assert.Contains(t, v.Message, "exit status 1")
		assert.Equal(t, "No such element", v.Detail)
	})

	t.Run("exec error never escapes", func(t *testing.T) {
		p := Command("nvcc-version", "cuda", []string{"nvcc", "--version"},
			fakeExec("", -1, errors.New("executable file not found")), ZeroExit("ok", Mandatory), Mandatory)
		v := p.Action(context.Background())
		assert.Equal(t, StatusFail, v.Status)
		assert.Contains(t, v.Message, "nvcc")
		assert.Contains(t, v.Message, "not found")
	})
}

func TestMinVersion(t *testing.T) {
	judge := MinVersion(`release (\d+\.\d+)`, "10.2", Mandatory)

	t.Run("at floor", func(t *testing.T) {
		status, msg := judge(0, "Cuda compilation tools, release 10.2, V10.2.300")
		assert.Equal(t, StatusPass, status)
		assert.Contains(t, msg, "10.2")
	})

	t.Run("above floor", func(t *testing.T) {
		status, _ := judge(0, "Cuda compilation tools, release 11.4, V11.4.315")
		assert.Equal(t, StatusPass, status)
	})

	t.Run("below floor", func(t *testing.T) {
		status, msg := judge(0, "Cuda compilation tools, release 9.1, V9.1.85")
		assert.Equal(t, StatusFail, status)
		assert.Contains(t, msg, "below required")
	})

	t.Run("no version in output", func(t *testing.T) {
		status, msg := judge(127, "nvcc: command not found")
		assert.Equal(t, StatusFail, status)
		assert.Contains(t, msg, "version not found")
	})
}
