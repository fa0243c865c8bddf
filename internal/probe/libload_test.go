package probe

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

// fakeLoader mimics a dynamic loader that only knows some names. Like the
// real loaders it walks the candidate list in order.
type fakeLoader struct {
	accepts map[string]bool
}

func (f fakeLoader) Load(_ context.Context, candidates []string) (string, error) {
	var attempts []string
	for _, c := range candidates {
		if f.accepts[c] {
			return c, nil
		}
		attempts = append(attempts, fmt.Sprintf("%s: not found", c))
	}
	return "", errors.Newf("%s", strings.Join(attempts, "\n"))
}

func TestLibraryProbe(t *testing.T) {
	candidates := []string{"libfoo.so.1", "libfoo.so"}

	t.Run("versioned name loads", func(t *testing.T) {
		p := Library("libfoo", "cudnn", fakeLoader{accepts: map[string]bool{"libfoo.so.1": true}},
			Mandatory, candidates...)
		v := p.Action(context.Background())
		assert.Equal(t, StatusPass, v.Status)
		assert.Contains(t, v.Message, "libfoo.so.1")
	})

	t.Run("fallback to unversioned name", func(t *testing.T) {
		p := Library("libfoo", "cudnn", fakeLoader{accepts: map[string]bool{"libfoo.so": true}},
			Mandatory, candidates...)
		v := p.Action(context.Background())
		assert.Equal(t, StatusPass, v.Status)
		assert.Contains(t, v.Message, "libfoo.so")
	})

	t.Run("no candidate loads", func(t *testing.T) {
		p := Library("libfoo", "cudnn", fakeLoader{}, Mandatory, candidates...)
		v := p.Action(context.Background())
		assert.Equal(t, StatusFail, v.Status)
		assert.Contains(t, v.Message, "libfoo.so.1")
		assert.Contains(t, v.Message, "libfoo.so")
	})

	t.Run("optional library warns", func(t *testing.T) {
		p := Library("libnvvpi", "vpi", fakeLoader{}, Optional, "libnvvpi.so.1", "libnvvpi.so")
		v := p.Action(context.Background())
		assert.Equal(t, StatusWarn, v.Status)
	})
}
