package registry

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgefleet/jetdiag/internal/probe"
)

func named(name, section string) probe.Probe {
	return probe.Probe{
		Name:    name,
		Section: section,
		Action: func(context.Context) probe.Verdict {
			return probe.Verdict{Probe: name, Status: probe.StatusPass}
		},
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New(named("nvcc", "cuda"), named("nvcc", "cuda"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateProbe))
}

func TestNewRejectsEmptyNames(t *testing.T) {
	_, err := New(named("", "cuda"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyName))
}

func TestProbesKeepRegistrationOrder(t *testing.T) {
	reg, err := New(named("b", "two"), named("a", "one"), named("c", "two"))
	require.NoError(t, err)

	var got []string
	for _, p := range reg.Probes() {
		got = append(got, p.Name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, got)
	assert.Equal(t, 3, reg.Len())
}

func TestSectionsFirstAppearanceOrder(t *testing.T) {
	reg, err := New(named("a", "cuda"), named("b", "opencv"), named("c", "cuda"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cuda", "opencv"}, reg.Sections())
}

func TestFilter(t *testing.T) {
	reg, err := New(named("a", "cuda"), named("b", "opencv"), named("c", "cuda"))
	require.NoError(t, err)

	t.Run("known section", func(t *testing.T) {
		sub, err := reg.Filter("cuda")
		require.NoError(t, err)
		assert.Equal(t, 2, sub.Len())
	})

	t.Run("empty filter is identity", func(t *testing.T) {
		sub, err := reg.Filter("")
		require.NoError(t, err)
		assert.Equal(t, reg, sub)
	})

	t.Run("unknown section is a fault", func(t *testing.T) {
		_, err := reg.Filter("tensorrt")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownSection))
	})
}
