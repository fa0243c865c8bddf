package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgefleet/jetdiag/cmd/jetdiag/internal/clierr"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootHelpListsCommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	for _, c := range []string{"check", "list", "version", "help"} {
		assert.Contains(t, out, c)
	}
	// The loader helper stays out of user-facing help.
	assert.NotContains(t, out, "dlopen")
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("JETDIAG_VERSION", "1.2.3")
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "jetdiag version 1.2.3\n", out)
}

func TestListPrintsRegistryWithoutRunning(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "== cuda ==")
	assert.Contains(t, out, "nvcc")
	assert.Contains(t, out, "timeout")
}

func TestListSectionFilter(t *testing.T) {
	out, err := execute(t, "list", "--section", "opencv")
	require.NoError(t, err)
	assert.Contains(t, out, "opencv-cuda")
	assert.False(t, strings.Contains(out, "== cuda =="))
}

func TestCheckUnknownSectionIsFault(t *testing.T) {
	_, err := execute(t, "check", "--section", "nonsense", "--no-log")
	require.Error(t, err)
	assert.Equal(t, clierr.CodeFault, clierr.ExitCodeOf(err))
}

func TestListUnknownSectionIsFault(t *testing.T) {
	_, err := execute(t, "list", "--section", "nonsense")
	require.Error(t, err)
	assert.Equal(t, clierr.CodeFault, clierr.ExitCodeOf(err))
}
