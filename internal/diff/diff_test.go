package diff

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_NoDifferences(t *testing.T) {
	lines := []string{"a\n", "b\n"}

	r, err := Compute(lines, lines, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, r.HasDifferences)
	assert.Empty(t, r.Unified)
	assert.Zero(t, r.Removed)
}

func TestCompute_RemovedLines(t *testing.T) {
	input := []string{"Regular volume test\n", "Pre-provisioned PV test\n", "Plain test\n"}
	filtered := []string{"Regular volume test\n", "Plain test\n"}

	r, err := Compute(input, filtered, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, r.HasDifferences)
	assert.Equal(t, 1, r.Removed)
	assert.Contains(t, r.Unified, "--- input")
	assert.Contains(t, r.Unified, "+++ filtered")
	assert.Contains(t, r.Unified, "-Pre-provisioned PV test\n")
	assert.Contains(t, r.Unified, " Regular volume test\n")
	assert.NotContains(t, r.Unified, "\n+Plain")
}

func TestCompute_RemovedLineStartingWithDashes(t *testing.T) {
	input := []string{"keep\n", "--ntfs\n"}

	r, err := Compute(input, []string{"keep\n"}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, r.Removed)
}

func TestCompute_UnterminatedLastLine(t *testing.T) {
	input := []string{"keep\n", "ntfs"}

	r, err := Compute(input, []string{"keep\n"}, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, r.Unified, "-ntfs\n")
}

func TestCompute_CustomLabels(t *testing.T) {
	opts := Options{OldLabel: "stdin", NewLabel: "kept", Context: 0}

	r, err := Compute([]string{"ntfs\n"}, nil, opts)
	require.NoError(t, err)
	assert.Contains(t, r.Unified, "--- stdin")
	assert.Contains(t, r.Unified, "+++ kept")
}

func TestWrite_NoDifferences(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, &Result{}, false)
	assert.Equal(t, "No lines excluded.\n", buf.String())
}

func TestWrite_Plain(t *testing.T) {
	r, err := Compute([]string{"a\n", "ntfs\n"}, []string{"a\n"}, DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, r, false)

	assert.Equal(t, r.Unified, buf.String())
}

// forceANSI makes lipgloss emit colour codes even though test output is not
// a terminal.
func forceANSI(t *testing.T) {
	t.Helper()

	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestWrite_Color(t *testing.T) {
	forceANSI(t)

	r, err := Compute([]string{"a\n", "ntfs\n"}, []string{"a\n"}, DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, r, true)

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "-ntfs")
	assert.NotEqual(t, r.Unified, buf.String())
}

func TestWrite_ColorKeepsTabs(t *testing.T) {
	forceANSI(t)

	r, err := Compute([]string{"a\n", "ntfs\tx\n"}, []string{"a\n"}, DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, r, true)

	assert.Contains(t, buf.String(), "-ntfs\tx")
	assert.NotContains(t, buf.String(), "ntfs    x")
}

func TestWrite_PlainKeepsTabs(t *testing.T) {
	r, err := Compute([]string{"[sig-storage]\tntfs\n"}, nil, DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, r, false)

	assert.Contains(t, buf.String(), "-[sig-storage]\tntfs\n")
}
