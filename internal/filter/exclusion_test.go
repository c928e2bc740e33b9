package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// DefaultExclusions
// ---------------------------------------------------------------------------

func TestDefaultExclusions(t *testing.T) {
	assert.Equal(t, ExclusionSet{"ntfs", "ephemeral", "Pre-provisioned", "Inline-volume"}, DefaultExclusions())
}

func TestDefaultExclusions_ReturnsCopy(t *testing.T) {
	s := DefaultExclusions()
	s[0] = "changed"

	assert.Equal(t, "ntfs", DefaultExclusions()[0])
}

// ---------------------------------------------------------------------------
// Match
// ---------------------------------------------------------------------------

func TestExclusionSet_Match(t *testing.T) {
	s := DefaultExclusions()

	tests := []struct {
		name    string
		line    string
		pattern string
		matched bool
	}{
		{"ntfs", "Test ntfs volume\n", "ntfs", true},
		{"ephemeral", "Test ephemeral inline volume\n", "ephemeral", true},
		{"pre-provisioned", "Pre-provisioned PV test\n", "Pre-provisioned", true},
		{"inline-volume", "Inline-volume test case\n", "Inline-volume", true},
		{"embedded in word", "[sig-storage] fsntfsx\n", "ntfs", true},
		{"first pattern wins", "ephemeral ntfs\n", "ntfs", true},
		{"uppercase NTFS", "Test NTFS volume\n", "", false},
		{"lowercase pre-provisioned", "pre-provisioned PV\n", "", false},
		{"partial pattern", "Inline volume\n", "", false},
		{"plain line", "Regular volume test\n", "", false},
		{"empty line", "\n", "", false},
		{"empty string", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := s.Match(tt.line)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.pattern, p)
			assert.Equal(t, tt.matched, s.Excludes(tt.line))
			assert.Equal(t, !tt.matched, s.Includes(tt.line))
		})
	}
}

func TestExclusionSet_EmptyIncludesEverything(t *testing.T) {
	var s ExclusionSet

	assert.True(t, s.Includes("ntfs"))
	assert.True(t, s.Includes(""))
}
