package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewJobID().String()
		require.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBlank(JobID("")))
	assert.True(t, IsBlank(OrgID("   ")))
	assert.False(t, IsBlank(ColumnID("abc")))
}

func TestParseUUID(t *testing.T) {
	t.Parallel()

	got, err := ParseUUID(" 6BA7B810-9DAD-11D1-80B4-00C04FD430C8 ")
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", got)

	_, err = ParseUUID("not-a-uuid")
	assert.Error(t, err)
}
