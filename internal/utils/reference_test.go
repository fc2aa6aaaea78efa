package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripvault/tripvault/internal/utils"
)

func TestGenerateBookingReference_Format(t *testing.T) {
	ref, err := utils.GenerateBookingReference()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "BK-"), "reference should carry the BK prefix: %s", ref)
	parts := strings.Split(ref, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 6, "random suffix should be 6 hex chars")
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}

func TestGenerateBookingReference_NoCollisions(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref, err := utils.GenerateBookingReference()
		require.NoError(t, err)
		assert.False(t, seen[ref], "duplicate reference generated: %s", ref)
		seen[ref] = true
	}
}
