package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSince(t *testing.T) {
	now := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)

	got, err := ParseSince("48h", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC), got)

	got, err = ParseSince("2024-04-01T08:00:00Z", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC), got)

	got, err = ParseSince("2024-03-01", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseSince("last week", now)
	assert.Error(t, err)
}
