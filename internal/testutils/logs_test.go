package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRecorder(t *testing.T) {
	t.Parallel()

	recorder, logger := NewLogRecorder()
	logger.With("component", "translator").Info("translation succeeded after retries", "attempts", 2)
	logger.Debug("other")

	entries := recorder.Entries()
	require.Len(t, entries, 2)

	found := recorder.Find("translation succeeded after retries")
	require.Len(t, found, 1)
	assert.Equal(t, "INFO", found[0]["level"])
	assert.Equal(t, "translator", found[0]["component"])
	assert.EqualValues(t, 2, found[0]["attempts"])
	assert.Empty(t, recorder.Find("missing"))
}
