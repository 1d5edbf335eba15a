package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(&buf, true), "spawner")

	log.Debug().Int("count", 3).Msg("spawned")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "spawner", entry["component"])
	assert.Equal(t, float64(3), entry["count"])
	assert.Contains(t, entry, "time")
}
