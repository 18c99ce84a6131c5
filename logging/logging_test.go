package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWithWriter_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupWithWriter("prod", "", &buf)

	log.Info().Str("component", "Test").Msg("hello")
	log.Debug().Msg("hidden")

	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "Test", line["component"])
}

func TestSetupWithWriter_DevelopmentIsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupWithWriter("development", "", &buf)

	log.Debug().Msg("visible")

	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), "visible")
}

func TestSetupWithWriter_LevelOverride(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, zerolog.WarnLevel, SetupWithWriter("development", "WARN", &buf).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, SetupWithWriter("prod", "not-a-level", &buf).GetLevel())
}
