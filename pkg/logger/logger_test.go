package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BusinessHub-api/pkg/logger"
)

func TestNew_JSONComNivel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	l.Info().Msg("ignorado")
	l.Component("http").Warn().Str("path", "/x").Msg("lento")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, "/x", entry["path"])
	assert.Equal(t, "lento", entry["message"])
}

func TestNew_NivelInvalidoViraInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "barulhento", Output: &buf})

	l.Debug().Msg("não sai")
	l.Info().Msg("sai")
	assert.Contains(t, buf.String(), `"message":"sai"`)
	assert.NotContains(t, buf.String(), "não sai")
}
