package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, "json", "debug")
	log.Debug("job closed", slog.String("job_id", "job-1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "job closed", line["msg"])
	require.Equal(t, "job-1", line["job_id"])
	require.Equal(t, "DEBUG", line["level"])
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelWarn, parseLevel("warn"))
	require.Equal(t, slog.LevelInfo, parseLevel("loud"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
}
