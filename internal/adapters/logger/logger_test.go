package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relay/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithOutput(buf)

	lg.Info("polling for tasks", "tasklist", "lb")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="polling for tasks"`)
	assert.Contains(t, out, "tasklist=lb")
}

func TestLogger_Warn(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithOutput(buf)

	lg.Warn("some warning")

	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLogger_Debug_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithOutput(buf)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	require.NoError(t, lg.SetLevel("debug"))
	lg.Debug("shown")
	assert.Contains(t, buf.String(), "shown")

	require.NoError(t, lg.SetLevel("ERROR"))
	lg.Info("hidden again")
	assert.NotContains(t, buf.String(), "hidden again")
}

func TestLogger_SetLevel_Invalid(t *testing.T) {
	lg := logger.NewWithOutput(&bytes.Buffer{})

	assert.Error(t, lg.SetLevel("verbose"))
}

func TestLogger_Error_Structured(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithOutput(buf)

	lg.Error(zerr.With(zerr.Wrap(os.ErrPermission, "failed to write resource"), "path", "/run/x.xml"), "activity", "setPolicy")

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "activity=setPolicy")
	assert.Contains(t, out, "permission denied")
	assert.Contains(t, out, "path=/run/x.xml")
}

func TestLogger_Error_Nil(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithOutput(buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetFormat_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithOutput(buf)
	require.NoError(t, lg.SetFormat("json"))

	lg.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_SetFormat_Pretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.NewWithOutput(buf)
	require.NoError(t, lg.SetFormat("pretty"))

	lg.Error(zerr.Wrap(errors.New("connection refused"), "publish failed"))

	assert.Equal(t, "✗ Error: publish failed\n\n  Caused by:\n    → connection refused\n", buf.String())
}

func TestLogger_SetFormat_Invalid(t *testing.T) {
	lg := logger.NewWithOutput(&bytes.Buffer{})

	assert.Error(t, lg.SetFormat("xml"))
}

func TestLogger_SetOutput(t *testing.T) {
	first := &bytes.Buffer{}
	second := &bytes.Buffer{}
	lg := logger.NewWithOutput(first)

	lg.SetOutput(second)
	lg.Info("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "moved")
}
