package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerIsCachedPerComponent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	a := NewLogger("store")
	assert.Same(t, a, NewLogger("store"))
	assert.NotSame(t, a, NewLogger("httpapi"))
	assert.Equal(t, "store", a.Data["component"])
}

func TestLevelAndFormatFromEnv(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFormat, "json")

	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	log := NewLogger("facade")
	assert.Equal(t, logrus.DebugLevel, log.Logger.GetLevel())

	log.WithField("action", "[User] Login User").Debug("dispatched")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "facade", line["component"])
	assert.Equal(t, "[User] Login User", line["action"])
	assert.Equal(t, "dispatched", line["msg"])
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv(EnvLevel, "loud")

	assert.Equal(t, logrus.InfoLevel, NewLogger("x").Logger.GetLevel())
}
