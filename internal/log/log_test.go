package log

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLogFormatsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := &log.Logger{Handler: NewHandler(&buf), Level: log.DebugLevel}

	logger.WithFields(log.Fields{"pass": "MEMO", "hits": 3}).Info("pass finished")

	line := buf.String()
	assert.Contains(t, line, " I pass finished hits=3 pass=MEMO\n")
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { log.SetLevel(log.InfoLevel) })

	require.NoError(t, SetLevel("DEBUG"))
	require.NoError(t, SetLevel("warn"))
	assert.Error(t, SetLevel("chatty"))
}

func TestInitLoggerFallsBackToError(t *testing.T) {
	t.Setenv(EnvLevel, "nonsense")
	t.Cleanup(func() { log.SetLevel(log.InfoLevel) })

	InitLogger()

	var buf bytes.Buffer
	log.SetHandler(NewHandler(&buf))
	log.Info("hidden")
	log.Error("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
