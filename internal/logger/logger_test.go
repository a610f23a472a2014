package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestDebug_SilentByDefault(t *testing.T) {
	defer reset()
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("hidden %s", "message")

	assert.Empty(t, buf.String())
}

func TestDebug_PrintsWhenVerbose(t *testing.T) {
	defer reset()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("loaded %d documents", 7)

	assert.Equal(t, "[DEBUG] loaded 7 documents\n", buf.String())
}

func TestInfo_PrintsWhenVerbose(t *testing.T) {
	defer reset()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("fetched %s", "Go")

	assert.Equal(t, "[INFO] fetched Go\n", buf.String())
}

func TestWarn_AlwaysPrints(t *testing.T) {
	defer reset()
	var buf bytes.Buffer
	SetOutput(&buf)

	Warn("snapshot unreadable: %s", "no such file")

	assert.Equal(t, "[WARN] snapshot unreadable: no such file\n", buf.String())
}

func TestError_AlwaysPrints(t *testing.T) {
	defer reset()
	var buf bytes.Buffer
	SetOutput(&buf)

	Error("fetch failed")

	assert.Equal(t, "[ERROR] fetch failed\n", buf.String())
}

func TestIsVerbose(t *testing.T) {
	defer reset()

	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
}
