package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerboseToggle(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebugSuppressedWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetVerbose(false)
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())
}

func TestVerboseOutputFormats(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Debug("candidates: %d", 12)
	Info("mode: %s", "keyword")
	Warn("fallback engaged")
	Section("Retrieval")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] candidates: 12")
	assert.Contains(t, out, "[INFO] mode: keyword")
	assert.Contains(t, out, "[WARN] fallback engaged")
	assert.Contains(t, out, "=== Retrieval ===")
}

func TestStageReportsElapsedTime(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	done := Stage("Ranking")
	done()

	out := buf.String()
	assert.Contains(t, out, "=== Ranking ===")
	assert.Contains(t, out, "Ranking finished in")
}

func TestStageSilentWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Stage("Ranking")()

	assert.Empty(t, buf.String())
}
