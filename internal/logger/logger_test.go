package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Helper Functions
// ============================================================================

// captureOutput redirects logger output to a buffer for testing.
// Returns the buffer and a cleanup function restoring the previous state.
func captureOutput() (*bytes.Buffer, func()) {
	buf := new(bytes.Buffer)

	mu.Lock()
	originalOutput := output
	originalColor := useColor
	originalNoColor := noColor
	output = buf
	useColor = false
	noColor = false
	mu.Unlock()

	originalLevel := currentLevel.Load()
	originalFormat := currentFormat.Load()
	reconfigure()

	cleanup := func() {
		mu.Lock()
		output = originalOutput
		useColor = originalColor
		noColor = originalNoColor
		mu.Unlock()
		currentLevel.Store(originalLevel)
		currentFormat.Store(originalFormat)
		reconfigure()
	}

	return buf, cleanup
}

// ============================================================================
// Level Filtering Tests
// ============================================================================

func TestLevelFiltering(t *testing.T) {
	t.Run("DebugLevelShowsAllMessages", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("DEBUG")

		Debug("debug message")
		Info("info message")
		Warn("warn message")
		Error("error message")

		out := buf.String()
		assert.Contains(t, out, "DEBUG debug message")
		assert.Contains(t, out, "INFO info message")
		assert.Contains(t, out, "WARN warn message")
		assert.Contains(t, out, "ERROR error message")
	})

	t.Run("WarnLevelFiltersDebugAndInfo", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("WARN")

		Debug("debug message")
		Info("info message")
		Warn("warn message")
		Error("error message")

		out := buf.String()
		assert.NotContains(t, out, "debug message")
		assert.NotContains(t, out, "info message")
		assert.Contains(t, out, "warn message")
		assert.Contains(t, out, "error message")
	})

	t.Run("ErrorLevelShowsOnlyErrors", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("ERROR")

		Warn("warn message")
		Error("error message")

		out := buf.String()
		assert.NotContains(t, out, "warn message")
		assert.Contains(t, out, "error message")
	})
}

func TestSetLevel(t *testing.T) {
	t.Run("SetLevelIsCaseInsensitive", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("debug")
		Debug("test message")
		assert.Contains(t, buf.String(), "test message")
		assert.Equal(t, LevelDebug, GetLevel())
	})

	t.Run("SetLevelIgnoresInvalidValues", func(t *testing.T) {
		_, cleanup := captureOutput()
		defer cleanup()

		SetLevel("INFO")
		SetLevel("LOUD")
		assert.Equal(t, LevelInfo, GetLevel())
	})
}

// ============================================================================
// Message Formatting Tests
// ============================================================================

func TestMessageFormatting(t *testing.T) {
	t.Run("PrefixesProgramName", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("WARN")
		Warn("mount table is empty")

		assert.Equal(t, "mountinfo: WARN mount table is empty\n", buf.String())
	})

	t.Run("FormatsStructuredFields", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("DEBUG")
		Debug("record rejected", KeyTarget, "/run", KeyStage, "fstype")

		assert.Contains(t, buf.String(), "record rejected target=/run stage=fstype")
	})

	t.Run("QuotesValuesWithBlanks", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("WARN")
		Warn("odd", KeyOptions, "NFS exported,local", KeyValue, "")

		out := buf.String()
		assert.Contains(t, out, `options="NFS exported,local"`)
		assert.Contains(t, out, `value=""`)
	})

	t.Run("FormatsErrors", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("WARN")
		Error("failed", KeyError, errors.New("no such file"))

		assert.Contains(t, buf.String(), `error="no such file"`)
	})

	t.Run("QualifiesGroupedKeys", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		h := NewColorTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}, false)
		slog.New(h).WithGroup("record").Info("seen", "fstype", "ext4")

		assert.Contains(t, buf.String(), "record.fstype=ext4")
	})

	t.Run("ColorWrapsLevel", func(t *testing.T) {
		buf := new(bytes.Buffer)
		h := NewColorTextHandler(buf, nil, true)
		slog.New(h).Error("boom")

		assert.Contains(t, buf.String(), colorRed+"ERROR"+colorReset)
	})
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

// ============================================================================
// JSON Format Tests
// ============================================================================

func TestJSONFormat(t *testing.T) {
	t.Run("JSONFormatProducesValidJSON", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("DEBUG")
		SetFormat("json")
		Debug("record accepted", KeyValue, "/home")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "record accepted", entry["msg"])
		assert.Equal(t, "/home", entry[KeyValue])
		assert.Equal(t, "DEBUG", entry["level"])
	})

	t.Run("InvalidFormatIgnored", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetFormat("text")
		SetFormat("xml")
		Warn("still text")

		assert.True(t, strings.HasPrefix(buf.String(), "mountinfo: WARN"))
	})
}

// ============================================================================
// Init Tests
// ============================================================================

func TestInit(t *testing.T) {
	t.Run("InitWithWriter", func(t *testing.T) {
		_, cleanup := captureOutput()
		defer cleanup()

		buf := new(bytes.Buffer)
		InitWithWriter(buf, "INFO", "text", false)
		Info("hello")

		assert.Contains(t, buf.String(), "INFO hello")
	})

	t.Run("InitWithFileOutput", func(t *testing.T) {
		_, cleanup := captureOutput()
		defer cleanup()

		path := filepath.Join(t.TempDir(), "mountinfo.log")
		require.NoError(t, Init(Config{Level: "INFO", Format: "text", Output: path}))
		Info("to file")
		require.NoError(t, Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "INFO to file")
	})

	t.Run("InitWithUnwritableFile", func(t *testing.T) {
		_, cleanup := captureOutput()
		defer cleanup()

		err := Init(Config{Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
		assert.Error(t, err)
	})

	t.Run("NoColorDisablesColor", func(t *testing.T) {
		_, cleanup := captureOutput()
		defer cleanup()

		buf := new(bytes.Buffer)
		InitWithWriter(buf, "WARN", "text", true)
		require.NoError(t, Init(Config{NoColor: true}))
		Warn("plain")

		assert.Equal(t, "mountinfo: WARN plain\n", buf.String())
	})
}

func TestFieldHelpers(t *testing.T) {
	assert.True(t, Err(nil).Equal(slog.Attr{}))
	assert.Equal(t, "boom", Err(errors.New("boom")).Value.String())
	assert.Equal(t, KeyStage, Stage("node").Key)
	assert.Equal(t, "/run", Target("/run").Value.String())
}

func BenchmarkLogDisabled(b *testing.B) {
	InitWithWriter(new(bytes.Buffer), "ERROR", "text", false)
	for i := 0; i < b.N; i++ {
		Debug("disabled", KeyTarget, "/")
	}
}
