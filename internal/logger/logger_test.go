package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Format(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter(&buf, 0, "JSON")
		l.Info("hello", "user", "alice")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "alice", entry["user"])
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter(&buf, 0, "text")
		l.Info("hello", "user", "alice")

		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "user=alice")
	})
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 4, "text")

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
