package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerFieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewFromZap(zap.New(core), LevelInfo)

	l.Debug("hidden")
	l.With(String("player", "ana")).Info("moved", Int("cell", 38), Bool("jump", true))
	l.Warn("bad layout", Error(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "moved", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "ana", ctx["player"])
	assert.EqualValues(t, 38, ctx["cell"])
	assert.Equal(t, true, ctx["jump"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	l.Debug("visible")
	assert.Equal(t, 3, logs.Len())
}

func TestNewRejectsUnknownEncoding(t *testing.T) {
	_, err := New(LevelInfo, "xml")
	assert.Error(t, err)

	l, err := New(LevelWarn, EncodingConsole)
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, l.GetLevel())
}
