package main

import (
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "ebiten", cfg.backend)
	assert.Equal(t, slog.LevelInfo, cfg.logLevel)

	cfg, err = parseFlags([]string{"-backend", "term", "-emit", "0.25", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, "term", cfg.backend)
	assert.Equal(t, 0.25, cfg.emit)
	assert.Equal(t, slog.LevelDebug, cfg.logLevel)

	_, err = parseFlags([]string{"-backend", "opengl"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"-emit", "-1"})
	assert.Error(t, err)
}

func TestNewScheduler(t *testing.T) {
	s := newScheduler(config{emit: 0.1}, nil)
	assert.Equal(t, 3, s.Arena().Count())
	assert.Len(t, s.Stats().Systems, 3)

	for i := 0; i < 30; i++ {
		require.NoError(t, s.Once(1.0/60))
	}
	assert.Greater(t, s.Arena().Count(), 3)
	require.NoError(t, s.Arena().Verify())

	s = newScheduler(config{}, nil)
	assert.Len(t, s.Stats().Systems, 2)
}

func TestQuitKey(t *testing.T) {
	assert.True(t, quitKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, quitKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, quitKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}
