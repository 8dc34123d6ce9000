package debugui

import (
	"testing"

	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fragmentedArena(t *testing.T) *arena.Arena {
	t.Helper()
	a := arena.New(0)
	h0 := a.Allocate(arena.Values{Position: arena.Some(geom.Vec(0, 0))})
	a.Allocate(arena.Values{Light: arena.Some(arena.LightParams{Strength: 1})})
	h2 := a.Allocate(arena.Values{})
	require.NoError(t, a.Free(h0))
	require.NoError(t, a.Free(h2))
	return a
}

func TestBuildRows(t *testing.T) {
	rows := buildRows(fragmentedArena(t))

	require.Len(t, rows, 3)
	assert.Equal(t, "free -> end", rows[0].State())
	assert.Equal(t, "occupied", rows[1].State())
	assert.Equal(t, []string{"light"}, rows[1].Attributes)
	assert.Equal(t, "free -> 0", rows[2].State())
}

func TestFilterRows(t *testing.T) {
	rows := buildRows(fragmentedArena(t))

	assert.Len(t, filterRows(rows, "", false), 3)
	assert.Len(t, filterRows(rows, "", true), 1)
	assert.Len(t, filterRows(rows, "LIGHT", false), 1)
	assert.Len(t, filterRows(rows, "free", false), 2)
	assert.Empty(t, filterRows(rows, "polygon", false))
}

func TestSortRows(t *testing.T) {
	a := fragmentedArena(t)
	reused := a.Allocate(arena.Values{})
	require.Equal(t, uint32(2), reused.Index())
	rows := buildRows(a)

	sortRows(rows, 0, false)
	assert.Equal(t, uint32(2), rows[0].Index)

	sortRows(rows, 1, true)
	assert.True(t, rows[0].Occupied)

	sortRows(rows, 2, false)
	assert.Equal(t, uint64(1), rows[0].Generation)
	assert.Equal(t, uint32(2), rows[0].Index)
}

func TestPageBounds(t *testing.T) {
	start, end := pageBounds(250, 0, 100)
	assert.Equal(t, 0, start)
	assert.Equal(t, 100, end)

	start, end = pageBounds(250, 2, 100)
	assert.Equal(t, 200, start)
	assert.Equal(t, 250, end)

	start, end = pageBounds(50, 3, 100)
	assert.Equal(t, 50, start)
	assert.Equal(t, 50, end)
}

func TestSlotBrowserRefresh(t *testing.T) {
	a := fragmentedArena(t)
	sb := NewSlotBrowser(10)

	sb.refresh(a)
	require.Len(t, sb.rows, 3)

	a.Allocate(arena.Values{})
	a.Allocate(arena.Values{})
	a.Allocate(arena.Values{})
	sb.refresh(a)
	assert.Len(t, sb.rows, 4)

	_, ok := sb.Selected()
	assert.False(t, ok)
}

func TestSlotBrowserRefreshSeesReoccupiedSlot(t *testing.T) {
	a := arena.New(0)
	first := a.Allocate(arena.Values{})
	second := a.Allocate(arena.Values{})
	require.NoError(t, a.Free(first))
	a.Allocate(arena.Values{})

	sb := NewSlotBrowser(10)
	sb.refresh(a)
	require.Len(t, sb.rows, 2)
	assert.Equal(t, uint64(0), sb.rows[1].Generation)
	assert.Empty(t, sb.rows[1].Attributes)

	// Same slot count, live count and generation as before.
	require.NoError(t, a.Free(second))
	a.Allocate(arena.Values{Light: arena.Some(arena.LightParams{Strength: 1})})
	sb.refresh(a)

	assert.Equal(t, uint64(1), sb.rows[1].Generation)
	assert.Equal(t, []string{"light"}, sb.rows[1].Attributes)
}

func TestStatsWindowRecord(t *testing.T) {
	sw := NewStatsWindow(4)

	sw.record(0.004)
	avg := sw.record(0.004)

	assert.InDelta(t, 2.0, avg, 1e-4)
	assert.Equal(t, 2, sw.frameIndex)
}
