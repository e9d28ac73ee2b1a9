package floorplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablemap/floorplan-app/viewport"
)

func TestSelectTransitions(t *testing.T) {
	e := NewManager().Create()

	assert.Zero(t, e.SelectedID())

	action := e.Select(10)
	assert.Equal(t, ActionSelected, action)
	assert.Equal(t, uint(10), e.SelectedID())

	// Selecting another table switches directly, no intermediate state.
	action = e.Select(11)
	assert.Equal(t, ActionSelected, action)
	assert.Equal(t, uint(11), e.SelectedID())

	// Re-clicking the selection keeps it and asks for a refresh.
	action = e.Select(11)
	assert.Equal(t, ActionRefresh, action)
	assert.Equal(t, uint(11), e.SelectedID())

	e.Deselect()
	assert.Zero(t, e.SelectedID())
}

func TestZoneFilterAutoDeselect(t *testing.T) {
	e := NewManager().Create()
	e.Select(10)

	zone := uint(3)
	visible := func(tableID uint) bool { return tableID == 99 }

	e.SetZoneFilter(&zone, visible)
	require.NotNil(t, e.ZoneFilter())
	assert.Equal(t, zone, *e.ZoneFilter())
	// Table 10 is hidden by the filter, so the selection is dropped.
	assert.Zero(t, e.SelectedID())
}

func TestZoneFilterKeepsVisibleSelection(t *testing.T) {
	e := NewManager().Create()
	e.Select(10)

	zone := uint(3)
	e.SetZoneFilter(&zone, func(tableID uint) bool { return tableID == 10 })
	assert.Equal(t, uint(10), e.SelectedID())

	// Clearing the filter never touches the selection.
	e.SetZoneFilter(nil, func(uint) bool { return true })
	assert.Nil(t, e.ZoneFilter())
	assert.Equal(t, uint(10), e.SelectedID())
}

func TestEditorViewportOps(t *testing.T) {
	e := NewManager().Create()

	v := e.ZoomIn()
	assert.InDelta(t, 1.0+viewport.ZoomStep, v.Scale, 1e-9)

	v = e.ZoomOut()
	assert.InDelta(t, 1.0, v.Scale, 1e-9)

	e.Pan(50, -30)
	v = e.ResetView()
	assert.Equal(t, 1.0, v.Scale)
	assert.Zero(t, v.OffsetX)
	assert.Zero(t, v.OffsetY)
}

func TestManagerSessions(t *testing.T) {
	m := NewManager()

	a := m.Create()
	b := m.Create()
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, m.Count())

	got, ok := m.Get(a.ID)
	require.True(t, ok)
	assert.Same(t, a, got)

	m.Remove(a.ID)
	_, ok = m.Get(a.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Count())
}

func TestManagerCleanupStale(t *testing.T) {
	m := NewManager()
	stale := m.Create()
	fresh := m.Create()

	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-2 * time.Hour)
	stale.mu.Unlock()

	removed := m.CleanupStale(time.Hour)
	assert.Equal(t, 1, removed)

	_, ok := m.Get(stale.ID)
	assert.False(t, ok)
	_, ok = m.Get(fresh.ID)
	assert.True(t, ok)
}
