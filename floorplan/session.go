package floorplan

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tablemap/floorplan-app/viewport"
)

// SelectAction is the outcome of clicking a table node.
type SelectAction string

const (
	// ActionSelected means the clicked table became the selection.
	ActionSelected SelectAction = "selected"
	// ActionRefresh means the already-selected table was clicked again:
	// the selection stays and the caller should reload its detail
	// (active orders, bookings) for the side panel.
	ActionRefresh SelectAction = "refresh"
)

// Editor holds one staff member's ephemeral floor-plan state: selection,
// zone filter and viewport. It mirrors the per-mount state of the canvas
// UI and is never persisted.
type Editor struct {
	ID string

	mu         sync.Mutex
	selectedID uint  // 0 = none selected
	zoneFilter *uint // nil = all zones
	view       viewport.Viewport
	lastActive time.Time
}

func newEditor() *Editor {
	return &Editor{
		ID:         uuid.NewString(),
		view:       viewport.New(),
		lastActive: time.Now(),
	}
}

func (e *Editor) touch() {
	e.lastActive = time.Now()
}

// Select handles a click on a table node. Clicking the current selection
// keeps it selected and asks the caller to refresh its detail; clicking
// any other table switches the selection directly.
func (e *Editor) Select(tableID uint) SelectAction {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch()

	if e.selectedID == tableID {
		return ActionRefresh
	}
	e.selectedID = tableID
	return ActionSelected
}

// Deselect clears the selection.
func (e *Editor) Deselect() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch()
	e.selectedID = 0
}

// SelectedID returns the selected table id, zero when nothing is selected.
func (e *Editor) SelectedID() uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selectedID
}

// SetZoneFilter switches the active zone filter. When the new filter hides
// the current selection it is dropped, so the side panel never shows a
// table that is not on the canvas. isVisible answers whether a table id
// passes the new filter.
func (e *Editor) SetZoneFilter(zoneID *uint, isVisible func(tableID uint) bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch()

	e.zoneFilter = zoneID
	if e.selectedID != 0 && isVisible != nil && !isVisible(e.selectedID) {
		e.selectedID = 0
	}
}

// ZoneFilter returns the active zone filter, nil for all zones.
func (e *Editor) ZoneFilter() *uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.zoneFilter
}

// Viewport ops delegate to the viewport value type under the editor lock.

func (e *Editor) ZoomIn() viewport.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch()
	e.view = e.view.ZoomIn()
	return e.view
}

func (e *Editor) ZoomOut() viewport.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch()
	e.view = e.view.ZoomOut()
	return e.view
}

func (e *Editor) ResetView() viewport.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch()
	e.view = e.view.Reset()
	return e.view
}

func (e *Editor) Pan(dx, dy float64) viewport.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch()
	e.view = e.view.Pan(dx, dy)
	return e.view
}

func (e *Editor) Resize(width, windowHeight float64) viewport.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch()
	e.view = e.view.Resize(width, windowHeight)
	return e.view
}

func (e *Editor) View() viewport.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view
}

// Manager tracks the live editors keyed by session id. Sessions are cheap
// in-memory state; stale ones are swept by a background ticker.
type Manager struct {
	mu      sync.Mutex
	editors map[string]*Editor
}

func NewManager() *Manager {
	return &Manager{editors: make(map[string]*Editor)}
}

// Create registers a fresh editor session.
func (m *Manager) Create() *Editor {
	e := newEditor()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.editors[e.ID] = e
	return e
}

// Get returns the editor for a session id.
func (m *Manager) Get(id string) (*Editor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.editors[id]
	return e, ok
}

// Remove drops a session.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.editors, id)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.editors)
}

// CleanupStale removes sessions idle for longer than maxAge and returns
// how many were dropped.
func (m *Manager) CleanupStale(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, e := range m.editors {
		e.mu.Lock()
		stale := e.lastActive.Before(cutoff)
		e.mu.Unlock()
		if stale {
			delete(m.editors, id)
			removed++
		}
	}
	return removed
}
