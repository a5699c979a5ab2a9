package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/internal/service/selection"
)

func TestList_RenderFullCatalogWithDisabled(t *testing.T) {
	now := datetime(2025, 3, 10, 12, 10)
	session := selection.NewSession(nil, "", now)
	adapter := newListAdapter(session, now)

	model := adapter.Render(session, now)

	require.Len(t, model.Items, domain.SlotsPerDay)
	assert.False(t, model.Empty)

	// Everything through 12:00 has passed; 12:30 onward is live.
	assert.True(t, model.Items[0].Disabled)  // 09:00
	assert.True(t, model.Items[6].Disabled)  // 12:00
	assert.False(t, model.Items[7].Disabled) // 12:30
	assert.Equal(t, "12:30", model.Items[7].Time)
	assert.Equal(t, "12:30 PM", model.Items[7].Display)
}

func TestList_FocusAnchorsOnSelection(t *testing.T) {
	now := datetime(2025, 3, 10, 8, 0)
	session := selection.NewSession(nil, "", now)
	session.SelectSlot(slot("14:00"), now)

	adapter := newListAdapter(session, now)
	model := adapter.Render(session, now)

	// 14:00 is index 10 in the catalog.
	assert.True(t, model.Items[10].Focused)
	assert.True(t, model.Items[10].Selected)
}

func TestList_FocusAnchorsOnFirstEnabled(t *testing.T) {
	now := datetime(2025, 3, 10, 12, 10)
	today := datetime(2025, 3, 10, 0, 0)
	session := selection.NewSession(&today, "", now)

	adapter := &listAdapter{}
	adapter.anchorFocus(session, now)

	// Fresh session already selected 12:30, the first enabled slot.
	model := adapter.Render(session, now)
	assert.True(t, model.Items[7].Focused)
}

func TestList_MoveFocusSkipsDisabled(t *testing.T) {
	now := datetime(2025, 3, 10, 12, 10)
	session := selection.NewSession(nil, "", now)
	adapter := newListAdapter(session, now)

	// Focus starts at 12:30 (index 7). Up has nowhere enabled to go.
	adapter.HandleInput(session, Input{Key: "up"}, now)
	assert.Equal(t, 7, adapter.focus)

	adapter.HandleInput(session, Input{Key: "down"}, now)
	assert.Equal(t, 8, adapter.focus)
}

func TestList_MoveFocusStopsAtEnd(t *testing.T) {
	now := datetime(2025, 3, 10, 8, 0)
	session := selection.NewSession(nil, "", now)
	adapter := newListAdapter(session, now)

	adapter.focus = domain.SlotsPerDay - 1
	adapter.HandleInput(session, Input{Key: "down"}, now)
	assert.Equal(t, domain.SlotsPerDay-1, adapter.focus)
}

func TestList_EnterSelectsFocusedSlot(t *testing.T) {
	now := datetime(2025, 3, 10, 8, 0)
	session := selection.NewSession(nil, "", now)
	adapter := newListAdapter(session, now)

	adapter.HandleInput(session, Input{Key: "down"}, now)
	adapter.HandleInput(session, Input{Key: "down"}, now)
	adapter.HandleInput(session, Input{Key: "enter"}, now)

	assert.Equal(t, slot("10:00"), session.SelectedSlot())
}

func TestList_EnterOnDisabledIsNoOp(t *testing.T) {
	now := datetime(2025, 3, 10, 12, 10)
	session := selection.NewSession(nil, "", now)
	adapter := newListAdapter(session, now)
	before := session.SelectedSlot()

	adapter.focus = 0 // 09:00, long passed
	adapter.HandleInput(session, Input{Key: "enter"}, now)

	assert.Equal(t, before, session.SelectedSlot())
}
