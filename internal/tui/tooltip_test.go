package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shownTooltip(f fieldID) tooltipModel {
	m := newTooltipModel(0, 0)
	m.handleShow(tooltipShowMsg{field: f, seq: m.seq})
	return m
}

func TestTooltip_ShowAfterDelayMatchingSeq(t *testing.T) {
	m := newTooltipModel(0, 0)

	m.handleShow(tooltipShowMsg{field: fieldKey, seq: m.seq})

	assert.True(t, m.showing)
	assert.Equal(t, fieldKey, m.visible)
}

func TestTooltip_StaleShowIgnored(t *testing.T) {
	m := newTooltipModel(0, 0)
	stale := m.seq
	m.focusChanged(fieldIV)

	m.handleShow(tooltipShowMsg{field: fieldKey, seq: stale})

	assert.False(t, m.showing)
}

func TestTooltip_PreviousHintLingersUntilDelayedHide(t *testing.T) {
	m := shownTooltip(fieldKey)

	m.focusChanged(fieldIV)

	// The old hint stays up until its hide timer fires.
	require.True(t, m.showing)
	require.Equal(t, fieldKey, m.visible)

	m.handleHide(tooltipHideMsg{field: fieldKey, seq: m.seq})
	assert.False(t, m.showing)

	m.handleShow(tooltipShowMsg{field: fieldIV, seq: m.seq})
	assert.True(t, m.showing)
	assert.Equal(t, fieldIV, m.visible)
}

func TestTooltip_LateHideForOldFieldIgnoredAfterNewShow(t *testing.T) {
	m := shownTooltip(fieldKey)
	m.focusChanged(fieldIV)

	// Show for the new field lands before the old field's hide.
	m.handleShow(tooltipShowMsg{field: fieldIV, seq: m.seq})
	m.handleHide(tooltipHideMsg{field: fieldKey, seq: m.seq})

	assert.True(t, m.showing)
	assert.Equal(t, fieldIV, m.visible)
}

func TestTooltip_FocusLostSchedulesHide(t *testing.T) {
	m := shownTooltip(fieldKey)

	cmd := m.focusLost()
	require.NotNil(t, cmd)

	m.handleHide(tooltipHideMsg{field: fieldKey, seq: m.seq})
	assert.False(t, m.showing)
	assert.Equal(t, fieldID(-1), m.visible)
}

func TestTooltip_FocusLostWithNothingShowing(t *testing.T) {
	m := newTooltipModel(0, 0)

	assert.Nil(t, m.focusLost())
}
