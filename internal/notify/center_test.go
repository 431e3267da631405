package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cipher-box/internal/config"
	"github.com/MKhiriev/go-cipher-box/internal/logger"
	"github.com/MKhiriev/go-cipher-box/models"
)

func newTestCenter(base, factor time.Duration) *Center {
	return NewCenter(config.UI{
		MessageBaseDuration:   base,
		MessageDurationFactor: factor,
		FadeInDelay:           time.Millisecond,
		FadeOutDuration:       5 * time.Millisecond,
	}, NewSequence(), logger.Nop())
}

func TestAddMessage_PresentImmediately(t *testing.T) {
	c := newTestCenter(time.Second, 10*time.Millisecond)
	defer c.Close()

	id := c.AddMessage("ok", models.KindSuccess)
	require.NotEmpty(t, id)

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)
	assert.Equal(t, "ok", active[0].Text)
	assert.Equal(t, models.KindSuccess, active[0].Kind)
	assert.Equal(t, models.StateCreated, active[0].State)
	assert.GreaterOrEqual(t, active[0].Duration, time.Second)
}

func TestAddMessage_DurationGrowsWithCharacterCount(t *testing.T) {
	c := newTestCenter(time.Second, 10*time.Millisecond)
	defer c.Close()

	short := c.AddMessage(strings.Repeat("a", 10), models.KindInfo)
	long := c.AddMessage(strings.Repeat("a", 100), models.KindInfo)

	var shortDur, longDur time.Duration
	for _, m := range c.Active() {
		switch m.ID {
		case short:
			shortDur = m.Duration
		case long:
			longDur = m.Duration
		}
	}

	assert.Greater(t, longDur, shortDur)
	assert.Equal(t, time.Second+100*10*time.Millisecond, longDur)
}

func TestAddMessage_IDsUniqueForIdenticalText(t *testing.T) {
	c := newTestCenter(time.Second, 0)
	defer c.Close()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := c.AddMessage("same text", models.KindInfo)
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestMessage_LifecycleTransitions(t *testing.T) {
	c := newTestCenter(30*time.Millisecond, 0)
	defer c.Close()

	id := c.AddMessage("hi", models.KindInfo)

	waitForState := func(want models.MessageState) {
		t.Helper()
		require.Eventually(t, func() bool {
			for _, m := range c.Active() {
				if m.ID == id {
					return m.State == want
				}
			}
			return false
		}, time.Second, time.Millisecond, "message never reached state %d", want)
	}

	waitForState(models.StateFadingIn)
	waitForState(models.StateVisible)
	waitForState(models.StateFadingOut)

	// Finally detached.
	require.Eventually(t, func() bool {
		return len(c.Active()) == 0
	}, time.Second, time.Millisecond)
}

func TestRemoveMessage_Idempotent(t *testing.T) {
	c := newTestCenter(time.Hour, 0)
	defer c.Close()

	id := c.AddMessage("dismiss me", models.KindWarning)
	require.Len(t, c.Active(), 1)

	c.RemoveMessage(id)
	assert.Empty(t, c.Active())

	// Second removal is a no-op, not a panic or a duplicate event.
	c.RemoveMessage(id)
	assert.Empty(t, c.Active())

	c.RemoveMessage("no-such-id")
}

func TestRemoveMessage_CancelsPendingTimers(t *testing.T) {
	c := newTestCenter(20*time.Millisecond, 0)
	defer c.Close()

	id := c.AddMessage("short lived", models.KindInfo)
	c.RemoveMessage(id)

	// Give the cancelled timers a chance to fire; none of them should
	// resurrect the message.
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, c.Active())
}

func TestMessages_AreIndependent(t *testing.T) {
	c := newTestCenter(time.Hour, 0)
	defer c.Close()

	first := c.ShowInfo("first")
	c.ShowError("second")
	c.ShowSuccess("third")
	require.Len(t, c.Active(), 3)

	c.RemoveMessage(first)

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "second", active[0].Text)
	assert.Equal(t, "third", active[1].Text)
}

func TestConvenienceWrappers_SetKind(t *testing.T) {
	c := newTestCenter(time.Hour, 0)
	defer c.Close()

	c.ShowInfo("a")
	c.ShowSuccess("b")
	c.ShowError("c")
	c.ShowWarning("d")

	kinds := make([]models.MessageKind, 0, 4)
	for _, m := range c.Active() {
		kinds = append(kinds, m.Kind)
	}
	assert.Equal(t, []models.MessageKind{models.KindInfo, models.KindSuccess, models.KindError, models.KindWarning}, kinds)
}

func TestEvents_PublishTransitions(t *testing.T) {
	c := newTestCenter(20*time.Millisecond, 0)
	defer c.Close()

	id := c.AddMessage("evented", models.KindInfo)

	deadline := time.After(time.Second)
	var states []models.MessageState
	for len(states) < 5 {
		select {
		case e := <-c.Events():
			if e.ID == id {
				states = append(states, e.State)
			}
		case <-deadline:
			t.Fatalf("timed out, got states %v", states)
		}
	}

	assert.Equal(t, []models.MessageState{
		models.StateCreated,
		models.StateFadingIn,
		models.StateVisible,
		models.StateFadingOut,
		models.StateRemoved,
	}, states)
}

func TestClose_StopsFurtherAdds(t *testing.T) {
	c := newTestCenter(time.Hour, 0)
	c.Close()

	assert.Empty(t, c.AddMessage("late", models.KindInfo))
	c.Close() // idempotent
}

func TestSequence_MonotonicCounter(t *testing.T) {
	s := NewSequence()

	first := s.Next()
	second := s.Next()

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "1-"), "got %q", first)
	assert.True(t, strings.HasPrefix(second, "2-"), "got %q", second)
}
