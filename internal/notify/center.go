// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify implements timed, fading UI notifications.
//
// Every message runs through a fixed lifecycle,
//
//	Created → FadingIn → Visible → FadingOut → Removed,
//
// driven by its own set of one-shot timers. Messages are fully
// independent: no shared ordering, no cap on concurrently visible
// messages, no coalescing of duplicates.
//
// Duration policy: a message stays visible for
// BaseDuration + characters × DurationFactor, measured in runes. The
// character metric (rather than a word count) is the documented contract;
// longer texts always outlive shorter ones.
package notify

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-cipher-box/internal/config"
	"github.com/MKhiriev/go-cipher-box/internal/logger"
	"github.com/MKhiriev/go-cipher-box/models"
)

// Event signals one lifecycle transition of a message, published on
// [Center.Events] so the UI can repaint.
type Event struct {
	ID    string
	State models.MessageState
}

// Center owns all active messages and their timers. All state mutation is
// serialized by an internal mutex because expiry timers fire on their own
// goroutines.
type Center struct {
	mu sync.Mutex

	seq *Sequence
	log *logger.Logger

	baseDuration   time.Duration
	durationFactor time.Duration
	fadeInDelay    time.Duration
	fadeOutWindow  time.Duration

	messages map[string]*models.Message
	order    []string
	timers   map[string][]*time.Timer
	events   chan Event
	closed   bool
}

// NewCenter constructs a Center with the given UI timing configuration
// and ID sequence.
func NewCenter(cfg config.UI, seq *Sequence, log *logger.Logger) *Center {
	return &Center{
		seq:            seq,
		log:            log,
		baseDuration:   cfg.MessageBaseDuration,
		durationFactor: cfg.MessageDurationFactor,
		fadeInDelay:    cfg.FadeInDelay,
		fadeOutWindow:  cfg.FadeOutDuration,
		messages:       make(map[string]*models.Message),
		timers:         make(map[string][]*time.Timer),
		events:         make(chan Event, 64),
	}
}

// AddMessage inserts a new message in the Created state, schedules its
// fade-in and expiry, and returns its id.
func (c *Center) AddMessage(text string, kind models.MessageKind) string {
	duration := c.baseDuration + time.Duration(len([]rune(text)))*c.durationFactor

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ""
	}

	msg := &models.Message{
		ID:        c.seq.Next(),
		Text:      text,
		Kind:      kind,
		CreatedAt: time.Now(),
		Duration:  duration,
		State:     models.StateCreated,
	}
	c.messages[msg.ID] = msg
	c.order = append(c.order, msg.ID)

	c.timers[msg.ID] = []*time.Timer{
		time.AfterFunc(c.fadeInDelay, func() { c.transition(msg.ID, models.StateFadingIn) }),
		time.AfterFunc(c.fadeInDelay+c.fadeOutWindow, func() { c.transition(msg.ID, models.StateVisible) }),
		time.AfterFunc(duration, func() { c.transition(msg.ID, models.StateFadingOut) }),
		time.AfterFunc(duration+c.fadeOutWindow, func() { c.detach(msg.ID) }),
	}

	c.log.Debug().Str("id", msg.ID).Str("kind", kind.String()).Dur("duration", duration).Msg("message added")
	c.publish(Event{ID: msg.ID, State: models.StateCreated})
	return msg.ID
}

// RemoveMessage dismisses a message early, cancelling its pending timers.
// Idempotent: removing an unknown or already-removed id is a no-op.
func (c *Center) RemoveMessage(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detachLocked(id)
}

// Active returns a snapshot of all not-yet-removed messages in insertion
// order.
func (c *Center) Active() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Message, 0, len(c.order))
	for _, id := range c.order {
		if msg, ok := c.messages[id]; ok {
			out = append(out, *msg)
		}
	}
	return out
}

// Events exposes lifecycle transitions for the UI pump. Events are
// dropped rather than blocking a timer goroutine when the consumer
// lags behind; the UI re-reads the full state via [Center.Active] on
// every event anyway.
func (c *Center) Events() <-chan Event {
	return c.events
}

// Close cancels all timers and closes the event channel. Further
// AddMessage calls become no-ops.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	for id, timers := range c.timers {
		for _, t := range timers {
			t.Stop()
		}
		delete(c.timers, id)
	}
	close(c.events)
}

// ShowInfo adds an info-kind message.
func (c *Center) ShowInfo(text string) string { return c.AddMessage(text, models.KindInfo) }

// ShowSuccess adds a success-kind message.
func (c *Center) ShowSuccess(text string) string { return c.AddMessage(text, models.KindSuccess) }

// ShowError adds an error-kind message.
func (c *Center) ShowError(text string) string { return c.AddMessage(text, models.KindError) }

// ShowWarning adds a warning-kind message.
func (c *Center) ShowWarning(text string) string { return c.AddMessage(text, models.KindWarning) }

// transition advances a message to state. Transitions are strictly
// forward, so a late timer firing after an early manual removal (or after
// a later state was already reached) does nothing.
func (c *Center) transition(id string, state models.MessageState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg, ok := c.messages[id]
	if !ok || c.closed || msg.State >= state {
		return
	}

	msg.State = state
	c.publish(Event{ID: id, State: state})
}

func (c *Center) detach(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detachLocked(id)
}

func (c *Center) detachLocked(id string) {
	if _, ok := c.messages[id]; !ok {
		return
	}

	for _, t := range c.timers[id] {
		t.Stop()
	}
	delete(c.timers, id)
	delete(c.messages, id)

	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	if !c.closed {
		c.publish(Event{ID: id, State: models.StateRemoved})
	}
}

func (c *Center) publish(e Event) {
	select {
	case c.events <- e:
	default:
	}
}
