// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-box/internal/config"
	"github.com/MKhiriev/go-cipher-box/internal/logger"
	"github.com/MKhiriev/go-cipher-box/internal/notify"
	"github.com/MKhiriev/go-cipher-box/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestNotifyPump_ForwardsEvents(t *testing.T) {
	center := notify.NewCenter(config.UI{
		MessageBaseDuration:   time.Hour,
		MessageDurationFactor: 0,
		FadeInDelay:           time.Millisecond,
		FadeOutDuration:       time.Millisecond,
	}, notify.NewSequence(), logger.Nop())
	defer center.Close()

	var mu sync.Mutex
	var got []notify.Event
	pump := NewNotifyPump(center, func(e notify.Event) {
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
	})

	pump.Run()
	defer pump.Stop()

	id := center.ShowInfo("pumped")

	deadline := time.Now().Add(time.Second)
	for {
		mu.Lock()
		n := len(got)
		mu.Unlock()
		if n > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) == 0 {
		t.Fatalf("no events forwarded")
	}
	if got[0].ID != id || got[0].State != models.StateCreated {
		t.Fatalf("unexpected first event: %+v", got[0])
	}
}

func TestNotifyPump_StopIsIdempotent(t *testing.T) {
	center := notify.NewCenter(config.UI{
		MessageBaseDuration: time.Hour,
		FadeInDelay:         time.Millisecond,
		FadeOutDuration:     time.Millisecond,
	}, notify.NewSequence(), logger.Nop())
	defer center.Close()

	pump := NewNotifyPump(center, func(notify.Event) {})
	pump.Stop() // not running yet

	pump.Run()
	pump.Stop()
	pump.Stop()
}
