package workers

import (
	"sync"

	"github.com/MKhiriev/go-cipher-box/internal/notify"
)

// NotifyPump forwards notification lifecycle events from a notify.Center
// to a consumer callback, in practice a running UI program, so
// timer-driven state transitions repaint the screen.
type NotifyPump struct {
	center *notify.Center
	send   func(notify.Event)

	mu      sync.Mutex
	stopped chan struct{}
	wg      sync.WaitGroup
}

// NewNotifyPump creates a pump that calls send for every event published
// by center. The pump is idle until Run is called.
func NewNotifyPump(center *notify.Center, send func(notify.Event)) *NotifyPump {
	return &NotifyPump{center: center, send: send}
}

// Run implements [Worker]. It spawns the forwarding goroutine, which exits
// when the center's event channel is closed or Stop is called. Calling Run
// twice restarts the pump.
func (p *NotifyPump) Run() {
	p.Stop()

	p.mu.Lock()
	p.stopped = make(chan struct{})
	stopped := p.stopped
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		for {
			select {
			case <-stopped:
				return
			case e, ok := <-p.center.Events():
				if !ok {
					return
				}
				p.send(e)
			}
		}
	}()
}

// Stop terminates the forwarding goroutine and blocks until it has fully
// exited. Safe to call when the pump is not running.
func (p *NotifyPump) Stop() {
	p.mu.Lock()
	stopped := p.stopped
	p.stopped = nil
	p.mu.Unlock()

	if stopped != nil {
		close(stopped)
	}
	p.wg.Wait()
}
