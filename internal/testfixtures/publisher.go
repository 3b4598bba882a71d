package testfixtures

import (
	"context"
	"sync"

	"github.com/work-suite-api/internal/notify"
)

// Published - одно записанное событие
type Published struct {
	Room  string
	Event notify.Event
}

// RecordingPublisher запоминает все опубликованные события
type RecordingPublisher struct {
	mu     sync.Mutex
	events []Published
}

func (p *RecordingPublisher) Publish(_ context.Context, room string, event notify.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, Published{Room: room, Event: event})
	return nil
}

// Events возвращает копию записанных событий
func (p *RecordingPublisher) Events() []Published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Published(nil), p.events...)
}

// InRoom возвращает события, отправленные в комнату
func (p *RecordingPublisher) InRoom(room string) []notify.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []notify.Event
	for _, e := range p.events {
		if e.Room == room {
			out = append(out, e.Event)
		}
	}
	return out
}

// Reset очищает записанные события
func (p *RecordingPublisher) Reset() {
	p.mu.Lock()
	p.events = nil
	p.mu.Unlock()
}
