package event

import (
	"sync"

	"github.com/rotasegura/beacon/internal/logger"
)

// represents a registered event listener
type listener struct {
	id        int
	eventType EventType
	channel   chan Event
	// closed on removal to release pending deliveries
	removed chan struct{}
}

// EventManager implements the Manager interface
type EventManager struct {
	listeners []*listener
	nextID    int
	log       logger.Logger
	mux       sync.RWMutex
}

// NewEventManager returns a new instance of EventManager
func NewEventManager() *EventManager {
	return &EventManager{
		listeners: []*listener{},
		nextID:    1,
		log:       logger.New(),
		mux:       sync.RWMutex{},
	}
}

// RegisterListener registers a channel to receive events of eventType and
// returns an id that can be used to remove it
func (m *EventManager) RegisterListener(eventType EventType, channel chan Event) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	l := &listener{
		id:        m.nextID,
		eventType: eventType,
		channel:   channel,
		removed:   make(chan struct{}),
	}

	m.listeners = append(m.listeners, l)
	m.nextID++

	return l.id
}

// RemoveListener removes the listener with id
func (m *EventManager) RemoveListener(id int) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	listeners := []*listener{}

	for _, l := range m.listeners {
		if l.id == id {
			close(l.removed)
			continue
		}

		listeners = append(listeners, l)
	}

	m.listeners = listeners

	return id
}

// Send delivers evt to every listener registered for its type. Delivery
// happens on separate goroutines so a slow listener never blocks the
// sender. Deliveries still pending when a listener is removed are dropped.
func (m *EventManager) Send(evt Event) {
	m.mux.RLock()
	defer m.mux.RUnlock()

	for _, l := range m.listeners {
		if l.eventType == evt.Type {
			go m.deliver(l, evt)
		}
	}
}

func (m *EventManager) deliver(l *listener, evt Event) {
	select {
	case l.channel <- evt:
	case <-l.removed:
		m.log.Debug().
			Int("listener", l.id).
			Str("type", string(evt.Type)).
			Msg("dropped event for removed listener")
	}
}

// ReportFatalError sends a fatal error event
func (m *EventManager) ReportFatalError(err error) {
	m.log.Error().Err(err).Msg("fatal error")

	m.Send(Event{
		Type:    FatalErrorEventType,
		Payload: err,
	})
}

// ReportError sends a non-fatal error event
func (m *EventManager) ReportError(err error) {
	m.log.Error().Err(err).Msg("error")

	m.Send(Event{
		Type:    ErrorEventType,
		Payload: err,
	})
}
