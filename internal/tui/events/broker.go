package events

import "sync"

// wildcard subscribes a channel to every event type.
const wildcard EventType = "*"

// Broker distributes events to subscribed channels. Delivery is
// best-effort: a subscriber that is not draining its channel loses events
// rather than blocking publishers.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[EventType][]chan Event
	bufferSize  int
}

// NewBroker creates an event broker.
func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  16,
	}
}

// Subscribe returns a channel receiving the given event types. With no
// types it receives everything.
func (b *Broker) Subscribe(eventTypes ...EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)
	if len(eventTypes) == 0 {
		eventTypes = []EventType{wildcard}
	}
	for _, eventType := range eventTypes {
		b.subscribers[eventType] = append(b.subscribers[eventType], ch)
	}
	return ch
}

// Unsubscribe removes ch from the given event types, or from all types
// when none are given, and closes it.
func (b *Broker) Unsubscribe(ch <-chan Event, eventTypes ...EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(eventTypes) == 0 {
		eventTypes = make([]EventType, 0, len(b.subscribers))
		for eventType := range b.subscribers {
			eventTypes = append(eventTypes, eventType)
		}
	}
	var removed chan Event
	for _, eventType := range eventTypes {
		if c := b.removeChannel(eventType, ch); c != nil {
			removed = c
		}
	}
	if removed == nil {
		return
	}
	// Close only once the channel is gone from every type list.
	for _, subscribers := range b.subscribers {
		for _, c := range subscribers {
			if c == removed {
				return
			}
		}
	}
	close(removed)
}

// Publish delivers event to subscribers of its type and to wildcard
// subscribers.
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	b.send(b.subscribers[event.Type], event)
	b.send(b.subscribers[wildcard], event)
}

// PublishAsync delivers the event from its own goroutine.
func (b *Broker) PublishAsync(event Event) {
	go b.Publish(event)
}

func (b *Broker) send(channels []chan Event, event Event) {
	for _, ch := range channels {
		select {
		case ch <- event:
		default:
			// Subscriber is full; drop rather than block.
		}
	}
}

// removeChannel detaches target from one event type's list and returns
// the concrete channel, or nil if it was not subscribed there.
func (b *Broker) removeChannel(eventType EventType, target <-chan Event) chan Event {
	subscribers := b.subscribers[eventType]
	for i, ch := range subscribers {
		if ch == target {
			b.subscribers[eventType] = append(subscribers[:i], subscribers[i+1:]...)
			if len(b.subscribers[eventType]) == 0 {
				delete(b.subscribers, eventType)
			}
			return ch
		}
	}
	return nil
}

// Clear closes every subscription.
func (b *Broker) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := make(map[chan Event]bool)
	for _, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			if !closed[ch] {
				closed[ch] = true
				close(ch)
			}
		}
	}
	b.subscribers = make(map[EventType][]chan Event)
}
