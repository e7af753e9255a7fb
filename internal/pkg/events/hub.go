package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Topics emitted by mutation paths. Read paths (and the SSE stream)
// subscribe to refresh derived data instead of polling.
const (
	TopicActivityUpdated = "activity.updated"
	TopicTargetSaved     = "target.saved"
	TopicHolidaysSynced  = "holidays.synced"
	TopicLeaveChanged    = "leave.changed"
)

// Event is a domain notification. Payload must be JSON-marshalable.
type Event struct {
	ID      string      `json:"id"`
	Topic   string      `json:"topic"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub is an in-process publish/subscribe broker keyed by topic.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a listener for the given topics and returns the
// event channel and a cleanup function. The channel is buffered; slow
// consumers drop events rather than block publishers.
func (h *Hub) Subscribe(topics ...string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16)
	for _, topic := range topics {
		if h.subscribers[topic] == nil {
			h.subscribers[topic] = make(map[chan Event]struct{})
		}
		h.subscribers[topic][ch] = struct{}{}
	}

	subscribed := topics
	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for _, topic := range subscribed {
			delete(h.subscribers[topic], ch)
			if len(h.subscribers[topic]) == 0 {
				delete(h.subscribers, topic)
			}
		}
		close(ch)
	}

	return ch, cleanup
}

// Publish sends an event to every subscriber of the topic.
func (h *Hub) Publish(topic string, payload interface{}) {
	event := Event{
		ID:      uuid.Must(uuid.NewV7()).String(),
		Topic:   topic,
		At:      time.Now().UTC(),
		Payload: payload,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[topic] {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// SubscriberCount returns the number of active subscribers for a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[topic])
}
