package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/events"
)

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type EventsHandlerImpl struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) EventsHandler {
	return &EventsHandlerImpl{hub: hub}
}

// Stream implements EventsHandler. Pushes every dashboard-relevant
// domain event over SSE so the UI can refresh without polling.
func (h *EventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	ch, cleanup := h.hub.Subscribe(
		events.TopicActivityUpdated,
		events.TopicTargetSaved,
		events.TopicHolidaysSynced,
		events.TopicLeaveChanged,
	)
	defer cleanup()

	// Send initial connection event
	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, open := <-ch:
			if !open {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Topic, data)
			flusher.Flush()

		case <-keepalive.C:
			// Send keepalive ping
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
