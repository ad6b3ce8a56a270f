package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"rental-hub/internal/middleware"
	"rental-hub/internal/store"

	"go.uber.org/zap"
)

// EventSnapshot is the event name of the first message on a stream
const EventSnapshot = "snapshot"

type stateEvent struct {
	action string
	state  store.State
}

// StreamEvents sends the current state and then one Server-Sent Event per
// store transition until the client disconnects. Slow clients skip
// intermediate states and always receive the latest one.
func (h *StateHandler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	events := make(chan stateEvent, 1)
	unsubscribe := h.store.Subscribe(func(action string, next, _ store.State) {
		ev := stateEvent{action: action, state: next}
		select {
		case events <- ev:
		default:
			// Replace the undelivered event with the newer one
			select {
			case <-events:
			default:
			}
			events <- ev
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, EventSnapshot, h.store.Snapshot()); err != nil {
		h.logger.Debug("Event stream closed", zap.Error(err))
		return
	}
	flusher.Flush()

	h.logger.Debug("Event stream opened", zap.String("store", h.store.Name()))

	for {
		select {
		case <-r.Context().Done():
			h.logger.Debug("Event stream closed", zap.Error(r.Context().Err()))
			return
		case ev := <-events:
			if err := writeEvent(w, ev.action, ev.state); err != nil {
				h.logger.Debug("Event stream closed", zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, state store.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}
