package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/familiada-game/familiada/internal/feud"
)

// handleEvents streams effect batches to a presentation client over
// SSE. The first event is the full current state so a late or
// reconnecting board can render from scratch.
func handleEvents(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		var initial []byte
		sess.lock(func(g *feud.Game) error {
			initial, _ = json.Marshal(g.Render())
			return nil
		})
		fmt.Fprintf(w, "event: effects\ndata: %s\n\n", initial)
		flusher.Flush()

		ch := broker.Subscribe(sess.ID)
		defer broker.Unsubscribe(sess.ID, ch)

		ping := time.NewTicker(30 * time.Second)
		defer ping.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case data := <-ch:
				fmt.Fprintf(w, "event: effects\ndata: %s\n\n", data)
				flusher.Flush()
			case <-ping.C:
				fmt.Fprintf(w, ": ping\n\n")
				flusher.Flush()
			}
		}
	}
}
