package server

import (
	"encoding/json"
	"io"
	"net/http"
)

// GrammarResponse is the current recognition word list.
type GrammarResponse struct {
	Supported bool     `json:"supported"`
	Words     []string `json:"words"`
}

// handlePutView stores the client's opaque presentation blob. The
// server never inspects it; it rides along in undo snapshots and comes
// back in restore_view effects.
func handlePutView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			writeError(w, http.StatusBadRequest, "reading body")
			return
		}
		if !json.Valid(body) {
			writeError(w, http.StatusBadRequest, "view must be valid JSON")
			return
		}

		sess := sessionFrom(r)
		sess.mu.Lock()
		sess.view = body
		sess.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// handleGrammar returns the word list the speech collaborator should
// constrain recognition to.
func handleGrammar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		sess.mu.Lock()
		resp := GrammarResponse{Supported: sess.speech, Words: sess.grammar}
		sess.mu.Unlock()

		if resp.Words == nil {
			resp.Words = []string{}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
