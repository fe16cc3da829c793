package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/familiada-game/familiada/internal/feud"
)

type AnswerRequest struct {
	Text string `json:"text"`
}

type AnswerResponse struct {
	Result feud.GuessResult     `json:"result"`
	State  SessionStateResponse `json:"state"`
}

// writeGameError maps the core's business failures onto HTTP statuses.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, feud.ErrNotFound):
		writeError(w, http.StatusNotFound, "answer not found")
	case errors.Is(err, feud.ErrGameOver):
		writeError(w, http.StatusConflict, "game is over")
	case errors.Is(err, feud.ErrRoundOver):
		writeError(w, http.StatusConflict, "round already finished")
	case errors.Is(err, feud.ErrNoActiveTeam):
		writeError(w, http.StatusConflict, "no active team selected")
	case errors.Is(err, feud.ErrNoPendingRound):
		writeError(w, http.StatusConflict, "no pending next round")
	case errors.Is(err, feud.ErrNothingToUndo):
		writeError(w, http.StatusConflict, "nothing to undo")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// handleAnswer routes a typed or recognized guess into the state
// machine. A recognition failure is submitted by the client like any
// other non-matching text.
func handleAnswer(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Text = strings.TrimSpace(req.Text)
		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}

		sess := sessionFrom(r)
		var resp AnswerResponse
		err := sess.lock(func(g *feud.Game) error {
			result, effects, err := g.HandlePlayerAnswer(req.Text)
			if err != nil {
				return err
			}
			broker.Publish(sess.ID, effects)
			resp = AnswerResponse{Result: result, State: stateResponse(sess, g)}
			return nil
		})
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
