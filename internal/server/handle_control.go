package server

import (
	"net/http"

	"github.com/familiada-game/familiada/internal/feud"
)

type RevealRequest struct {
	Rank int `json:"rank"`
}

type SelectTeamRequest struct {
	Team string `json:"team"`
}

// runOp executes a game operation under the session lock, publishes
// its effects, and responds with the updated state. All the control
// endpoints share this shape.
func runOp(w http.ResponseWriter, r *http.Request, broker *Broker, op func(g *feud.Game) ([]feud.Effect, error)) {
	sess := sessionFrom(r)
	var resp SessionStateResponse
	err := sess.lock(func(g *feud.Game) error {
		effects, err := op(g)
		if err != nil {
			return err
		}
		broker.Publish(sess.ID, effects)
		resp = stateResponse(sess, g)
		return nil
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleReveal uncovers an answer by rank: awarding when a team is
// active, display-only otherwise.
func handleReveal(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RevealRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		runOp(w, r, broker, func(g *feud.Game) ([]feud.Effect, error) {
			return g.RevealByNumber(req.Rank)
		})
	}
}

// handleTeamError records a manual error for the active team.
func handleTeamError(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runOp(w, r, broker, func(g *feud.Game) ([]feud.Effect, error) {
			return g.AddErrorForSelectedTeam()
		})
	}
}

// handleSelectTeam sets the active team; "none" deselects.
func handleSelectTeam(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectTeamRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.Team == "none" || req.Team == "" {
			runOp(w, r, broker, func(g *feud.Game) ([]feud.Effect, error) {
				return g.DeselectTeam()
			})
			return
		}
		id, err := feud.ParseTeamID(req.Team)
		if err != nil {
			writeError(w, http.StatusBadRequest, `team must be "a", "b", or "none"`)
			return
		}
		runOp(w, r, broker, func(g *feud.Game) ([]feud.Effect, error) {
			return g.SelectTeam(id)
		})
	}
}

// handleNextRound advances to the next round once the current one is
// awarded.
func handleNextRound(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runOp(w, r, broker, func(g *feud.Game) ([]feud.Effect, error) {
			return g.AdvanceRound()
		})
	}
}

// handleUndo pops one snapshot and restores the prior state.
func handleUndo(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runOp(w, r, broker, func(g *feud.Game) ([]feud.Effect, error) {
			return g.Undo()
		})
	}
}
