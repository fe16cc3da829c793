package server

import (
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/familiada-game/familiada/internal/feud"
)

type CreateSessionRequest struct {
	QuestionSetID string `json:"questionSetId"`
	Shuffle       bool   `json:"shuffle"`
	TeamA         string `json:"teamA"`
	TeamB         string `json:"teamB"`
	Speech        bool   `json:"speech"`
}

type RevealedSlot struct {
	Rank   int    `json:"rank"`
	Text   string `json:"text"`
	Points int    `json:"points"`
}

type TeamInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Errors int    `json:"errors"`
}

// SessionStateResponse is the full board state, enough for a client to
// render from scratch.
type SessionStateResponse struct {
	ID           string         `json:"id"`
	Round        int            `json:"round"`
	Multiplier   int            `json:"multiplier"`
	Status       string         `json:"status"`
	Question     string         `json:"question"`
	TotalAnswers int            `json:"totalAnswers"`
	Revealed     []RevealedSlot `json:"revealed"`
	RoundPoints  int            `json:"roundPoints"`
	Teams        []TeamInfo     `json:"teams"`
	Active       string         `json:"active"`
	PendingNext  bool           `json:"pendingNextRound"`
	Won          bool           `json:"won"`
	Winner       string         `json:"winner,omitempty"`
	UndoDepth    int            `json:"undoDepth"`
}

func stateResponse(s *Session, g *feud.Game) SessionStateResponse {
	round := g.Round()
	q := round.Question()

	resp := SessionStateResponse{
		ID:           s.ID,
		Round:        g.RoundNumber(),
		Multiplier:   feud.Multiplier(g.RoundNumber()),
		Status:       string(round.Status()),
		Question:     q.Text,
		TotalAnswers: len(q.Answers),
		Revealed:     []RevealedSlot{},
		RoundPoints:  round.Points(),
		PendingNext:  g.PendingNextRound(),
		Won:          g.Won(),
		UndoDepth:    g.UndoDepth(),
	}
	for _, rank := range round.RevealedRanks() {
		a, _ := q.AnswerByRank(rank)
		resp.Revealed = append(resp.Revealed, RevealedSlot{Rank: a.Rank, Text: a.Text, Points: a.Points})
	}
	for _, id := range []feud.TeamID{feud.TeamA, feud.TeamB} {
		team := g.Team(id)
		resp.Teams = append(resp.Teams, TeamInfo{
			ID:     id.String(),
			Name:   team.Name(),
			Points: team.Points(),
			Errors: team.Errors(),
		})
	}
	if active, ok := g.ActiveTeam(); ok {
		resp.Active = active.String()
	}
	if winner, ok := g.Winner(); ok {
		resp.Winner = g.Team(winner).Name()
	}
	return resp
}

func handleCreateSession(store Store, registry *SessionRegistry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSessionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.TeamA = strings.TrimSpace(req.TeamA)
		req.TeamB = strings.TrimSpace(req.TeamB)
		if req.QuestionSetID == "" {
			writeError(w, http.StatusBadRequest, "questionSetId is required")
			return
		}
		if req.TeamA == "" {
			req.TeamA = "Team A"
		}
		if req.TeamB == "" {
			req.TeamB = "Team B"
		}

		set, err := store.GetQuestionSet(r.Context(), req.QuestionSetID)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "question set not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		questions := make([]feud.Question, 0, len(set.Questions))
		for _, sq := range set.Questions {
			answers := make([]feud.Answer, 0, len(sq.Answers))
			for _, a := range sq.Answers {
				answers = append(answers, feud.Answer{Rank: a.Rank, Text: a.Text, Points: a.Points})
			}
			q, err := feud.NewQuestion(sq.Text, answers)
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			questions = append(questions, q)
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		qs := feud.NewQuestionStore(questions, req.Shuffle, rng)
		game, err := feud.NewGame(
			feud.NewTeam(feud.TeamA, req.TeamA),
			feud.NewTeam(feud.TeamB, req.TeamB),
			qs, rng,
		)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		sess := &Session{
			ID:        uuid.NewString(),
			SetName:   set.Name,
			CreatedAt: time.Now().UTC(),
			game:      game,
			broker:    broker,
			speech:    req.Speech,
		}
		game.SetViewState(sess)
		game.SetRecognizer(sess)
		registry.Add(sess)

		writeJSON(w, http.StatusCreated, stateResponse(sess, game))
	}
}

func handleSessionState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		var resp SessionStateResponse
		sess.lock(func(g *feud.Game) error {
			resp = stateResponse(sess, g)
			return nil
		})
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleDeleteSession(registry *SessionRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		registry.Remove(sess.ID)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
