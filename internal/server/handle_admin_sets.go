package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (req *QuestionSetRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return "name is required"
	}
	if len(req.Questions) == 0 {
		return "at least one question is required"
	}
	for i, q := range req.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return "each question must have text"
		}
		if len(q.Answers) == 0 {
			return "each question must have at least one answer"
		}
		seen := make(map[int]bool, len(q.Answers))
		for _, a := range q.Answers {
			if strings.TrimSpace(a.Text) == "" {
				return "each answer must have text"
			}
			if a.Rank < 1 || a.Rank > len(q.Answers) {
				return "answer ranks must run 1..N within a question"
			}
			if seen[a.Rank] {
				return "answer ranks must be unique within a question"
			}
			if a.Points < 0 {
				return "answer points must not be negative"
			}
			seen[a.Rank] = true
		}
		req.Questions[i].Text = strings.TrimSpace(q.Text)
	}
	return ""
}

func handleAdminListSets(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sets, err := store.ListQuestionSets(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if sets == nil {
			sets = []QuestionSetSummary{}
		}
		writeJSON(w, http.StatusOK, sets)
	}
}

func handleAdminCreateSet(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuestionSetRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		set, err := store.CreateQuestionSet(r.Context(), req)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, set)
	}
}

func handleAdminGetSet(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		set, err := store.GetQuestionSet(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "question set not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, set)
	}
}

func handleAdminUpdateSet(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req QuestionSetRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		set, err := store.UpdateQuestionSet(r.Context(), id, req)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "question set not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, set)
	}
}

func handleAdminDeleteSet(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := store.DeleteQuestionSet(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "question set not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func handleAdminListSessions(registry *SessionRegistry) http.HandlerFunc {
	type sessionSummary struct {
		ID        string `json:"id"`
		SetName   string `json:"setName"`
		CreatedAt string `json:"createdAt"`
		Round     int    `json:"round"`
		Won       bool   `json:"won"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		registry.mu.RLock()
		sessions := make([]*Session, 0, len(registry.sessions))
		for _, s := range registry.sessions {
			sessions = append(sessions, s)
		}
		registry.mu.RUnlock()

		out := make([]sessionSummary, 0, len(sessions))
		for _, s := range sessions {
			s.mu.Lock()
			out = append(out, sessionSummary{
				ID:        s.ID,
				SetName:   s.SetName,
				CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z"),
				Round:     s.game.RoundNumber(),
				Won:       s.game.Won(),
			})
			s.mu.Unlock()
		}
		writeJSON(w, http.StatusOK, out)
	}
}
