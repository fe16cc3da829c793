package feud

import (
	"errors"
	"math/rand"
)

// Game orchestrates one session: two teams, the question store, the
// active round, turn rotation, and the undo stack. External events
// (key presses, recognized speech, button clicks) all route through
// its methods; each returns the effects the presentation and audio
// collaborators should apply.
//
// Dispatch is strictly sequential. Game is not safe for concurrent
// use; callers serialize access.
type Game struct {
	teams      [2]*Team
	store      *QuestionStore
	round      *Round
	roundNum   int
	active     TeamID
	hasActive  bool
	pending    bool
	won        bool
	winner     TeamID
	undo       []Snapshot
	rng        *rand.Rand
	view       ViewState
	recognizer Recognizer
}

// GuessResult reports how a player guess was resolved.
type GuessResult struct {
	Matched bool `json:"matched"`
	Rank    int  `json:"rank,omitempty"`
	Awarded bool `json:"awarded"`
}

// NewGame builds the first round from the store's first question and
// picks a uniformly random starting team. An empty store is a
// configuration defect, not a runtime condition.
func NewGame(a, b *Team, store *QuestionStore, rng *rand.Rand) (*Game, error) {
	if store.Len() == 0 {
		return nil, errors.New("question store is empty")
	}
	g := &Game{
		teams:    [2]*Team{a, b},
		store:    store,
		roundNum: 1,
		rng:      rng,
	}
	q, _ := store.Next()
	g.round = newRound(q)
	g.active = TeamID(rng.Intn(2))
	g.hasActive = true
	g.loadGrammar()
	return g, nil
}

// SetViewState injects the presentation-blob collaborator.
func (g *Game) SetViewState(v ViewState) { g.view = v }

// SetRecognizer injects the speech collaborator and immediately loads
// the current question's grammar.
func (g *Game) SetRecognizer(r Recognizer) {
	g.recognizer = r
	g.loadGrammar()
}

func (g *Game) loadGrammar() {
	if g.recognizer != nil && g.recognizer.Supported() {
		g.recognizer.LoadGrammar(g.round.question.Words())
	}
}

func (g *Game) Team(id TeamID) *Team { return g.teams[id] }
func (g *Game) Round() *Round { return g.round }
func (g *Game) RoundNumber() int { return g.roundNum }
func (g *Game) PendingNextRound() bool { return g.pending }
func (g *Game) Won() bool { return g.won }
func (g *Game) UndoDepth() int { return len(g.undo) }
func (g *Game) Cursor() int { return g.store.Cursor() }

// ActiveTeam returns the active team slot; ok is false when no team is
// selected.
func (g *Game) ActiveTeam() (TeamID, bool) { return g.active, g.hasActive }

// Winner returns the winning team once the game is over.
func (g *Game) Winner() (TeamID, bool) { return g.winner, g.won }

// HandlePlayerAnswer resolves a typed or recognized guess. The guess
// is case- and diacritic-folded before matching. A match is revealed,
// awarding when a team is active, display-only otherwise. A miss with
// an active team records an error; a miss with no team is a no-op.
func (g *Game) HandlePlayerAnswer(text string) (GuessResult, []Effect, error) {
	if g.won {
		return GuessResult{}, nil, ErrGameOver
	}
	if g.pending {
		return GuessResult{}, nil, ErrRoundOver
	}
	g.push()

	a, matched := g.round.question.Match(text)
	switch {
	case matched && g.hasActive:
		effects, changed := g.applyReveal(a.Rank, true)
		if !changed {
			g.discard()
		}
		return GuessResult{Matched: true, Rank: a.Rank, Awarded: changed}, effects, nil
	case matched:
		effects, changed := g.applyReveal(a.Rank, false)
		if !changed {
			g.discard()
		}
		return GuessResult{Matched: true, Rank: a.Rank}, effects, nil
	case g.hasActive:
		return GuessResult{}, g.recordError(), nil
	default:
		g.discard()
		return GuessResult{}, nil, nil
	}
}

// RevealByNumber reveals by rank instead of text match, awarding when
// a team is active, display-only otherwise. An unknown rank is
// ErrNotFound and leaves state unchanged.
func (g *Game) RevealByNumber(rank int) ([]Effect, error) {
	if g.won {
		return nil, ErrGameOver
	}
	if g.pending {
		return nil, ErrRoundOver
	}
	if _, ok := g.round.question.AnswerByRank(rank); !ok {
		return nil, ErrNotFound
	}
	g.push()
	effects, changed := g.applyReveal(rank, g.hasActive)
	if !changed {
		g.discard()
	}
	return effects, nil
}

// AddErrorForSelectedTeam records a manual error for the active team.
func (g *Game) AddErrorForSelectedTeam() ([]Effect, error) {
	if g.won {
		return nil, ErrGameOver
	}
	if g.pending {
		return nil, ErrRoundOver
	}
	if !g.hasActive {
		return nil, ErrNoActiveTeam
	}
	g.push()
	return g.recordError(), nil
}

// SelectTeam makes a team active. Only the active team earns points
// and accrues errors toward the steal threshold.
func (g *Game) SelectTeam(id TeamID) ([]Effect, error) {
	if g.won {
		return nil, ErrGameOver
	}
	if g.hasActive && g.active == id {
		return nil, nil
	}
	g.push()
	g.active = id
	g.hasActive = true
	return []Effect{highlightTeam(id)}, nil
}

// DeselectTeam clears the active team. Reveals become award-less and
// error entry is rejected while no team is selected.
func (g *Game) DeselectTeam() ([]Effect, error) {
	if g.won {
		return nil, ErrGameOver
	}
	if !g.hasActive {
		return nil, nil
	}
	g.push()
	g.hasActive = false
	return []Effect{highlightNone()}, nil
}

// AdvanceRound starts the next round once the current one is awarded:
// next question from the store, error counters reset, round counter
// incremented, fresh random starting team.
func (g *Game) AdvanceRound() ([]Effect, error) {
	if g.won {
		return nil, ErrGameOver
	}
	if !g.pending {
		return nil, ErrNoPendingRound
	}
	g.push()

	q, _ := g.store.Next()
	g.round = newRound(q)
	g.roundNum++
	g.teams[TeamA].ResetErrors()
	g.teams[TeamB].ResetErrors()
	g.active = TeamID(g.rng.Intn(2))
	g.hasActive = true
	g.pending = false
	g.loadGrammar()

	return []Effect{
		renderQuestion(q),
		showRows(q),
		roundPoints(0),
		teamErrors(g.teams[TeamA]),
		teamErrors(g.teams[TeamB]),
		highlightTeam(g.active),
	}, nil
}

// Undo pops the most recent snapshot and restores the complete prior
// state. It never pushes a snapshot itself, so there is no redo.
func (g *Game) Undo() ([]Effect, error) {
	if len(g.undo) == 0 {
		return nil, ErrNothingToUndo
	}
	s := g.undo[len(g.undo)-1]
	g.undo = g.undo[:len(g.undo)-1]
	g.restore(s)
	g.loadGrammar()

	effects := g.Render()
	if s.View != nil {
		effects = append(effects, Effect{Type: EffectRestoreView, View: s.View})
	}
	return effects, nil
}

// Render returns the full effect list describing the current state,
// for initial display, reconnects, and undo.
func (g *Game) Render() []Effect {
	q := g.round.question
	effects := []Effect{renderQuestion(q), showRows(q)}
	for _, rank := range g.round.RevealedRanks() {
		a, _ := q.AnswerByRank(rank)
		effects = append(effects, revealAnswer(a))
	}
	effects = append(effects,
		roundPoints(g.round.points),
		teamPoints(g.teams[TeamA]),
		teamPoints(g.teams[TeamB]),
		teamErrors(g.teams[TeamA]),
		teamErrors(g.teams[TeamB]),
	)
	switch {
	case g.won:
		effects = append(effects, gameOver(g.teams[g.winner]))
	case g.hasActive:
		effects = append(effects, highlightTeam(g.active))
	default:
		effects = append(effects, highlightNone())
	}
	return effects
}

// applyReveal uncovers a rank the current question is known to have.
// changed is false for a re-reveal, which is always a silent no-op.
// An awarding reveal while STOLEN is the steal resolution: the pot
// goes to the stealing team and the round finishes.
func (g *Game) applyReveal(rank int, awarding bool) ([]Effect, bool) {
	a, _, changed := g.round.reveal(rank, awarding)
	if !changed {
		return nil, false
	}

	effects := []Effect{revealAnswer(a), {Type: EffectPlayCorrect}}
	if awarding {
		effects = append(effects, roundPoints(g.round.points))
		if g.round.status == StatusStolen || g.round.complete() {
			effects = append(effects, g.finishRound(true)...)
		}
	}
	return effects, true
}

// recordError charges the active team. At three errors in default play
// the opposing team takes over with the round STOLEN; an error while
// STOLEN resolves the steal in favor of the other side.
func (g *Game) recordError() []Effect {
	team := g.teams[g.active]
	count := team.AddError()
	effects := []Effect{{Type: EffectPlayWrong}, teamErrors(team)}

	switch g.round.status {
	case StatusDefault:
		if count >= 3 {
			g.round.markStolen()
			g.active = g.active.Opponent()
			effects = append(effects, highlightTeam(g.active))
		}
	case StatusStolen:
		// Failed steal: the pot goes to the opponent of whoever just
		// erred, and that team stays active for the next round.
		g.active = g.active.Opponent()
		effects = append(effects, highlightTeam(g.active))
		effects = append(effects, g.finishRound(false)...)
	}
	return effects
}

// finishRound credits the active team the pot times the round
// multiplier, runs the win check, and flags the pending round. With
// rotate set the opposing team is left active; a resolved steal keeps
// the credited team active instead.
func (g *Game) finishRound(rotate bool) []Effect {
	winner := g.teams[g.active]
	winner.AddPoints(g.round.points * Multiplier(g.roundNum))

	effects := []Effect{teamPoints(winner)}
	if winner.Points() >= WinningScore {
		g.won = true
		g.winner = winner.ID()
		return append(effects, gameOver(winner))
	}
	if rotate {
		g.active = g.active.Opponent()
		effects = append(effects, highlightTeam(g.active))
	}
	g.pending = true
	return effects
}
