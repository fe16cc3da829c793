package feud

import "encoding/json"

// TeamState is a team's mutable counters as captured in a snapshot.
type TeamState struct {
	Points int `json:"points"`
	Errors int `json:"errors"`
}

// Snapshot is a full copy of the mutable game state, pushed onto the
// undo stack before every effective state change. Restoring one brings
// back the round, both teams, the active team, the store cursor, and
// the opaque presentation blob captured alongside.
type Snapshot struct {
	Question    Question        `json:"question"`
	Revealed    []int           `json:"revealed"`
	Status      RoundStatus     `json:"status"`
	RoundPoints int             `json:"roundPoints"`
	Right       int             `json:"right"`
	Teams       [2]TeamState    `json:"teams"`
	Active      TeamID          `json:"active"`
	HasActive   bool            `json:"hasActive"`
	Cursor      int             `json:"cursor"`
	RoundNum    int             `json:"roundNum"`
	Pending     bool            `json:"pending"`
	Won         bool            `json:"won"`
	Winner      TeamID          `json:"winner"`
	View        json.RawMessage `json:"view,omitempty"`
}

func (g *Game) snapshot() Snapshot {
	s := Snapshot{
		Question:    g.round.question,
		Revealed:    g.round.RevealedRanks(),
		Status:      g.round.status,
		RoundPoints: g.round.points,
		Right:       g.round.right,
		Active:      g.active,
		HasActive:   g.hasActive,
		Cursor:      g.store.Cursor(),
		RoundNum:    g.roundNum,
		Pending:     g.pending,
		Won:         g.won,
		Winner:      g.winner,
	}
	for i, t := range g.teams {
		s.Teams[i] = TeamState{Points: t.Points(), Errors: t.Errors()}
	}
	if g.view != nil {
		s.View = g.view.Capture()
	}
	return s
}

func (g *Game) restore(s Snapshot) {
	g.round = newRound(s.Question)
	for _, rank := range s.Revealed {
		g.round.revealed[rank] = true
	}
	g.round.status = s.Status
	g.round.points = s.RoundPoints
	g.round.right = s.Right

	for i, t := range g.teams {
		t.SetPoints(s.Teams[i].Points)
		t.SetErrors(s.Teams[i].Errors)
	}

	g.active = s.Active
	g.hasActive = s.HasActive
	g.store.SetCursor(s.Cursor)
	g.roundNum = s.RoundNum
	g.pending = s.Pending
	g.won = s.Won
	g.winner = s.Winner

	if g.view != nil {
		g.view.Restore(s.View)
	}
}

// push records the current state on the undo stack.
func (g *Game) push() {
	g.undo = append(g.undo, g.snapshot())
}

// discard drops the most recent snapshot. Operations that turn out to
// be strict no-ops discard the snapshot they pushed so undo only ever
// steps over effective actions.
func (g *Game) discard() {
	g.undo = g.undo[:len(g.undo)-1]
}
