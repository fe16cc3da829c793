package feud

import "encoding/json"

// Effect is a fire-and-forget request the state machine emits toward
// its presentation and audio collaborators. The core never renders or
// plays anything itself; it only describes what should happen.
type Effect struct {
	Type   string          `json:"type"`
	Text   string          `json:"text,omitempty"`
	Rank   int             `json:"rank,omitempty"`
	Points int             `json:"points,omitempty"`
	Team   string          `json:"team,omitempty"`
	Count  int             `json:"count,omitempty"`
	Winner string          `json:"winner,omitempty"`
	Words  []string        `json:"words,omitempty"`
	View   json.RawMessage `json:"view,omitempty"`
}

const (
	// EffectRenderQuestion carries the current question text.
	EffectRenderQuestion = "render_question"
	// EffectShowRows tells the board how many answer rows to display.
	EffectShowRows = "show_rows"
	// EffectRevealAnswer uncovers one answer slot (rank, text, points).
	EffectRevealAnswer = "reveal_answer"
	// EffectRoundPoints updates the round's accumulated pot.
	EffectRoundPoints = "round_points"
	// EffectTeamPoints updates a team's total.
	EffectTeamPoints = "team_points"
	// EffectTeamErrors updates a team's error-mark count.
	EffectTeamErrors = "team_errors"
	// EffectHighlightTeam marks the active team; empty team clears it.
	EffectHighlightTeam = "highlight_team"
	// EffectGameOver shows the winner banner.
	EffectGameOver = "game_over"
	// EffectPlayCorrect and EffectPlayWrong are audio triggers.
	EffectPlayCorrect = "play_correct"
	EffectPlayWrong   = "play_wrong"
	// EffectGrammar hands the recognition word list to the speech
	// collaborator.
	EffectGrammar = "grammar"
	// EffectRestoreView round-trips the opaque presentation blob on
	// undo.
	EffectRestoreView = "restore_view"
)

func renderQuestion(q Question) Effect {
	return Effect{Type: EffectRenderQuestion, Text: q.Text}
}

func showRows(q Question) Effect {
	return Effect{Type: EffectShowRows, Count: len(q.Answers)}
}

func revealAnswer(a Answer) Effect {
	return Effect{Type: EffectRevealAnswer, Rank: a.Rank, Text: a.Text, Points: a.Points}
}

func roundPoints(points int) Effect {
	return Effect{Type: EffectRoundPoints, Points: points}
}

func teamPoints(t *Team) Effect {
	return Effect{Type: EffectTeamPoints, Team: t.ID().String(), Points: t.Points()}
}

func teamErrors(t *Team) Effect {
	return Effect{Type: EffectTeamErrors, Team: t.ID().String(), Count: t.Errors()}
}

func highlightTeam(id TeamID) Effect {
	return Effect{Type: EffectHighlightTeam, Team: id.String()}
}

func highlightNone() Effect {
	return Effect{Type: EffectHighlightTeam}
}

func gameOver(winner *Team) Effect {
	return Effect{Type: EffectGameOver, Winner: winner.Name()}
}
