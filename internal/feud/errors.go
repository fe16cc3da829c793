package feud

import "errors"

var (
	// ErrNotFound reports a reveal for a rank the current question does
	// not have. The operation is a no-op.
	ErrNotFound = errors.New("answer not found")
	// ErrNoActiveTeam reports a manual error entry with no team
	// selected.
	ErrNoActiveTeam = errors.New("no active team")
	// ErrGameOver reports a mutating call after the win condition.
	ErrGameOver = errors.New("game is over")
	// ErrRoundOver reports a reveal, guess, or error entry after the
	// round has been awarded; only AdvanceRound and Undo apply then.
	ErrRoundOver = errors.New("round already finished")
	// ErrNoPendingRound reports an advance with no finished round.
	ErrNoPendingRound = errors.New("no pending next round")
	// ErrNothingToUndo reports an undo on an empty stack.
	ErrNothingToUndo = errors.New("nothing to undo")
)
