package feud

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorQuestion(t *testing.T) Question {
	t.Helper()
	q, err := NewQuestion("name a color", []Answer{
		{Rank: 1, Text: "red", Points: 40},
		{Rank: 2, Text: "blue", Points: 30},
	})
	require.NoError(t, err)
	return q
}

func petQuestion(t *testing.T) Question {
	t.Helper()
	q, err := NewQuestion("name a pet", []Answer{
		{Rank: 1, Text: "dog", Points: 50},
		{Rank: 2, Text: "cat", Points: 30},
		{Rank: 3, Text: "żółw", Points: 10},
	})
	require.NoError(t, err)
	return q
}

func newTestGame(t *testing.T, questions ...Question) *Game {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	store := NewQuestionStore(questions, false, rng)
	a := NewTeam(TeamA, "Lions")
	b := NewTeam(TeamB, "Tigers")
	g, err := NewGame(a, b, store, rng)
	require.NoError(t, err)
	return g
}

// setActive forces the active team without going through SelectTeam,
// so tests control turn state without extra undo snapshots.
func setActive(g *Game, id TeamID) {
	g.active = id
	g.hasActive = true
}

func TestNewGameEmptyStore(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	store := NewQuestionStore(nil, false, rng)
	_, err := NewGame(NewTeam(TeamA, "A"), NewTeam(TeamB, "B"), store, rng)
	require.Error(t, err)
}

func TestRevealByNumberAwards(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamA)

	_, err := g.RevealByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, 40, g.Round().Points())
	assert.Equal(t, 1, g.Round().Right())
	assert.False(t, g.PendingNextRound())

	_, err = g.RevealByNumber(2)
	require.NoError(t, err)

	// Round complete: A gains 70×1, opponent becomes active, next
	// round pending.
	assert.Equal(t, 70, g.Team(TeamA).Points())
	assert.True(t, g.PendingNextRound())
	active, ok := g.ActiveTeam()
	require.True(t, ok)
	assert.Equal(t, TeamB, active)
}

func TestRevealIdempotent(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamA)

	effects, err := g.RevealByNumber(1)
	require.NoError(t, err)
	require.NotEmpty(t, effects)
	depth := g.UndoDepth()

	effects, err = g.RevealByNumber(1)
	require.NoError(t, err)
	assert.Empty(t, effects, "second reveal of the same rank must be a silent no-op")
	assert.Equal(t, 40, g.Round().Points())
	assert.Equal(t, 1, g.Round().Right())
	assert.Equal(t, depth, g.UndoDepth(), "no-op must not leave a snapshot behind")
}

func TestRevealUnknownRank(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamA)

	_, err := g.RevealByNumber(7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, g.Round().Points())
	assert.Equal(t, 0, g.UndoDepth())
}

func TestRoundMultipliers(t *testing.T) {
	tests := []struct {
		round int
		want  int
	}{
		{1, 1}, {2, 1}, {3, 1}, {4, 2}, {5, 3}, {6, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Multiplier(tt.round), "round %d", tt.round)
	}
}

func TestRoundAwardWithMultiplier(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamB)
	g.roundNum = 5

	_, err := g.RevealByNumber(1)
	require.NoError(t, err)
	_, err = g.RevealByNumber(2)
	require.NoError(t, err)

	assert.Equal(t, 210, g.Team(TeamB).Points(), "70×3 at round 5")
}

func TestStealTransition(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamA)

	for i := 0; i < 2; i++ {
		_, err := g.AddErrorForSelectedTeam()
		require.NoError(t, err)
		assert.Equal(t, StatusDefault, g.Round().Status())
	}

	_, err := g.AddErrorForSelectedTeam()
	require.NoError(t, err)
	assert.Equal(t, StatusStolen, g.Round().Status())
	assert.Equal(t, 3, g.Team(TeamA).Errors())
	active, _ := g.ActiveTeam()
	assert.Equal(t, TeamB, active, "steal hands the turn to the opponent")
	assert.False(t, g.PendingNextRound(), "the steal attempt still has to resolve")
}

func TestStealFailedByError(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamA)

	_, err := g.RevealByNumber(1)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = g.AddErrorForSelectedTeam()
		require.NoError(t, err)
	}

	// B errs on the steal: the pot goes back to A, who stays active.
	_, err = g.AddErrorForSelectedTeam()
	require.NoError(t, err)

	assert.True(t, g.PendingNextRound())
	assert.Equal(t, 40, g.Team(TeamA).Points())
	assert.Equal(t, 0, g.Team(TeamB).Points())
	active, _ := g.ActiveTeam()
	assert.Equal(t, TeamA, active, "the original team ends up active for the next round")
}

func TestRoundFinishedRejectsFurtherPlay(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamA)

	_, err := g.RevealByNumber(1)
	require.NoError(t, err)
	// Three errors open the steal, the fourth resolves it for A.
	for i := 0; i < 4; i++ {
		_, err = g.AddErrorForSelectedTeam()
		require.NoError(t, err)
	}
	require.True(t, g.PendingNextRound())
	require.Equal(t, 40, g.Team(TeamA).Points())
	depth := g.UndoDepth()

	// The pot is settled; no error, reveal, or guess may touch it again.
	_, err = g.AddErrorForSelectedTeam()
	assert.ErrorIs(t, err, ErrRoundOver)
	_, err = g.RevealByNumber(2)
	assert.ErrorIs(t, err, ErrRoundOver)
	_, _, err = g.HandlePlayerAnswer("blue")
	assert.ErrorIs(t, err, ErrRoundOver)

	assert.Equal(t, 40, g.Team(TeamA).Points())
	assert.Equal(t, 0, g.Team(TeamB).Points())
	assert.Equal(t, depth, g.UndoDepth(), "rejected operations must not push snapshots")
}

func TestStealClaimedByReveal(t *testing.T) {
	g := newTestGame(t, petQuestion(t), colorQuestion(t))
	setActive(g, TeamA)

	_, err := g.RevealByNumber(1)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = g.AddErrorForSelectedTeam()
		require.NoError(t, err)
	}

	// B names another answer: one correct reveal claims the whole pot.
	res, _, err := g.HandlePlayerAnswer("cat")
	require.NoError(t, err)
	assert.True(t, res.Matched)

	assert.True(t, g.PendingNextRound())
	assert.Equal(t, 80, g.Team(TeamB).Points(), "50+30 pot claimed by the stealing team")
	assert.Equal(t, 0, g.Team(TeamA).Points())
}

func TestHandlePlayerAnswerFoldsDiacritics(t *testing.T) {
	g := newTestGame(t, petQuestion(t), colorQuestion(t))
	setActive(g, TeamA)

	res, _, err := g.HandlePlayerAnswer("  ZOLW ")
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Equal(t, 3, res.Rank)
	assert.Equal(t, 10, g.Round().Points())
}

func TestHandlePlayerAnswerNoTeam(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	g.hasActive = false

	// Match with no team: display-only reveal, no pot, no completion.
	res, _, err := g.HandlePlayerAnswer("red")
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.False(t, res.Awarded)
	assert.True(t, g.Round().Revealed(1))
	assert.Equal(t, 0, g.Round().Points())

	// Miss with no team: strict no-op.
	depth := g.UndoDepth()
	res, effects, err := g.HandlePlayerAnswer("banana")
	require.NoError(t, err)
	assert.False(t, res.Matched)
	assert.Empty(t, effects)
	assert.Equal(t, depth, g.UndoDepth())
}

func TestHandlePlayerAnswerMissRecordsError(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamA)

	_, _, err := g.HandlePlayerAnswer("banana")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Team(TeamA).Errors())
}

func TestAddErrorNoActiveTeam(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	g.hasActive = false

	_, err := g.AddErrorForSelectedTeam()
	assert.ErrorIs(t, err, ErrNoActiveTeam)
	assert.Equal(t, 0, g.UndoDepth())
}

func TestWinConditionCheckedAtAwardTime(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamA)
	g.Team(TeamA).SetPoints(390)

	_, err := g.RevealByNumber(1)
	require.NoError(t, err)
	assert.False(t, g.Won(), "400 is only checked when the round is awarded")

	_, err = g.RevealByNumber(2)
	require.NoError(t, err)
	assert.True(t, g.Won())
	assert.Equal(t, 460, g.Team(TeamA).Points(), "totals can overshoot 400")
	winner, ok := g.Winner()
	require.True(t, ok)
	assert.Equal(t, TeamA, winner)

	_, err = g.RevealByNumber(1)
	assert.ErrorIs(t, err, ErrGameOver)
	_, _, err = g.HandlePlayerAnswer("red")
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = g.AdvanceRound()
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestAdvanceRound(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamA)

	_, err := g.AdvanceRound()
	assert.ErrorIs(t, err, ErrNoPendingRound)

	_, err = g.RevealByNumber(1)
	require.NoError(t, err)
	_, err = g.AddErrorForSelectedTeam()
	require.NoError(t, err)
	_, err = g.RevealByNumber(2)
	require.NoError(t, err)
	require.True(t, g.PendingNextRound())

	_, err = g.AdvanceRound()
	require.NoError(t, err)
	assert.Equal(t, 2, g.RoundNumber())
	assert.False(t, g.PendingNextRound())
	assert.Equal(t, "name a pet", g.Round().Question().Text)
	assert.Equal(t, 0, g.Team(TeamA).Errors(), "error counters reset at round start")
	assert.Equal(t, 0, g.Round().Points())
	_, ok := g.ActiveTeam()
	assert.True(t, ok)
}

func TestUndoExactness(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamA)
	before := g.snapshot()

	actions := []func() error{
		func() error { _, err := g.RevealByNumber(1); return err },
		func() error { _, err := g.AddErrorForSelectedTeam(); return err },
		func() error { _, _, err := g.HandlePlayerAnswer("blue"); return err },
		func() error { _, err := g.AdvanceRound(); return err },
		func() error { _, err := g.AddErrorForSelectedTeam(); return err },
	}
	for i, act := range actions {
		require.NoError(t, act(), "action %d", i)
	}
	require.Equal(t, len(actions), g.UndoDepth())

	for i := range actions {
		_, err := g.Undo()
		require.NoError(t, err, "undo %d", i)
	}

	assert.Equal(t, before, g.snapshot(), "full undo must restore the initial state")
	assert.Equal(t, 0, g.UndoDepth())
}

func TestUndoUnwindsWin(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	setActive(g, TeamA)
	g.Team(TeamA).SetPoints(390)

	_, err := g.RevealByNumber(1)
	require.NoError(t, err)
	_, err = g.RevealByNumber(2)
	require.NoError(t, err)
	require.True(t, g.Won())

	_, err = g.Undo()
	require.NoError(t, err)
	assert.False(t, g.Won())
	assert.Equal(t, 390, g.Team(TeamA).Points())
}

func TestUndoEmptyStack(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))
	before := g.snapshot()

	_, err := g.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.Equal(t, before, g.snapshot(), "failed undo must leave state unchanged")
}

func TestSelectTeam(t *testing.T) {
	g := newTestGame(t, colorQuestion(t), petQuestion(t))

	_, err := g.SelectTeam(TeamB)
	require.NoError(t, err)
	active, ok := g.ActiveTeam()
	require.True(t, ok)
	assert.Equal(t, TeamB, active)

	// Selecting the already-active team is a no-op.
	depth := g.UndoDepth()
	effects, err := g.SelectTeam(TeamB)
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.Equal(t, depth, g.UndoDepth())

	_, err = g.DeselectTeam()
	require.NoError(t, err)
	_, ok = g.ActiveTeam()
	assert.False(t, ok)
}
