package feud

// RoundStatus is the per-round state: default play, or the steal
// window after three errors. STOLEN is terminal within a round: the
// next reveal or error resolves the steal and finishes the round.
type RoundStatus string

const (
	StatusDefault RoundStatus = "default"
	StatusStolen  RoundStatus = "stolen"
)

// WinningScore is the total at which a team wins the game. The check
// runs only when a round is awarded, so totals can overshoot.
const WinningScore = 400

// Multiplier returns the scoring factor for a round number: ×2 at
// round 4, ×3 at round 5, ×1 otherwise.
func Multiplier(round int) int {
	switch round {
	case 4:
		return 2
	case 5:
		return 3
	}
	return 1
}

// Round tracks one question's play span: which ranks are uncovered,
// how many were credited, the accumulated pre-multiplier pot, and the
// steal status.
type Round struct {
	question Question
	status   RoundStatus
	revealed map[int]bool
	right    int
	points   int
}

func newRound(q Question) *Round {
	return &Round{
		question: q,
		status:   StatusDefault,
		revealed: make(map[int]bool),
	}
}

func (r *Round) Question() Question { return r.question }
func (r *Round) Status() RoundStatus { return r.status }
func (r *Round) Points() int { return r.points }
func (r *Round) Right() int { return r.right }

// Revealed reports whether a rank is already uncovered.
func (r *Round) Revealed(rank int) bool { return r.revealed[rank] }

// RevealedRanks returns the uncovered ranks in ascending rank order.
func (r *Round) RevealedRanks() []int {
	ranks := make([]int, 0, len(r.revealed))
	for _, a := range r.question.Answers {
		if r.revealed[a.Rank] {
			ranks = append(ranks, a.Rank)
		}
	}
	return ranks
}

// reveal uncovers a rank. Revealing an unknown rank reports found ==
// false; re-revealing is a silent no-op (changed == false). With
// awarding set, the answer's points join the pot and count toward
// completion.
func (r *Round) reveal(rank int, awarding bool) (a Answer, found, changed bool) {
	a, found = r.question.AnswerByRank(rank)
	if !found {
		return Answer{}, false, false
	}
	if r.revealed[rank] {
		return a, true, false
	}
	r.revealed[rank] = true
	if awarding {
		r.points += a.Points
		r.right++
	}
	return a, true, true
}

// complete reports whether every answer has been credited.
func (r *Round) complete() bool {
	return r.right == len(r.question.Answers)
}

// markStolen flips the round into the steal window. It never reverts.
func (r *Round) markStolen() {
	r.status = StatusStolen
}
