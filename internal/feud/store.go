package feud

import "math/rand"

// QuestionStore owns the ordered question list and a circular cursor.
// With shuffle enabled the list is permuted once, Fisher-Yates, at
// construction; afterwards the order is fixed for the session.
type QuestionStore struct {
	questions []Question
	cursor    int
	rng       *rand.Rand
}

func NewQuestionStore(questions []Question, shuffle bool, rng *rand.Rand) *QuestionStore {
	qs := make([]Question, len(questions))
	copy(qs, questions)
	if shuffle {
		rng.Shuffle(len(qs), func(i, j int) {
			qs[i], qs[j] = qs[j], qs[i]
		})
	}
	return &QuestionStore{questions: qs, rng: rng}
}

func (s *QuestionStore) Len() int { return len(s.questions) }

// Next returns the question at the cursor and advances it, wrapping to
// the start after the last question. ok is false only for an empty
// store.
func (s *QuestionStore) Next() (q Question, ok bool) {
	if len(s.questions) == 0 {
		return Question{}, false
	}
	q = s.questions[s.cursor]
	s.cursor = (s.cursor + 1) % len(s.questions)
	return q, true
}

// Cursor returns the current cursor position, for snapshots.
func (s *QuestionStore) Cursor() int { return s.cursor }

// SetCursor restores the cursor from a snapshot. Any integer,
// including a negative one, is normalized into [0, len); restoring
// into an empty store is a no-op.
func (s *QuestionStore) SetCursor(i int) {
	if len(s.questions) == 0 {
		return
	}
	i %= len(s.questions)
	if i < 0 {
		i += len(s.questions)
	}
	s.cursor = i
}

// RandomIndex returns a uniform index into the store, independent of
// the cursor. An empty store yields 0.
func (s *QuestionStore) RandomIndex() int {
	if len(s.questions) == 0 {
		return 0
	}
	return s.rng.Intn(len(s.questions))
}
