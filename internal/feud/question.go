// Package feud implements the game-session state machine: round
// progression, answer resolution, scoring with round multipliers, the
// steal mechanic, team rotation, and a full-state undo stack. It is
// pure Go, with no HTTP, SQL, or rendering. State-changing operations
// return effect descriptors that a presentation layer applies.
package feud

import "fmt"

// Answer is one ranked answer of a question. Immutable after
// construction.
type Answer struct {
	Rank   int    `json:"rank"`
	Text   string `json:"text"`
	Points int    `json:"points"`
}

// Question is a survey question with its ranked answers. Immutable
// after construction; build via NewQuestion so rank invariants hold.
type Question struct {
	Text    string   `json:"text"`
	Answers []Answer `json:"answers"`
}

// NewQuestion validates that answers are non-empty and carry unique
// ranks covering 1..N.
func NewQuestion(text string, answers []Answer) (Question, error) {
	if text == "" {
		return Question{}, fmt.Errorf("question text is empty")
	}
	if len(answers) == 0 {
		return Question{}, fmt.Errorf("question %q has no answers", text)
	}
	seen := make(map[int]bool, len(answers))
	for _, a := range answers {
		if a.Rank < 1 || a.Rank > len(answers) {
			return Question{}, fmt.Errorf("question %q: rank %d out of range 1..%d", text, a.Rank, len(answers))
		}
		if seen[a.Rank] {
			return Question{}, fmt.Errorf("question %q: duplicate rank %d", text, a.Rank)
		}
		if a.Text == "" {
			return Question{}, fmt.Errorf("question %q: empty answer text at rank %d", text, a.Rank)
		}
		seen[a.Rank] = true
	}
	return Question{Text: text, Answers: answers}, nil
}

// AnswerByRank returns the answer with the given rank.
func (q Question) AnswerByRank(rank int) (Answer, bool) {
	for _, a := range q.Answers {
		if a.Rank == rank {
			return a, true
		}
	}
	return Answer{}, false
}

// Match compares a folded guess against the folded answer texts.
func (q Question) Match(guess string) (Answer, bool) {
	folded := Fold(guess)
	for _, a := range q.Answers {
		if Fold(a.Text) == folded {
			return a, true
		}
	}
	return Answer{}, false
}

// Words returns the answer texts, in rank-independent listing order,
// for loading into a recognition grammar.
func (q Question) Words() []string {
	words := make([]string, 0, len(q.Answers))
	for _, a := range q.Answers {
		words = append(words, a.Text)
	}
	return words
}
