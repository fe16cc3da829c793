package feud

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedQuestions(t *testing.T, n int) []Question {
	t.Helper()
	qs := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		q, err := NewQuestion(string(rune('a'+i)), []Answer{{Rank: 1, Text: "x", Points: 10}})
		require.NoError(t, err)
		qs = append(qs, q)
	}
	return qs
}

func TestStoreCircular(t *testing.T) {
	const n = 5
	qs := numberedQuestions(t, n)
	s := NewQuestionStore(qs, false, rand.New(rand.NewSource(1)))

	first, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, qs[0].Text, first.Text)

	// After exactly n more calls the cursor has wrapped back to the
	// first question.
	var last Question
	for i := 0; i < n; i++ {
		last, ok = s.Next()
		require.True(t, ok)
	}
	assert.Equal(t, first.Text, last.Text)
}

func TestStoreSequentialOrder(t *testing.T) {
	qs := numberedQuestions(t, 4)
	s := NewQuestionStore(qs, false, rand.New(rand.NewSource(1)))

	for i := range qs {
		q, ok := s.Next()
		require.True(t, ok)
		assert.Equal(t, qs[i].Text, q.Text, "position %d", i)
	}
}

func TestStoreShuffleIsPermutation(t *testing.T) {
	qs := numberedQuestions(t, 8)
	s := NewQuestionStore(qs, true, rand.New(rand.NewSource(7)))

	seen := map[string]int{}
	for i := 0; i < s.Len(); i++ {
		q, ok := s.Next()
		require.True(t, ok)
		seen[q.Text]++
	}
	for _, q := range qs {
		assert.Equal(t, 1, seen[q.Text], "question %q", q.Text)
	}

	// Same seed, same order.
	a := NewQuestionStore(qs, true, rand.New(rand.NewSource(7)))
	b := NewQuestionStore(qs, true, rand.New(rand.NewSource(7)))
	for i := 0; i < len(qs); i++ {
		qa, _ := a.Next()
		qb, _ := b.Next()
		assert.Equal(t, qa.Text, qb.Text)
	}
}

func TestStoreShuffleDoesNotMutateInput(t *testing.T) {
	qs := numberedQuestions(t, 6)
	want := make([]string, len(qs))
	for i, q := range qs {
		want[i] = q.Text
	}

	NewQuestionStore(qs, true, rand.New(rand.NewSource(3)))
	for i, q := range qs {
		assert.Equal(t, want[i], q.Text)
	}
}

func TestStoreSetCursor(t *testing.T) {
	s := NewQuestionStore(numberedQuestions(t, 4), false, rand.New(rand.NewSource(1)))

	s.SetCursor(6)
	assert.Equal(t, 2, s.Cursor())

	s.SetCursor(-1)
	assert.Equal(t, 3, s.Cursor())

	s.SetCursor(-5)
	assert.Equal(t, 3, s.Cursor())

	empty := NewQuestionStore(nil, false, rand.New(rand.NewSource(1)))
	empty.SetCursor(3)
	assert.Equal(t, 0, empty.Cursor())
	_, ok := empty.Next()
	assert.False(t, ok)
}

func TestStoreRandomIndex(t *testing.T) {
	s := NewQuestionStore(numberedQuestions(t, 4), false, rand.New(rand.NewSource(9)))
	for i := 0; i < 100; i++ {
		idx := s.RandomIndex()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 4)
	}
	assert.Equal(t, 0, s.Cursor(), "RandomIndex is independent of the cursor")
}

func TestStoreRandomIndexEmpty(t *testing.T) {
	s := NewQuestionStore(nil, false, rand.New(rand.NewSource(9)))
	assert.Equal(t, 0, s.RandomIndex())
}
