package feud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestionValidation(t *testing.T) {
	valid := []Answer{{Rank: 1, Text: "dog", Points: 50}, {Rank: 2, Text: "cat", Points: 30}}

	tests := []struct {
		name    string
		text    string
		answers []Answer
		wantErr bool
	}{
		{"valid", "pets", valid, false},
		{"empty text", "", valid, true},
		{"no answers", "pets", nil, true},
		{"duplicate rank", "pets", []Answer{{Rank: 1, Text: "a", Points: 1}, {Rank: 1, Text: "b", Points: 2}}, true},
		{"rank out of range", "pets", []Answer{{Rank: 3, Text: "a", Points: 1}}, true},
		{"zero rank", "pets", []Answer{{Rank: 0, Text: "a", Points: 1}}, true},
		{"empty answer text", "pets", []Answer{{Rank: 1, Text: "", Points: 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuestion(tt.text, tt.answers)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuestionMatch(t *testing.T) {
	q, err := NewQuestion("name a pet", []Answer{
		{Rank: 1, Text: "Dog", Points: 50},
		{Rank: 2, Text: "żółw", Points: 30},
	})
	require.NoError(t, err)

	a, ok := q.Match("  dog ")
	require.True(t, ok)
	assert.Equal(t, 1, a.Rank)

	a, ok = q.Match("ZOLW")
	require.True(t, ok)
	assert.Equal(t, 2, a.Rank)

	_, ok = q.Match("hamster")
	assert.False(t, ok)
}

func TestFold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Dog ", "dog"},
		{"ŻÓŁTY", "zolty"},
		{"Café", "cafe"},
		{"über", "uber"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.in), "Fold(%q)", tt.in)
	}
}

func TestTeamIDRoundTrip(t *testing.T) {
	assert.Equal(t, TeamB, TeamA.Opponent())
	assert.Equal(t, TeamA, TeamB.Opponent())

	id, err := ParseTeamID("b")
	require.NoError(t, err)
	assert.Equal(t, TeamB, id)

	_, err = ParseTeamID("c")
	assert.Error(t, err)
}

func TestTeamSettersClamp(t *testing.T) {
	team := NewTeam(TeamA, "Lions")
	team.SetPoints(-5)
	assert.Equal(t, 0, team.Points())
	team.SetErrors(-1)
	assert.Equal(t, 0, team.Errors())
}
