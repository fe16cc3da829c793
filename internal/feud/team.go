package feud

import "fmt"

// TeamID identifies one of the two fixed team slots.
type TeamID int

const (
	TeamA TeamID = iota
	TeamB
)

// Opponent returns the other team slot.
func (id TeamID) Opponent() TeamID {
	if id == TeamA {
		return TeamB
	}
	return TeamA
}

func (id TeamID) String() string {
	if id == TeamA {
		return "a"
	}
	return "b"
}

// MarshalText implements encoding.TextMarshaler.
func (id TeamID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// ParseTeamID parses "a" or "b".
func ParseTeamID(s string) (TeamID, error) {
	switch s {
	case "a":
		return TeamA, nil
	case "b":
		return TeamB, nil
	}
	return 0, fmt.Errorf("unknown team %q", s)
}

// Team holds one side's mutable score and error counters. The 3-error
// steal threshold is enforced by the game, not here.
type Team struct {
	id     TeamID
	name   string
	points int
	errors int
}

func NewTeam(id TeamID, name string) *Team {
	return &Team{id: id, name: name}
}

func (t *Team) ID() TeamID { return t.id }
func (t *Team) Name() string { return t.name }
func (t *Team) Points() int { return t.points }
func (t *Team) Errors() int { return t.errors }

// AddPoints adds n to the team's total. Callers guarantee n >= 0.
func (t *Team) AddPoints(n int) { t.points += n }

// AddError increments the error counter and returns the new count.
func (t *Team) AddError() int {
	t.errors++
	return t.errors
}

// ResetErrors clears the error counter at round start.
func (t *Team) ResetErrors() { t.errors = 0 }

// SetPoints is an absolute setter used to restore snapshots; it clamps
// at zero.
func (t *Team) SetPoints(n int) {
	if n < 0 {
		n = 0
	}
	t.points = n
}

// SetErrors is an absolute setter used to restore snapshots; it clamps
// at zero.
func (t *Team) SetErrors(n int) {
	if n < 0 {
		n = 0
	}
	t.errors = n
}
