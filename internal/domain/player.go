package domain

import "fmt"

// Position is the spot a player covers on the pitch.
type Position int

const (
	Goalkeeper Position = iota + 1
	Defender
	Midfielder
	Forward
)

var positionNames = map[Position]string{
	Goalkeeper: "Goalkeeper",
	Defender:   "Defender",
	Midfielder: "Midfielder",
	Forward:    "Forward",
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

func (p Position) Valid() bool {
	_, ok := positionNames[p]
	return ok
}

// Positions returns the four positions in menu order, so prompts can offer
// them as a numbered choice.
func Positions() []Position {
	return []Position{Goalkeeper, Defender, Midfielder, Forward}
}

// PositionFromChoice maps a 1-based menu choice to a position.
func PositionFromChoice(n int) (Position, bool) {
	p := Position(n)
	return p, p.Valid()
}

// Player is one squad entry. The jersey number that keys it into the roster
// is assigned by the caller, not stored here.
type Player struct {
	DNI      string   `json:"dni"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Height   float64  `json:"height"` // meters
}

func (p Player) String() string {
	return fmt.Sprintf("Player{dni=%s, name=%s, position=%s, height=%.2f}",
		p.DNI, p.Name, p.Position, p.Height)
}
