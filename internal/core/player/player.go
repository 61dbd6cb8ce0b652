package player

import "github.com/google/uuid"

// Player is one seat at the table. Position 0 is off-board. Only the game
// engine moves players during play.
type Player struct {
	id       uuid.UUID
	name     string
	position int
	wins     int
}

func New(name string) *Player {
	return &Player{id: uuid.New(), name: name}
}

func (p *Player) ID() uuid.UUID  { return p.id }
func (p *Player) Name() string   { return p.name }
func (p *Player) Position() int  { return p.position }
func (p *Player) Wins() int      { return p.wins }
func (p *Player) String() string { return p.name }

func (p *Player) MoveTo(cell int) {
	p.position = cell
}

func (p *Player) RecordWin() {
	p.wins++
}

// Reset puts the token back off-board for a new game; the win tally is kept.
func (p *Player) Reset() {
	p.position = 0
}
